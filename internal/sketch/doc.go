// Package sketch implements the drawing surface behind the sketchpad canvases.
//
// A Surface turns pointer events delivered by a host window into line
// segments issued against a Canvas. Freehand surfaces follow the pointer
// while the primary button is held; polyline surfaces commit one segment per
// click, close the shape back to its first point on double-click, and undo
// the most recent segment on secondary click.
//
// A Surface is driven from a single goroutine, the host's event loop, and
// holds no locks.
package sketch
