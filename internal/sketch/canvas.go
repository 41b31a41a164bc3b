package sketch

import "image/color"

// Anchor selects which corner of a text item its position refers to.
type Anchor int

const (
	// AnchorSE places the bottom-right corner of the text at the position.
	AnchorSE Anchor = iota
	// AnchorSW places the bottom-left corner of the text at the position.
	AnchorSW
)

// Canvas is the drawable a Surface renders into. Surfaces only ever issue
// these four calls; repainting the window is left to the host.
type Canvas interface {
	// DrawLine renders seg. seg.ID is unique for the surface's lifetime.
	DrawLine(seg Segment)
	// DeleteLine erases the segment previously drawn with id.
	DeleteLine(id SegmentID)
	// DrawText renders text tagged with tag, replacing any earlier text with the same tag.
	DrawText(tag string, at Point, anchor Anchor, text string, col color.Color)
	// DeleteText erases the text tagged with tag.
	DeleteText(tag string)
}

// Discard is a Canvas that draws nothing.
var Discard Canvas = discard{}

type discard struct{}

func (discard) DrawLine(Segment) {}
func (discard) DeleteLine(SegmentID) {}
func (discard) DrawText(string, Point, Anchor, string, color.Color) {}
func (discard) DeleteText(string) {}
