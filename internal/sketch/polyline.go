package sketch

// polyline connects consecutive clicks. The first click of a shape only
// anchors it, every later click draws one segment, and a double-click draws
// the closing segment back to the first point.
type polyline struct{}

func (polyline) press(s *Surface, p Point) {
	if !s.first.set {
		s.open(p)
		s.pen = PenDown
		s.points = append(s.points[:0], p)
		s.segments = s.segments[:0]
		return
	}
	if s.pen != PenDown {
		return
	}
	from := s.start.p
	s.segments = append(s.segments, s.draw(from, p))
	s.points = append(s.points, p)
	s.previous.put(from)
	s.start.put(p)
}

// drag draws from the current anchor exactly like freehand does. The
// intermediate positions become permanent segments that are not part of the
// undo history.
func (polyline) drag(s *Surface, p Point) {
	if !s.first.set || s.pen != PenDown {
		return
	}
	s.draw(s.start.p, p)
	s.start.put(p)
}

func (polyline) release(*Surface, Point) {}

func (polyline) doubleClick(s *Surface, p Point) {
	first, ok := s.first.get()
	if !ok {
		return
	}
	s.segments = append(s.segments, s.draw(p, first))
	s.close()
}

// undo removes the most recent segment and steps the anchor back to the
// previous click. The first point is never removed, so once every segment has
// been undone the shape stays open there and the next click draws from it.
func (polyline) undo(s *Surface) {
	if !s.first.set {
		return
	}
	if n := len(s.segments); n > 0 {
		s.canvas.DeleteLine(s.segments[n-1].ID)
		s.segments = s.segments[:n-1]
	}
	if n := len(s.points); n > 1 {
		s.points = s.points[:n-1]
	}
	n := len(s.points)
	s.start.put(s.points[n-1])
	if n > 1 {
		s.previous.put(s.points[n-2])
	} else {
		s.previous.clear()
	}
}
