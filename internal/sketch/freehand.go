package sketch

// freehand follows the pointer while the primary button is held. Strokes
// keep no history and cannot be undone.
type freehand struct{}

// press anchors a new stroke. A press while a stroke is still open simply
// re-anchors it.
func (freehand) press(s *Surface, p Point) {
	s.open(p)
}

func (freehand) drag(s *Surface, p Point) {
	from, ok := s.start.get()
	if !ok {
		return
	}
	s.draw(from, p)
	s.previous.put(from)
	s.start.put(p)
}

func (freehand) release(s *Surface, _ Point) {
	s.close()
}

// doubleClick arrives instead of the second press, so it anchors like one.
func (f freehand) doubleClick(s *Surface, p Point) {
	f.press(s, p)
}

func (freehand) undo(*Surface) {}
