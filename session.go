package main

import "image"

// Session is the aggregate root for one annotation run: the loaded image,
// the committed annotation list, the label applied to the next box, and the
// in-flight drag state. It is owned by the top-level model and passed into
// event handlers explicitly.
//
// History is optional: with a nil History the session behaves like the
// plain variant of the tool (commits go straight to the store, undo/redo
// are no-ops).
type Session struct {
	img       image.Image
	imagePath string
	store     *Store
	history   *History
	label     LabelCode
	tracker   DragTracker
}

func NewSession(withHistory bool) *Session {
	s := &Session{
		store: NewStore(),
		label: LabelButton,
	}
	if withHistory {
		s.history = NewHistory()
	}
	return s
}

// SetImage replaces the image reference only. Annotations drawn over a
// previous image survive the swap.
func (s *Session) SetImage(img image.Image, path string) {
	s.img = img
	s.imagePath = path
}

func (s *Session) Image() image.Image {
	return s.img
}

func (s *Session) ImagePath() string {
	return s.imagePath
}

func (s *Session) HasImage() bool {
	return s.img != nil
}

func (s *Session) SetLabel(label LabelCode) {
	s.label = label
}

func (s *Session) Label() LabelCode {
	return s.label
}

func (s *Session) CycleLabel() {
	s.label = nextLabel(s.label)
}

func (s *Session) PointerDown(pos Point) {
	s.tracker.PointerDown(pos, s.HasImage())
}

func (s *Session) PointerMove(pos Point) {
	s.tracker.PointerMove(pos, s.label)
}

// PointerUp completes the gesture and commits the resulting box, through
// history when enabled.
func (s *Session) PointerUp() (Box, bool) {
	box, ok := s.tracker.PointerUp(s.label)
	if !ok {
		return Box{}, false
	}
	if s.history != nil {
		s.history.Commit(s.store, box)
	} else {
		s.store.Commit(box)
	}
	return box, true
}

func (s *Session) Dragging() bool {
	return s.tracker.Dragging()
}

func (s *Session) Draft() (Box, bool) {
	return s.tracker.Draft()
}

func (s *Session) Annotations() []Box {
	return s.store.Boxes()
}

func (s *Session) Count() int {
	return s.store.Len()
}

func (s *Session) Undo() {
	if s.history == nil {
		return
	}
	s.history.Undo(s.store)
}

func (s *Session) Redo() {
	if s.history == nil {
		return
	}
	s.history.Redo(s.store)
}

func (s *Session) UndoDepth() int {
	if s.history == nil {
		return 0
	}
	return s.history.UndoDepth()
}

func (s *Session) RedoDepth() int {
	if s.history == nil {
		return 0
	}
	return s.history.RedoDepth()
}
