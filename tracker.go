package main

type DragState int

const (
	DragIdle DragState = iota
	DragActive
)

// DragTracker turns raw pointer events into a candidate box. Each gesture is
// Idle -> Dragging -> Idle; the live draft box is exposed for rendering and
// is never part of the committed list.
type DragTracker struct {
	state DragState
	start Point
	draft *Box
}

// PointerDown starts a gesture. Without a loaded image it is ignored
// outright: no transition, no draft.
func (t *DragTracker) PointerDown(pos Point, hasImage bool) {
	if !hasImage || t.state == DragActive {
		return
	}
	t.state = DragActive
	t.start = pos
}

// PointerMove recomputes the draft from the gesture start and the current
// position using the session's current label. No-op while idle.
func (t *DragTracker) PointerMove(pos Point, label LabelCode) {
	if t.state != DragActive {
		return
	}
	box := MakeBox(t.start, pos, label)
	t.draft = &box
}

// PointerUp ends the gesture and emits the box to commit. A click with no
// movement still yields a zero-size box at the click point; no minimum drag
// distance is enforced. The tracker returns to Idle unconditionally.
func (t *DragTracker) PointerUp(label LabelCode) (Box, bool) {
	if t.state != DragActive {
		return Box{}, false
	}
	t.state = DragIdle
	box := MakeBox(t.start, t.start, label)
	if t.draft != nil {
		box = *t.draft
	}
	t.draft = nil
	return box, true
}

func (t *DragTracker) Dragging() bool {
	return t.state == DragActive
}

func (t *DragTracker) Draft() (Box, bool) {
	if t.draft == nil {
		return Box{}, false
	}
	return *t.draft, true
}
