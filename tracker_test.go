package main

import "testing"

func TestPointerDownWithoutImage(t *testing.T) {
	var tr DragTracker

	tr.PointerDown(Point{X: 10, Y: 10}, false)

	if tr.Dragging() {
		t.Error("pointer down without an image must not start a drag")
	}
	if _, ok := tr.Draft(); ok {
		t.Error("pointer down without an image must not create a draft")
	}
}

func TestDragGesture(t *testing.T) {
	var tr DragTracker

	tr.PointerDown(Point{X: 10, Y: 10}, true)
	if !tr.Dragging() {
		t.Fatal("expected tracker to be dragging after pointer down")
	}

	tr.PointerMove(Point{X: 60, Y: 40}, LabelInput)
	draft, ok := tr.Draft()
	if !ok {
		t.Fatal("expected a draft box after pointer move")
	}
	if draft.Width != 50 || draft.Height != 30 {
		t.Errorf("draft size: got %vx%v, want 50x30", draft.Width, draft.Height)
	}
	if draft.Label != LabelInput {
		t.Errorf("draft label: got %q, want %q", draft.Label, LabelInput)
	}

	// Each move recomputes the draft from the original start.
	tr.PointerMove(Point{X: 110, Y: 60}, LabelInput)
	draft, _ = tr.Draft()
	if draft.X != 10 || draft.Y != 10 || draft.Width != 100 || draft.Height != 50 {
		t.Errorf("recomputed draft wrong: %+v", draft)
	}

	box, ok := tr.PointerUp(LabelInput)
	if !ok {
		t.Fatal("expected a box on pointer up")
	}
	if box != draft {
		t.Errorf("emitted box %+v differs from draft %+v", box, draft)
	}
	if tr.Dragging() {
		t.Error("tracker must return to idle after pointer up")
	}
	if _, ok := tr.Draft(); ok {
		t.Error("draft must be cleared after pointer up")
	}
}

func TestClickCommitsZeroSizeBox(t *testing.T) {
	var tr DragTracker

	tr.PointerDown(Point{X: 25, Y: 35}, true)
	box, ok := tr.PointerUp(LabelButton)

	if !ok {
		t.Fatal("a click with no movement must still emit a box")
	}
	if box.X != 25 || box.Y != 35 || box.Width != 0 || box.Height != 0 {
		t.Errorf("expected zero-size box at (25,35), got %+v", box)
	}
}

func TestMoveWhileIdleIsNoOp(t *testing.T) {
	var tr DragTracker

	tr.PointerMove(Point{X: 5, Y: 5}, LabelButton)

	if _, ok := tr.Draft(); ok {
		t.Error("pointer move while idle must not create a draft")
	}
	if _, ok := tr.PointerUp(LabelButton); ok {
		t.Error("pointer up while idle must not emit a box")
	}
}

func TestMoveUsesCurrentLabel(t *testing.T) {
	var tr DragTracker

	tr.PointerDown(Point{X: 0, Y: 0}, true)
	tr.PointerMove(Point{X: 10, Y: 10}, LabelButton)
	// The label changed mid-drag; the next move picks it up.
	tr.PointerMove(Point{X: 20, Y: 20}, LabelSelect)

	draft, _ := tr.Draft()
	if draft.Label != LabelSelect {
		t.Errorf("draft label: got %q, want %q", draft.Label, LabelSelect)
	}
}
