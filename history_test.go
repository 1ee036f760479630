package main

import "testing"

func box(n float64) Box {
	return MakeBox(Point{X: n, Y: n}, Point{X: n + 10, Y: n + 10}, LabelButton)
}

func assertList(t *testing.T, store *Store, want ...float64) {
	t.Helper()
	boxes := store.Boxes()
	if len(boxes) != len(want) {
		t.Fatalf("list length: got %d, want %d", len(boxes), len(want))
	}
	for i, x := range want {
		if boxes[i].X != x {
			t.Errorf("list[%d].x: got %v, want %v", i, boxes[i].X, x)
		}
	}
}

func TestUndoRedoInverse(t *testing.T) {
	store := NewStore()
	history := NewHistory()
	history.Commit(store, box(1))

	history.Commit(store, box(2))
	history.Undo(store)
	assertList(t, store, 1)

	history.Redo(store)
	assertList(t, store, 1, 2)
}

func TestUndoEmptyStackIsNoOp(t *testing.T) {
	store := NewStore()
	history := NewHistory()

	history.Undo(store)
	assertList(t, store)

	history.Commit(store, box(1))
	history.Undo(store)
	history.Undo(store) // nothing left
	assertList(t, store)
}

func TestRedoEmptyIsNoOp(t *testing.T) {
	store := NewStore()
	history := NewHistory()
	history.Commit(store, box(1))

	history.Redo(store)
	assertList(t, store, 1)
}

func TestUndoRedoChain(t *testing.T) {
	store := NewStore()
	history := NewHistory()
	history.Commit(store, box(1))
	history.Commit(store, box(2))

	history.Undo(store)
	assertList(t, store, 1)
	history.Undo(store)
	assertList(t, store)
	history.Undo(store) // no-op past the bottom
	assertList(t, store)

	history.Redo(store)
	assertList(t, store, 1)
	history.Redo(store)
	assertList(t, store, 1, 2)
	history.Redo(store) // no-op past the top
	assertList(t, store, 1, 2)
}

func TestCommitClearsRedo(t *testing.T) {
	store := NewStore()
	history := NewHistory()
	history.Commit(store, box(1))

	history.Undo(store)
	assertList(t, store)

	// A new edit discards the pending redo branch entirely.
	history.Commit(store, box(3))
	if history.RedoDepth() != 0 {
		t.Errorf("redo depth after new commit: got %d, want 0", history.RedoDepth())
	}
	history.Redo(store)
	assertList(t, store, 3)
}

func TestHistoryDepths(t *testing.T) {
	store := NewStore()
	history := NewHistory()

	history.Commit(store, box(1))
	history.Commit(store, box(2))
	if history.UndoDepth() != 2 || history.RedoDepth() != 0 {
		t.Errorf("depths after 2 commits: undo %d redo %d", history.UndoDepth(), history.RedoDepth())
	}

	history.Undo(store)
	if history.UndoDepth() != 1 || history.RedoDepth() != 1 {
		t.Errorf("depths after undo: undo %d redo %d", history.UndoDepth(), history.RedoDepth())
	}
}

func TestUndoSnapshotsAreIndependent(t *testing.T) {
	store := NewStore()
	history := NewHistory()

	history.Commit(store, box(1))
	history.Commit(store, box(2))
	history.Undo(store)
	history.Commit(store, box(3))
	history.Undo(store)
	assertList(t, store, 1)
}
