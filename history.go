package main

// History layers snapshot-based undo/redo over a Store. The undo side is a
// stack with the newest snapshot at the end. The redo side works from the
// front: undo places the pre-undo list at the front, redo takes from the
// front. History is strictly linear; any new commit discards the whole redo
// side.
type History struct {
	undo [][]Box
	redo [][]Box
}

func NewHistory() *History {
	return &History{}
}

// Commit is the one transaction that records history and updates the store:
// the pre-commit snapshot goes on the undo stack, the redo side is cleared,
// then the box is appended. Callers never touch the store directly once a
// History is attached.
func (h *History) Commit(s *Store, box Box) {
	h.undo = append(h.undo, s.snapshot())
	h.redo = nil
	s.Commit(box)
}

// Undo restores the most recent snapshot. Silent no-op when there is
// nothing to undo.
func (h *History) Undo(s *Store) {
	if len(h.undo) == 0 {
		return
	}
	last := len(h.undo) - 1
	prev := h.undo[last]
	h.undo = h.undo[:last]
	h.redo = append([][]Box{s.snapshot()}, h.redo...)
	s.replace(prev)
}

// Redo reapplies the front snapshot of the redo side. Silent no-op when
// there is nothing to redo.
func (h *History) Redo(s *Store) {
	if len(h.redo) == 0 {
		return
	}
	next := h.redo[0]
	h.redo = h.redo[1:]
	h.undo = append(h.undo, s.snapshot())
	s.replace(next)
}

func (h *History) UndoDepth() int {
	return len(h.undo)
}

func (h *History) RedoDepth() int {
	return len(h.redo)
}
