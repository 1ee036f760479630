package main

// Store holds the committed annotation list. Insertion order is z-order for
// rendering and the order boxes appear in the export.
type Store struct {
	boxes []Box
}

func NewStore() *Store {
	return &Store{boxes: []Box{}}
}

// Commit appends a box. Always succeeds; geometry and label are not
// validated.
func (s *Store) Commit(box Box) {
	s.boxes = append(s.boxes, box)
}

// Boxes returns a snapshot copy of the committed list.
func (s *Store) Boxes() []Box {
	return s.snapshot()
}

func (s *Store) Len() int {
	return len(s.boxes)
}

func (s *Store) snapshot() []Box {
	out := make([]Box, len(s.boxes))
	copy(out, s.boxes)
	return out
}

func (s *Store) replace(list []Box) {
	s.boxes = list
}
