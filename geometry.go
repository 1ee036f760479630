package main

// Point is a position in image-workspace pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Box is a labeled rectangle over the workspace image. Width and Height are
// the signed deltas between the two drag corners; a box drawn right-to-left
// or bottom-to-top keeps its negative extents so the export reproduces the
// gesture exactly. Boxes are never mutated once committed.
type Box struct {
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Label  LabelCode `json:"label"`
}

// MakeBox builds a box from the two corners of a drag gesture. No clamping
// or normalization happens here.
func MakeBox(start, end Point, label LabelCode) Box {
	return Box{
		X:      start.X,
		Y:      start.Y,
		Width:  end.X - start.X,
		Height: end.Y - start.Y,
		Label:  label,
	}
}

// Normalized returns the effective top-left corner and absolute size for
// rendering. The stored values keep their sign.
func (b Box) Normalized() (x, y, w, h float64) {
	x, w = b.X, b.Width
	if w < 0 {
		x, w = x+w, -w
	}
	y, h = b.Y, b.Height
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}
