package common

import "image"

// Rect is an integer rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y          int
	Width, Height int
}

// FromCenter builds a Rect of the given size centred on c. The size is
// halved with integer division.
func FromCenter(c Point, w, h int) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rect) Size() (int, int) {
	return r.Width, r.Height
}

// Image converts r to an image.Rectangle for SubImage calls.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}
