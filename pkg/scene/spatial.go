// Package scene keeps the tracked targets of a world: positioned, sized
// items with stable ids, insertion-order iteration and topmost-first hit
// testing.
package scene

import "image"

// Spatial is anything with a world position (top-left) and a size in cells.
type Spatial interface {
	Pos() image.Point
	Size() image.Point
}

// CenterOf returns the center cell of s.
func CenterOf(s Spatial) image.Point {
	return s.Pos().Add(s.Size().Div(2))
}

// BoundsOf returns the rectangle s covers.
func BoundsOf(s Spatial) image.Rectangle {
	p := s.Pos()
	return image.Rectangle{Min: p, Max: p.Add(s.Size())}
}
