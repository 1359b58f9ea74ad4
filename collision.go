package main

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Bounded is anything that occupies a rectangle in the arena
type Bounded interface {
	Bounds() Rect
}

// Overlaps reports whether two rectangles intersect.
// Rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Collides runs Overlaps on the bounds of two entities
func Collides(a, b Bounded) bool {
	return Overlaps(a.Bounds(), b.Bounds())
}
