package dnd

import "math"

// Point is a position in view coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the rectangle's area, or zero for an empty rectangle.
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Translate returns r moved by the vector d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Intersect returns the overlapping region of r and o. The result is empty
// when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	left := math.Max(r.X, o.X)
	top := math.Max(r.Y, o.Y)
	right := math.Min(r.X+r.Width, o.X+o.Width)
	bottom := math.Min(r.Y+r.Height, o.Y+o.Height)
	if right <= left || bottom <= top {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Overlaps reports whether r and o share a region of positive area.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}
