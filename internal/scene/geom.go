package scene

import "github.com/chewxy/math32"

// Point is a canvas coordinate.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float32 {
	return math32.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect is an axis-aligned box with non-negative size.
type Rect struct {
	Left   float32
	Top    float32
	Width  float32
	Height float32
}

// RectFromPoints returns the smallest Rect containing a and b.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Left:   math32.Min(a.X, b.X),
		Top:    math32.Min(a.Y, b.Y),
		Width:  math32.Abs(a.X - b.X),
		Height: math32.Abs(a.Y - b.Y),
	}
}

// Right returns the right edge.
func (r Rect) Right() float32 { return r.Left + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float32 { return r.Top + r.Height }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Expand grows r by d on every side. A negative d shrinks it; width and
// height never go below zero.
func (r Rect) Expand(d float32) Rect {
	return Rect{
		Left:   r.Left - d,
		Top:    r.Top - d,
		Width:  math32.Max(0, r.Width+2*d),
		Height: math32.Max(0, r.Height+2*d),
	}
}

// Union returns the smallest Rect containing r and o.
func (r Rect) Union(o Rect) Rect {
	left := math32.Min(r.Left, o.Left)
	top := math32.Min(r.Top, o.Top)
	right := math32.Max(r.Right(), o.Right())
	bottom := math32.Max(r.Bottom(), o.Bottom())
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}
