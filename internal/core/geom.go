// Package core provides fundamental types and utilities for the arena platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a point or vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts an integer to be within [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistSq returns the squared distance between two points.
// All distance comparisons in the simulation use squared values.
func DistSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// CirclesIntersect reports whether two circles touch or overlap.
func CirclesIntersect(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	rr := (r1 + r2) * (r1 + r2)
	return DistSq(c1, c2) <= rr
}

// NearestOnSquare returns the point of the axis-aligned square centered at
// center with the given half-width that is closest to p.
func NearestOnSquare(p, center Vec2, half float64) Vec2 {
	return Vec2{
		X: Clamp(p.X, center.X-half, center.X+half),
		Y: Clamp(p.Y, center.Y-half, center.Y+half),
	}
}

// CircleOverlapsSquare reports whether a circle strictly overlaps an
// axis-aligned square. Touching the square's edge does not count.
func CircleOverlapsSquare(c Vec2, r float64, center Vec2, half float64) bool {
	nearest := NearestOnSquare(c, center, half)
	return DistSq(c, nearest) < r*r
}

// CubicBezier evaluates a cubic Bezier curve at t using the Bernstein form.
// t is not clamped; callers keep it within [0, 1].
func CubicBezier(t float64, p0, p1, p2, p3 Vec2) Vec2 {
	u := 1 - t
	uu := u * u
	tt := t * t
	b0 := uu * u
	b1 := 3 * uu * t
	b2 := 3 * u * tt
	b3 := tt * t
	return Vec2{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}

// Rect represents an axis-aligned cell rectangle used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
