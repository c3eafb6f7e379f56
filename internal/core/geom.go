// Package core provides fundamental types and utilities for the invaders
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep the simulation pure and testable.
package core

// Vec is a 2D vector in simulation space.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned bounding box in simulation space.
// Intersection uses closed intervals: boxes that merely touch at an edge
// still count as colliding.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAround builds a box of the given width and height centered on p.
func BoxAround(p Vec, w, h float64) Box {
	return Box{
		MinX: p.X - w/2,
		MinY: p.Y - h/2,
		MaxX: p.X + w/2,
		MaxY: p.Y + h/2,
	}
}

// Intersects reports whether two boxes overlap or touch.
func (b Box) Intersects(o Box) bool {
	if b.MaxX < o.MinX || o.MaxX < b.MinX {
		return false
	}
	if b.MaxY < o.MinY || o.MaxY < b.MinY {
		return false
	}
	return true
}

// Contains reports whether the point p lies inside the box (closed).
func (b Box) Contains(p Vec) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Rect is an integer rectangle in screen space, used for drawing.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
