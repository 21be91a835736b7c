// Package core provides fundamental types and utilities for the dodger.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or extent in world space. World space has its origin at the
// center of the play field and y pointing up.
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned bounding box described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at (x, y) with the given width and height.
func NewBox(x, y, w, h float64) Box {
	return Box{Center: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// HalfExtents returns half the box size on each axis.
func (b Box) HalfExtents() Vec2 {
	return Vec2{X: b.Size.X / 2, Y: b.Size.Y / 2}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	h := b.HalfExtents()
	return Vec2{X: b.Center.X - h.X, Y: b.Center.Y - h.Y}
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	h := b.HalfExtents()
	return Vec2{X: b.Center.X + h.X, Y: b.Center.Y + h.Y}
}

// Overlaps reports whether two boxes intersect.
// Compares center distance against summed half-extents on each axis.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	if math.Abs(b.Center.X-other.Center.X)*2 >= b.Size.X+other.Size.X {
		return false
	}
	return math.Abs(b.Center.Y-other.Center.Y)*2 < b.Size.Y+other.Size.Y
}

// Rect is an integer rectangle in screen cells, used for drawing.
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
