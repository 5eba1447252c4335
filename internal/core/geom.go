// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

import "math"

// Vec3 is a point or offset in world space.
// Y is the vertical axis; the player falls towards negative Y.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for building a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Axis returns the component for axis 0 (X), 1 (Y) or 2 (Z).
func (v Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Overlaps reports whether two axis-aligned cubes overlap.
// Each size is a half-extent. The cubes overlap only if every axis
// satisfies |a-b| < aSize+bSize; touching faces do not count.
func Overlaps(a Vec3, aSize float64, b Vec3, bSize float64) bool {
	reach := aSize + bSize
	for axis := 0; axis < 3; axis++ {
		if math.Abs(a.Axis(axis)-b.Axis(axis)) >= reach {
			return false
		}
	}
	return true
}

// Bounds is an inclusive range on one axis.
type Bounds struct {
	Min, Max float64
}

// Clamp restricts v to the range.
func (b Bounds) Clamp(v float64) float64 {
	return ClampF(v, b.Min, b.Max)
}

// Contains reports whether v lies inside the range.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Rect represents an axis-aligned rectangle of screen cells.
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
