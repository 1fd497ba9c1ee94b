// Package core provides fundamental types and utilities for the rocket arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec3 is a position or offset in world space.
// X runs across the lane, Y is height above the play surface, Z is lane depth.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for building a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// LenSq returns the squared length of v.
func (v Vec3) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// SpheresOverlap reports whether two spheres intersect.
// Touching spheres (distance equal to the radius sum) do not overlap.
func SpheresOverlap(a Vec3, ra float64, b Vec3, rb float64) bool {
	return Distance(a, b) < ra+rb
}

// Lerp maps t in [0, 1] onto [a, b].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
