// pkg/physics/vector.go
package physics

import "math"

// Vec2 is a 2D position or velocity in screen pixels (Y grows downwards).
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len2 returns the squared length. Prefer it over Len for threshold checks.
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Trunc drops the fractional part of both components, rounding toward zero.
func (v Vec2) Trunc() Vec2 {
	return Vec2{X: math.Trunc(v.X), Y: math.Trunc(v.Y)}
}

// Polar builds a vector of the given length pointing at angle (radians).
func Polar(length, angle float64) Vec2 {
	return Vec2{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// axis gives indexed access to a component, 0 for X and 1 for Y.
func (v *Vec2) axis(i int) *float64 {
	if i == 0 {
		return &v.X
	}
	return &v.Y
}
