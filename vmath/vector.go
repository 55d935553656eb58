package vmath

import "math"

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Dot returns a.X*b.X + a.Y*b.Y
func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2FromAngle returns the unit vector pointing along angle (radians, 0 = +X)
func V2FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// V2Project splits v into the component along unit axis and the remainder
func V2Project(v, axis Vec2) (along float64, rest Vec2) {
	along = V2Dot(v, axis)
	rest = V2Sub(v, V2Scale(axis, along))
	return along, rest
}

// V2Within reports whether a and b are closer than radius
func V2Within(a, b Vec2, radius float64) bool {
	return V2MagSq(V2Sub(a, b)) < radius*radius
}
