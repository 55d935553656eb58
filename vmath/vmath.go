package vmath

import "math"

// World units: 1.0 is the shorter side of the viewport, y grows upward

// Clamp returns value bounded to [min, max]
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// Lerp interpolates linearly, t=0 yields a and t=1 yields b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Angle returns the heading of the segment p0→p1 in radians
func Angle(p0, p1 Vec2) float64 {
	return math.Atan2(p1.Y-p0.Y, p1.X-p0.X)
}

// WrapAngle maps an angle into (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// AngleDiff returns the signed shortest rotation from a to b
func AngleDiff(a, b float64) float64 {
	return WrapAngle(b - a)
}

// Approach moves current toward target by at most step
func Approach(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}
