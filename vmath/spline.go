package vmath

import "math"

// Spline is the cubic x(d), d ∈ [0, 1], joining start to stop
// Coefficients are stored in Horner order: ((A0*d + A1)*d + A2)*d + A3
type Spline struct {
	A0, A1, A2, A3 float64
}

// NewSpline fits a cubic between start and stop
// The slope at start follows the bisector of lead→start and start→stop,
// the slope at stop follows the bisector of start→stop and stop→trail
// Control points must advance strictly in y
// Two splines sharing three control points meet with equal value and slope
func NewSpline(lead, start, stop, trail Vec2) Spline {
	dy := stop.Y - start.Y
	dx := stop.X - start.X
	s1 := bisectorSlope(lead, start, stop) * dy
	s2 := bisectorSlope(start, stop, trail) * dy

	return Spline{
		A0: s2 + s1 - 2*dx,
		A1: 3*dx - (s2 + 2*s1),
		A2: s1,
		A3: start.X,
	}
}

// At evaluates x at fraction d
func (s Spline) At(d float64) float64 {
	return ((s.A0*d+s.A1)*d+s.A2)*d + s.A3
}

// Slope returns dx/dd at fraction d
func (s Spline) Slope(d float64) float64 {
	return (3*s.A0*d+2*s.A1)*d + s.A2
}

// bisectorSlope returns dx/dy along the bisected heading of a→b and b→c
// With y increasing both headings lie in (0, π), so averaging cannot wrap
func bisectorSlope(a, b, c Vec2) float64 {
	h := (Angle(a, b) + Angle(b, c)) / 2
	sin, cos := math.Sincos(h)
	if math.Abs(sin) < 1e-12 {
		return 0
	}
	return cos / sin
}
