package collision

import (
	"github.com/lixenwraith/gasup/terrain"
	"github.com/lixenwraith/gasup/vmath"
)

// Result describes the canyon walls at a position
// Left and Right are only meaningful when Bracketed
type Result struct {
	Crashed   bool
	Bracketed bool
	Left      float64
	Right     float64
}

// CheckWall tests pos against the canyon boundary interpolated between the nearest
// points below and above it, searched within ±window
// A position with no point on either side is not a crash
func CheckWall(t *terrain.Terrain, pos vmath.Vec2, window float64) Result {
	pts := terrain.QueryRange(t, pos.Y-window, pos.Y+window)

	below, above := -1, -1
	for i, p := range pts {
		if p.Y() <= pos.Y {
			below = i
		} else {
			above = i
			break
		}
	}
	if below < 0 || above < 0 {
		return Result{}
	}

	left, right := Bounds(pts[below], pts[above], pos.Y)
	return Result{
		Crashed:   pos.X < left || pos.X > right,
		Bracketed: true,
		Left:      left,
		Right:     right,
	}
}

// Bounds interpolates the wall positions between two points at height y
func Bounds(lo, hi terrain.Point, y float64) (left, right float64) {
	span := hi.Y() - lo.Y()
	f := 0.0
	if span > 0 {
		f = vmath.Clamp((y-lo.Y())/span, 0, 1)
	}
	return vmath.Lerp(lo.Left.X, hi.Left.X, f), vmath.Lerp(lo.Right.X, hi.Right.X, f)
}
