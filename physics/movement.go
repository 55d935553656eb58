package physics

import "github.com/lixenwraith/gasup/vmath"

// ClampDt bounds a frame delta to [0, maxDt]
func ClampDt(dt, maxDt float64) float64 {
	return vmath.Clamp(dt, 0, maxDt)
}
