package physics

import "github.com/lixenwraith/gasup/vmath"

// Kinetic is a point body for projectiles and particles
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// Drift advances position at constant velocity
func (k *Kinetic) Drift(dt float64) {
	k.Pos = vmath.V2Add(k.Pos, vmath.V2Scale(k.Vel, dt))
}
