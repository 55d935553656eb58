package hazard

import (
	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/physics"
	"github.com/lixenwraith/gasup/vmath"
)

// Bullet is a gatling round flying straight until it hits or runs out of range
type Bullet struct {
	physics.Kinetic
	heading   float64
	travelled float64
	prm       *Params
}

func NewBullet(pos vmath.Vec2, heading float64, prm *Params) *Bullet {
	return &Bullet{
		Kinetic: physics.Kinetic{
			Pos: pos,
			Vel: vmath.V2Scale(vmath.V2FromAngle(heading), prm.BulletSpeed),
		},
		heading: heading,
		prm:     prm,
	}
}

func (b *Bullet) Kind() Kind           { return KindBullet }
func (b *Bullet) Position() vmath.Vec2 { return b.Pos }
func (b *Bullet) Angle() float64       { return b.heading }

func (b *Bullet) Tick(dt float64, w World) bool {
	b.Drift(dt)
	b.travelled += b.prm.BulletSpeed * dt

	if vmath.V2Within(b.Pos, w.Plane().Pos, b.prm.BulletHitRadius) {
		hit(w, KindBullet, b.Pos, b.prm.BulletGasDamage, b.prm.BulletRumble)
		return true
	}
	return b.travelled >= b.prm.BulletRange || culled(b.Pos, w, b.prm)
}

// Rocket flies at constant speed, turning toward the plane at a limited rate
type Rocket struct {
	physics.Kinetic
	heading float64
	age     float64
	homing  physics.HomingProfile
	prm     *Params
}

func NewRocket(pos vmath.Vec2, heading float64, prm *Params) *Rocket {
	return &Rocket{
		Kinetic: physics.Kinetic{
			Pos: pos,
			Vel: vmath.V2Scale(vmath.V2FromAngle(heading), prm.RocketSpeed),
		},
		heading: heading,
		homing:  prm.rocketHoming(),
		prm:     prm,
	}
}

func (r *Rocket) Kind() Kind           { return KindRocket }
func (r *Rocket) Position() vmath.Vec2 { return r.Pos }
func (r *Rocket) Angle() float64       { return r.heading }

func (r *Rocket) Tick(dt float64, w World) bool {
	r.heading = physics.ApplyHoming(&r.Kinetic, r.heading, w.Plane().Pos, &r.homing, dt)
	r.Drift(dt)
	r.age += dt

	if vmath.V2Within(r.Pos, w.Plane().Pos, r.prm.RocketHitRadius) {
		hit(w, KindRocket, r.Pos, r.prm.RocketGasDamage, r.prm.RocketRumble)
		return true
	}
	return r.age >= r.prm.RocketLifetime || culled(r.Pos, w, r.prm)
}

func hit(w World, src Kind, pos vmath.Vec2, damage, rumble float64) {
	w.DrainGas(damage)
	w.Emit(event.EventImpact, &event.ImpactPayload{
		Source:    src.String(),
		X:         pos.X,
		Y:         pos.Y,
		Magnitude: rumble,
		GasLost:   damage,
	})
}

// Pickup refills the tank on contact
type Pickup struct {
	Pos vmath.Vec2
	prm *Params
}

func NewPickup(pos vmath.Vec2, prm *Params) *Pickup {
	return &Pickup{Pos: pos, prm: prm}
}

func (p *Pickup) Kind() Kind           { return KindPickup }
func (p *Pickup) Position() vmath.Vec2 { return p.Pos }
func (p *Pickup) Angle() float64       { return 0 }

func (p *Pickup) Tick(_ float64, w World) bool {
	if vmath.V2Within(p.Pos, w.Plane().Pos, p.prm.PickupRadius) {
		w.RefillGas()
		w.Emit(event.EventGasCollected, &event.PointPayload{X: p.Pos.X, Y: p.Pos.Y})
		return true
	}
	return culled(p.Pos, w, p.prm)
}
