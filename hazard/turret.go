package hazard

import (
	"math"

	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/vmath"
)

// Gatling is a wall turret firing rounds at the plane inside its arc
type Gatling struct {
	Pos      vmath.Vec2
	Facing   float64
	cooldown float64
	prm      *Params
}

func NewGatling(pos vmath.Vec2, facing float64, prm *Params) *Gatling {
	return &Gatling{Pos: pos, Facing: facing, prm: prm}
}

func (g *Gatling) Kind() Kind           { return KindGatling }
func (g *Gatling) Position() vmath.Vec2 { return g.Pos }
func (g *Gatling) Angle() float64       { return g.Facing }

func (g *Gatling) Tick(dt float64, w World) bool {
	if culled(g.Pos, w, g.prm) {
		return true
	}
	if g.cooldown > 0 {
		g.cooldown -= dt
		return false
	}

	target := w.Plane().Pos
	if !vmath.V2Within(g.Pos, target, g.prm.GatlingRange) {
		return false
	}
	aim := vmath.Angle(g.Pos, target)
	if math.Abs(vmath.AngleDiff(g.Facing, aim)) > g.prm.GatlingArc {
		return false
	}

	aim += vmath.Fuzz(w.Rand(), 0, g.prm.GatlingSpread)
	w.Spawn(NewBullet(g.Pos, aim, g.prm))
	w.Emit(event.EventBulletFired, &event.ShotPayload{X: g.Pos.X, Y: g.Pos.Y, Angle: aim})
	g.cooldown = g.prm.GatlingCooldown
	return false
}

// RocketSite is an anti-air emplacement launching homing rockets
type RocketSite struct {
	Pos      vmath.Vec2
	Facing   float64
	cooldown float64
	prm      *Params
}

func NewRocketSite(pos vmath.Vec2, facing float64, prm *Params) *RocketSite {
	return &RocketSite{Pos: pos, Facing: facing, prm: prm}
}

func (r *RocketSite) Kind() Kind           { return KindRocketSite }
func (r *RocketSite) Position() vmath.Vec2 { return r.Pos }
func (r *RocketSite) Angle() float64       { return r.Facing }

func (r *RocketSite) Tick(dt float64, w World) bool {
	if culled(r.Pos, w, r.prm) {
		return true
	}
	if r.cooldown > 0 {
		r.cooldown -= dt
		return false
	}
	if !vmath.V2Within(r.Pos, w.Plane().Pos, r.prm.RocketSiteRange) {
		return false
	}

	w.Spawn(NewRocket(r.Pos, r.Facing, r.prm))
	w.Emit(event.EventRocketLaunched, &event.ShotPayload{X: r.Pos.X, Y: r.Pos.Y, Angle: r.Facing})
	r.cooldown = r.prm.RocketSiteCooldown
	return false
}
