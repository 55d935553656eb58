package physics

import (
	"math"

	"github.com/lixenwraith/gasup/vmath"
)

// Plane is the player craft state
// Angle is the heading in radians, π/2 points straight up
type Plane struct {
	Pos   vmath.Vec2 `json:"pos"`
	Vel   vmath.Vec2 `json:"vel"`
	Angle float64    `json:"angle"`
}

// NewPlane places a plane at pos with the configured start heading and speed
func NewPlane(pos vmath.Vec2, prm FlightParams) Plane {
	return Plane{
		Pos:   pos,
		Vel:   vmath.V2Scale(vmath.V2FromAngle(prm.StartAngle), prm.StartSpeed),
		Angle: prm.StartAngle,
	}
}

// Heading returns the unit vector the nose points along
func (p Plane) Heading() vmath.Vec2 {
	return vmath.V2FromAngle(p.Angle)
}

// ForwardSpeed is the velocity component along the heading
func (p Plane) ForwardSpeed() float64 {
	return vmath.V2Dot(p.Vel, p.Heading())
}

// Step advances the plane by dt seconds
// throttle is clamped to [0, 1], steer to [-1, 1] with positive turning left
// dt is clamped to prm.MaxDt
func Step(p Plane, dt, throttle, steer float64, prm FlightParams) Plane {
	dt = ClampDt(dt, prm.MaxDt)
	if dt == 0 {
		return p
	}
	throttle = vmath.Clamp(throttle, 0, 1)
	steer = vmath.Clamp(steer, -1, 1)

	// Steering
	p.Angle = vmath.WrapAngle(p.Angle + steer*prm.TurnRate*dt)
	heading := p.Heading()

	// Thrust, capped along the heading only
	accel := throttle * prm.Thrust
	forward := vmath.V2Dot(p.Vel, heading)
	if forward+accel*dt > prm.MaxSpeed {
		accel = math.Max(0, (prm.MaxSpeed-forward)/dt)
	}
	p.Vel = vmath.V2Add(p.Vel, vmath.V2Scale(heading, accel*dt))

	// Wing alignment: sideways velocity decays exponentially
	along, side := vmath.V2Project(p.Vel, heading)
	side = vmath.V2Scale(side, math.Exp(-prm.WingAlign*dt))
	p.Vel = vmath.V2Add(vmath.V2Scale(heading, along), side)

	// Gravity
	p.Vel.Y -= prm.Gravity * dt

	// Semi-implicit Euler: velocity first
	p.Pos = vmath.V2Add(p.Pos, vmath.V2Scale(p.Vel, dt))
	return p
}
