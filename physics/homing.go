package physics

import (
	"math"

	"github.com/lixenwraith/gasup/vmath"
)

// HomingProfile defines homing behavior parameters
type HomingProfile struct {
	Speed    float64 // Constant cruise speed (units/sec)
	TurnRate float64 // Maximum heading change (rad/sec)
}

// SteerToward turns heading toward target by at most maxTurn radians
// Returns the new heading
func SteerToward(heading float64, from, target vmath.Vec2, maxTurn float64) float64 {
	want := vmath.Angle(from, target)
	diff := vmath.AngleDiff(heading, want)
	if math.Abs(diff) <= maxTurn {
		return want
	}
	return vmath.WrapAngle(heading + math.Copysign(maxTurn, diff))
}

// ApplyHoming turns the body's course toward target under the profile's turn limit and
// resets its speed to the cruise speed
// Returns the new heading
func ApplyHoming(k *Kinetic, heading float64, target vmath.Vec2, profile *HomingProfile, dt float64) float64 {
	heading = SteerToward(heading, k.Pos, target, profile.TurnRate*dt)
	k.Vel = vmath.V2Scale(vmath.V2FromAngle(heading), profile.Speed)
	return heading
}
