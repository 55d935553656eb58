package parameter

import "math"

// Flight model
const (
	// FlightTurnRate is heading change at full steer (rad/sec)
	FlightTurnRate = 2.6

	// FlightThrust is acceleration along the heading at full throttle (units/sec²)
	FlightThrust = 1.4

	// FlightMaxSpeed caps the forward speed thrust can produce (units/sec)
	FlightMaxSpeed = 0.85

	// FlightWingAlign is the decay rate of sideways velocity (1/sec)
	FlightWingAlign = 3.5

	// FlightGravity is the downward acceleration (units/sec²)
	FlightGravity = 0.45

	// FlightMaxDt bounds a single integration step (sec) to ride out frame hitches
	FlightMaxDt = 0.1

	// FlightStartAngle points the plane straight up
	FlightStartAngle = math.Pi / 2

	// FlightStartSpeed is the initial climb speed (units/sec)
	FlightStartSpeed = 0.3
)

// Projectile kinematics
const (
	// BulletSpeed is the muzzle speed of gatling rounds (units/sec)
	BulletSpeed = 1.6

	// BulletRange is the travel distance after which a round expires
	BulletRange = 1.2

	// RocketSpeed is the constant rocket speed (units/sec)
	RocketSpeed = 0.7

	// RocketTurnRate is the maximum rocket course correction (rad/sec)
	RocketTurnRate = 1.8

	// RocketLifetime is the burn time after which a rocket expires (sec)
	RocketLifetime = 3.5
)
