package parameter

import "math"

// Gatling turret
const (
	// GatlingRange is the distance at which a turret starts firing
	GatlingRange = 0.9

	// GatlingArc is the half-angle of the firing cone around the turret's facing (rad)
	GatlingArc = math.Pi / 3

	// GatlingCooldown is the delay between rounds (sec)
	GatlingCooldown = 0.18

	// GatlingSpread is the aim jitter half-range (rad)
	GatlingSpread = 0.08
)

// Anti-air emplacement
const (
	// RocketSiteRange is the distance at which an emplacement launches
	RocketSiteRange = 1.3

	// RocketSiteCooldown is the delay between launches (sec)
	RocketSiteCooldown = 2.5
)

// Contact radii
const (
	// BulletHitRadius is the proximity at which a round hits the plane
	BulletHitRadius = 0.03

	// RocketHitRadius is the proximity at which a rocket hits the plane
	RocketHitRadius = 0.05

	// PickupRadius is the proximity at which gas is collected
	PickupRadius = 0.07
)

// Damage (fraction of a full tank) and rumble (screen shake magnitude)
const (
	BulletGasDamage = 0.04
	RocketGasDamage = 0.18

	BulletRumble = 0.3
	RocketRumble = 1.0
)

// HazardCullDistance is how far below the plane an entity may fall before it expires
const HazardCullDistance = 1.5
