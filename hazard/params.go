package hazard

import (
	"github.com/lixenwraith/gasup/parameter"
	"github.com/lixenwraith/gasup/physics"
)

// Params tunes every hazard variant
type Params struct {
	GatlingRange    float64 `yaml:"gatling_range"`
	GatlingArc      float64 `yaml:"gatling_arc"`
	GatlingCooldown float64 `yaml:"gatling_cooldown"`
	GatlingSpread   float64 `yaml:"gatling_spread"`

	RocketSiteRange    float64 `yaml:"rocket_site_range"`
	RocketSiteCooldown float64 `yaml:"rocket_site_cooldown"`

	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletRange    float64 `yaml:"bullet_range"`
	RocketSpeed    float64 `yaml:"rocket_speed"`
	RocketTurnRate float64 `yaml:"rocket_turn_rate"`
	RocketLifetime float64 `yaml:"rocket_lifetime"`

	BulletHitRadius float64 `yaml:"bullet_hit_radius"`
	RocketHitRadius float64 `yaml:"rocket_hit_radius"`
	PickupRadius    float64 `yaml:"pickup_radius"`

	BulletGasDamage float64 `yaml:"bullet_gas_damage"`
	RocketGasDamage float64 `yaml:"rocket_gas_damage"`
	BulletRumble    float64 `yaml:"bullet_rumble"`
	RocketRumble    float64 `yaml:"rocket_rumble"`

	CullDistance float64 `yaml:"cull_distance"`
}

func DefaultParams() Params {
	return Params{
		GatlingRange:       parameter.GatlingRange,
		GatlingArc:         parameter.GatlingArc,
		GatlingCooldown:    parameter.GatlingCooldown,
		GatlingSpread:      parameter.GatlingSpread,
		RocketSiteRange:    parameter.RocketSiteRange,
		RocketSiteCooldown: parameter.RocketSiteCooldown,
		BulletSpeed:        parameter.BulletSpeed,
		BulletRange:        parameter.BulletRange,
		RocketSpeed:        parameter.RocketSpeed,
		RocketTurnRate:     parameter.RocketTurnRate,
		RocketLifetime:     parameter.RocketLifetime,
		BulletHitRadius:    parameter.BulletHitRadius,
		RocketHitRadius:    parameter.RocketHitRadius,
		PickupRadius:       parameter.PickupRadius,
		BulletGasDamage:    parameter.BulletGasDamage,
		RocketGasDamage:    parameter.RocketGasDamage,
		BulletRumble:       parameter.BulletRumble,
		RocketRumble:       parameter.RocketRumble,
		CullDistance:       parameter.HazardCullDistance,
	}
}

func (p *Params) rocketHoming() physics.HomingProfile {
	return physics.HomingProfile{Speed: p.RocketSpeed, TurnRate: p.RocketTurnRate}
}
