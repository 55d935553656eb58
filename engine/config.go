package engine

import (
	"github.com/lixenwraith/gasup/hazard"
	"github.com/lixenwraith/gasup/parameter"
	"github.com/lixenwraith/gasup/physics"
	"github.com/lixenwraith/gasup/terrain"
)

// Config aggregates every tunable the simulation reads
type Config struct {
	Terrain terrain.Config       `yaml:"terrain"`
	Flight  physics.FlightParams `yaml:"flight"`
	Hazard  hazard.Params        `yaml:"hazard"`
	Session SessionParams        `yaml:"session"`
}

// SessionParams tunes gas, streaming and camera behavior
type SessionParams struct {
	StartAltitude    float64 `yaml:"start_altitude"`
	GasBurnRate      float64 `yaml:"gas_burn_rate"`
	MaterializeAhead float64 `yaml:"materialize_ahead"`
	CollisionWindow  float64 `yaml:"collision_window"`
	CameraFallLimit  float64 `yaml:"camera_fall_limit"`
	MilestoneStep    float64 `yaml:"milestone_step"`
	WindParticleRate float64 `yaml:"wind_particle_rate"`
}

func DefaultConfig() Config {
	return Config{
		Terrain: terrain.DefaultConfig(),
		Flight:  physics.DefaultFlightParams(),
		Hazard:  hazard.DefaultParams(),
		Session: SessionParams{
			StartAltitude:    parameter.SessionStartAltitude,
			GasBurnRate:      parameter.GasBurnRate,
			MaterializeAhead: parameter.MaterializeAhead,
			CollisionWindow:  parameter.CollisionWindow,
			CameraFallLimit:  parameter.CameraFallLimit,
			MilestoneStep:    parameter.AltitudeMilestoneStep,
			WindParticleRate: parameter.WindParticleRate,
		},
	}
}

// ViewHeight is the vertical extent a renderer should show
func (c Config) ViewHeight() float64 {
	return c.Session.CameraFallLimit + c.Session.MaterializeAhead
}
