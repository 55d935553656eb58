package physics

import "github.com/lixenwraith/gasup/parameter"

// FlightParams tunes the plane's flight model
type FlightParams struct {
	TurnRate   float64 `yaml:"turn_rate"`
	Thrust     float64 `yaml:"thrust"`
	MaxSpeed   float64 `yaml:"max_speed"`
	WingAlign  float64 `yaml:"wing_align"`
	Gravity    float64 `yaml:"gravity"`
	MaxDt      float64 `yaml:"max_dt"`
	StartAngle float64 `yaml:"start_angle"`
	StartSpeed float64 `yaml:"start_speed"`
}

func DefaultFlightParams() FlightParams {
	return FlightParams{
		TurnRate:   parameter.FlightTurnRate,
		Thrust:     parameter.FlightThrust,
		MaxSpeed:   parameter.FlightMaxSpeed,
		WingAlign:  parameter.FlightWingAlign,
		Gravity:    parameter.FlightGravity,
		MaxDt:      parameter.FlightMaxDt,
		StartAngle: parameter.FlightStartAngle,
		StartSpeed: parameter.FlightStartSpeed,
	}
}
