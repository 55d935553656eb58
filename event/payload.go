package event

import "github.com/lixenwraith/gasup/terrain"

// ChunkPayload carries a newly materialised chunk
type ChunkPayload struct {
	Chunk *terrain.Chunk `json:"chunk"`
}

// EntityPayload describes an entity at spawn or expiry
type EntityPayload struct {
	ID    uint64  `json:"id"`
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// ShotPayload describes a projectile launch
type ShotPayload struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// ImpactPayload describes a hit on the plane
// Magnitude drives screen rumble; GasLost is the fraction of a tank drained
type ImpactPayload struct {
	Source    string  `json:"source"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Magnitude float64 `json:"magnitude"`
	GasLost   float64 `json:"gas_lost"`
}

// PointPayload is a bare world position
type PointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AltitudePayload carries the plane altitude and the best on record
type AltitudePayload struct {
	Altitude float64 `json:"altitude"`
	Best     float64 `json:"best"`
}

// WindPayload is a streak origin and drift velocity
type WindPayload struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}
