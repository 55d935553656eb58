package hazard

import (
	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/physics"
	"github.com/lixenwraith/gasup/vmath"
)

// Kind tags an entity variant
type Kind uint8

const (
	KindGatling Kind = iota
	KindRocketSite
	KindBullet
	KindRocket
	KindPickup
)

var kindNames = [...]string{
	KindGatling:    "gatling",
	KindRocketSite: "rocket_site",
	KindBullet:     "bullet",
	KindRocket:     "rocket",
	KindPickup:     "pickup",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name for JSON frames
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// World is the session state an entity may read or change during its tick
type World interface {
	// Plane returns the current plane state
	Plane() physics.Plane
	// Spawn adds an entity, ticked from the next frame on
	Spawn(e Entity)
	// DrainGas removes a fraction of a tank, floored at zero
	DrainGas(amount float64)
	// RefillGas resets the tank to full
	RefillGas()
	// Emit queues a game event stamped with the current tick
	Emit(et event.EventType, payload any)
	// Rand is the hazard random stream
	Rand() vmath.Source
}

// Entity is a tickable world object
// Tick returns true once the entity should be removed
type Entity interface {
	Kind() Kind
	Position() vmath.Vec2
	Angle() float64
	Tick(dt float64, w World) (expired bool)
}

// culled reports whether pos has fallen too far below the plane to matter
func culled(pos vmath.Vec2, w World, prm *Params) bool {
	return w.Plane().Pos.Y-pos.Y > prm.CullDistance
}
