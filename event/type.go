package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// === Terrain Event ===

	// EventChunkMaterialized signals a chunk entered the render window for the first time
	// Trigger: Session streaming ahead of the plane
	// Consumer: Renderer, Spectate | Payload: *ChunkPayload
	EventChunkMaterialized

	// === Entity Event ===

	// EventEntitySpawned signals a hazard, projectile or pickup entered the world
	// Trigger: Session spawn from chunk markers, turrets and emplacements
	// Consumer: Renderer, Spectate | Payload: *EntityPayload
	EventEntitySpawned

	// EventEntityExpired signals an entity left the world
	// Trigger: Entity tick returning expired, culling
	// Consumer: Renderer, Spectate | Payload: *EntityPayload
	EventEntityExpired

	// EventBulletFired signals a gatling round left the barrel
	// Trigger: Gatling tick
	// Consumer: Audio | Payload: *ShotPayload
	EventBulletFired

	// EventRocketLaunched signals an emplacement launched a rocket
	// Trigger: RocketSite tick
	// Consumer: Audio | Payload: *ShotPayload
	EventRocketLaunched

	// === Player Event ===

	// EventImpact signals a projectile hit the plane
	// Trigger: Bullet and Rocket tick on contact
	// Consumer: Renderer (rumble), Audio | Payload: *ImpactPayload
	EventImpact

	// EventGasCollected signals a pickup refilled the tank
	// Trigger: Pickup tick on contact
	// Consumer: Audio, Renderer | Payload: *PointPayload
	EventGasCollected

	// EventGasEmpty signals the tank ran dry, thrust is disabled until refilled
	// Trigger: Session gas accounting
	// Consumer: Audio, Renderer | Payload: nil
	EventGasEmpty

	// EventAltitudeMilestone signals the session passed the stored best altitude
	// Trigger: Session after physics, once per AltitudeMilestoneStep
	// Consumer: ScoreStore (via engine), Audio | Payload: *AltitudePayload
	EventAltitudeMilestone

	// EventWindParticle is a cosmetic streak along the plane's wake
	// Trigger: Session, rate scaled by airspeed
	// Consumer: Renderer | Payload: *WindPayload
	EventWindParticle

	// === Terminal Event ===

	// EventCrash signals the plane hit a canyon wall; the session ends
	// Trigger: Session collision check
	// Consumer: Renderer, Audio, Spectate | Payload: *AltitudePayload
	EventCrash

	// EventOutOfBounds signals the plane fell below the camera; the session ends
	// Trigger: Session camera check
	// Consumer: Renderer, Audio, Spectate | Payload: *AltitudePayload
	EventOutOfBounds
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}

func (t EventType) String() string {
	if name := Name(t); name != "" {
		return name
	}
	return "EventUnknown"
}
