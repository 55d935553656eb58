package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame signal interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 512

	// EventBufferMask is the bitmask for fast modulo operations (512 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Gas
const (
	// GasBurnRate is gas spent per second at full throttle (fraction of a tank)
	GasBurnRate = 0.025
)

// Streaming and camera
const (
	// SessionStartAltitude is the plane's starting height above the terrain origin
	SessionStartAltitude = 0.25

	// MaterializeAhead is how far above the plane chunks are materialised for rendering
	MaterializeAhead = 2.0

	// CollisionWindow is the half-height of the terrain window used for wall tests
	CollisionWindow = 0.09

	// CameraFallLimit is how far below the best altitude the plane may fall before leaving the screen
	CameraFallLimit = 0.8

	// AltitudeMilestoneStep is the altitude between milestone events once the best is beaten
	AltitudeMilestoneStep = 5.0
)

// Wind streaks (cosmetic)
const (
	// WindParticleRate is streaks emitted per second at full speed
	WindParticleRate = 30.0
)

// Spectator stream
const (
	// SpectateRecentChunks is the number of chunks replayed to a joining spectator
	SpectateRecentChunks = 16

	// SpectateClientQueue is the per-client outbound message buffer
	SpectateClientQueue = 64

	// SpectateWriteTimeout bounds a single websocket write
	SpectateWriteTimeout = 5 * time.Second
)
