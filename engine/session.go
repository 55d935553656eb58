package engine

import (
	"math"

	"github.com/lixenwraith/gasup/collision"
	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/hazard"
	"github.com/lixenwraith/gasup/physics"
	"github.com/lixenwraith/gasup/terrain"
	"github.com/lixenwraith/gasup/vmath"
)

// Random stream ids derived from the session seed
const (
	streamPath uint64 = iota
	streamDetail
	streamHazard
	streamFX
)

// Reason is why a session ended
type Reason int

const (
	ReasonNone Reason = iota
	ReasonCrash
	ReasonOutOfBounds
	ReasonQuit
)

func (r Reason) String() string {
	switch r {
	case ReasonCrash:
		return "crash"
	case ReasonOutOfBounds:
		return "out-of-bounds"
	case ReasonQuit:
		return "quit"
	default:
		return "running"
	}
}

// Result is the end-of-session signal
// Altitude is the highest point reached
type Result struct {
	Reason   Reason
	Altitude float64
	Ticks    int64
}

type tracked struct {
	id uint64
	hazard.Entity
}

// Session owns all mutable game state for one run
// Every method must be called from the loop goroutine
type Session struct {
	cfg     Config
	terrain *terrain.Terrain
	plane   physics.Plane
	gas     float64

	entities []tracked
	pending  []tracked
	nextID   uint64

	queue  *event.EventQueue
	hazard vmath.Source
	fx     vmath.Source

	tick          int64
	nextChunk     int
	maxAltitude   float64
	best          float64
	nextMilestone float64
	windAcc       float64
	throttle      float64

	result Result
}

// NewSession builds the terrain for seed, places the plane mid-canyon and
// materialises every chunk in view of the start position
// best is the stored record used for milestone events
func NewSession(cfg Config, seed int64, best float64) *Session {
	s := &Session{
		cfg: cfg,
		terrain: terrain.NewTerrain(cfg.Terrain,
			vmath.NewFastRand(vmath.SplitSeed(seed, streamPath)),
			vmath.NewFastRand(vmath.SplitSeed(seed, streamDetail))),
		gas:    1,
		queue:  event.NewEventQueue(),
		hazard: vmath.NewFastRand(vmath.SplitSeed(seed, streamHazard)),
		fx:     vmath.NewFastRand(vmath.SplitSeed(seed, streamFX)),
		best:   best,
	}

	y := cfg.Session.StartAltitude
	k := int(math.Round(y / cfg.Terrain.PointStep()))
	start := vmath.Vec2{X: s.terrain.PointAt(k).Center(), Y: y}
	s.plane = physics.NewPlane(start, cfg.Flight)
	s.maxAltitude = y

	s.nextMilestone = cfg.Session.MilestoneStep
	if best > 0 {
		s.nextMilestone = best
	}

	for s.needsChunk() {
		s.materialize()
	}
	s.admitPending()
	return s
}

// Step advances the simulation by dt seconds under ctl
// Returns true once the session has ended; further calls are no-ops
func (s *Session) Step(dt float64, ctl Control) bool {
	if s.result.Reason != ReasonNone {
		return true
	}
	dt = physics.ClampDt(dt, s.cfg.Flight.MaxDt)
	s.tick++

	throttle := vmath.Clamp(ctl.Throttle, 0, 1)
	if s.gas <= 0 {
		throttle = 0
	}
	s.throttle = throttle
	if throttle > 0 {
		s.DrainGas(throttle * s.cfg.Session.GasBurnRate * dt)
	}

	s.plane = physics.Step(s.plane, dt, throttle, ctl.Steer, s.cfg.Flight)
	s.emitWind(dt)

	if s.needsChunk() {
		s.materialize()
	}
	s.tickEntities(dt)
	s.admitPending()

	s.trackAltitude()
	s.checkEnd()
	return s.result.Reason != ReasonNone
}

// End stops the session with reason unless it already ended
func (s *Session) End(reason Reason) {
	if s.result.Reason == ReasonNone {
		s.result = Result{Reason: reason, Altitude: s.maxAltitude, Ticks: s.tick}
	}
}

// Result returns the outcome, Reason is ReasonNone while running
func (s *Session) Result() Result {
	return s.result
}

// Drain returns and clears the events queued since the last call
func (s *Session) Drain() []event.GameEvent {
	return s.queue.Consume()
}

func (s *Session) Tick() int64 { return s.tick }

func (s *Session) Gas() float64 { return s.gas }

func (s *Session) MaxAltitude() float64 { return s.maxAltitude }

// CameraBottom is the lowest visible height; falling below it ends the run
func (s *Session) CameraBottom() float64 {
	return s.maxAltitude - s.cfg.Session.CameraFallLimit
}

// MaterializedTop is the height of the last materialised point
func (s *Session) MaterializedTop() float64 {
	return s.chunkBase(s.nextChunk) - s.terrain.Config().PointStep()
}

// === hazard.World ===

func (s *Session) Plane() physics.Plane { return s.plane }

func (s *Session) Rand() vmath.Source { return s.hazard }

func (s *Session) Spawn(e hazard.Entity) {
	s.nextID++
	s.pending = append(s.pending, tracked{id: s.nextID, Entity: e})
}

func (s *Session) DrainGas(amount float64) {
	if s.gas <= 0 {
		return
	}
	s.gas = math.Max(0, s.gas-amount)
	if s.gas == 0 {
		s.Emit(event.EventGasEmpty, nil)
	}
}

func (s *Session) RefillGas() {
	s.gas = 1
}

func (s *Session) Emit(et event.EventType, payload any) {
	event.Emit(s.queue, et, payload, s.tick)
}

// === internals ===

func (s *Session) chunkBase(i int) float64 {
	tc := s.terrain.Config()
	return float64(i*tc.PointsPerChunk) * tc.PointStep()
}

func (s *Session) needsChunk() bool {
	return s.chunkBase(s.nextChunk) <= s.plane.Pos.Y+s.cfg.Session.MaterializeAhead
}

// materialize hands the next chunk to the renderer and spawns its hazards
func (s *Session) materialize() {
	c := s.terrain.Chunk(s.nextChunk)
	s.nextChunk++
	s.Emit(event.EventChunkMaterialized, &event.ChunkPayload{Chunk: c})
	for _, e := range hazard.FromChunk(c, &s.cfg.Hazard) {
		s.Spawn(e)
	}
}

func (s *Session) tickEntities(dt float64) {
	kept := s.entities[:0]
	for _, t := range s.entities {
		if t.Tick(dt, s) {
			s.Emit(event.EventEntityExpired, entityPayload(t))
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = tracked{}
	}
	s.entities = kept
}

// admitPending moves spawned entities into the world; they tick from the next step
func (s *Session) admitPending() {
	for _, t := range s.pending {
		s.Emit(event.EventEntitySpawned, entityPayload(t))
		s.entities = append(s.entities, t)
	}
	s.pending = s.pending[:0]
}

func entityPayload(t tracked) *event.EntityPayload {
	pos := t.Position()
	return &event.EntityPayload{
		ID:    t.id,
		Kind:  t.Kind().String(),
		X:     pos.X,
		Y:     pos.Y,
		Angle: t.Angle(),
	}
}

// emitWind sheds cosmetic streaks behind the plane at a rate proportional to airspeed
func (s *Session) emitWind(dt float64) {
	speed := vmath.V2Mag(s.plane.Vel)
	s.windAcc += s.cfg.Session.WindParticleRate * speed / s.cfg.Flight.MaxSpeed * dt
	for s.windAcc >= 1 {
		s.windAcc--
		tail := vmath.V2Sub(s.plane.Pos, vmath.V2Scale(s.plane.Heading(), 0.03))
		s.Emit(event.EventWindParticle, &event.WindPayload{
			X:  tail.X,
			Y:  tail.Y,
			VX: -0.3*s.plane.Vel.X + vmath.Fuzz(s.fx, 0, 0.05),
			VY: -0.3*s.plane.Vel.Y + vmath.Fuzz(s.fx, 0, 0.05),
		})
	}
}

func (s *Session) trackAltitude() {
	if s.plane.Pos.Y > s.maxAltitude {
		s.maxAltitude = s.plane.Pos.Y
	}
	for s.cfg.Session.MilestoneStep > 0 && s.maxAltitude > s.nextMilestone {
		s.Emit(event.EventAltitudeMilestone, &event.AltitudePayload{
			Altitude: s.maxAltitude,
			Best:     s.best,
		})
		s.nextMilestone += s.cfg.Session.MilestoneStep
	}
}

func (s *Session) checkEnd() {
	res := collision.CheckWall(s.terrain, s.plane.Pos, s.cfg.Session.CollisionWindow)
	if res.Crashed {
		s.Emit(event.EventCrash, &event.AltitudePayload{Altitude: s.maxAltitude, Best: s.best})
		s.End(ReasonCrash)
		return
	}
	if s.plane.Pos.Y < s.CameraBottom() {
		s.Emit(event.EventOutOfBounds, &event.AltitudePayload{Altitude: s.maxAltitude, Best: s.best})
		s.End(ReasonOutOfBounds)
	}
}
