package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/hazard"
)

func countEvents(events []event.GameEvent, et event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

const frameDt = 1.0 / 60

func TestNewSessionPrimesView(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg, 1, 0)
	events := s.Drain()

	chunkHeight := float64(cfg.Terrain.PointsPerChunk) * cfg.Terrain.PointStep()
	want := int(math.Floor((cfg.Session.StartAltitude+cfg.Session.MaterializeAhead)/chunkHeight)) + 1
	if got := countEvents(events, event.EventChunkMaterialized); got != want {
		t.Errorf("Expected %d primed chunks, got %d", want, got)
	}
	if s.Gas() != 1 {
		t.Errorf("Expected a full tank, got %v", s.Gas())
	}
	if s.Plane().Pos.Y != cfg.Session.StartAltitude {
		t.Errorf("Expected start altitude %v, got %v", cfg.Session.StartAltitude, s.Plane().Pos.Y)
	}
	if s.Result().Reason != ReasonNone {
		t.Errorf("Expected running session, got %s", s.Result().Reason)
	}
}

func TestStepMaterialisesOneChunkPerTick(t *testing.T) {
	s := NewSession(DefaultConfig(), 3, 0)
	s.Drain()

	// Teleport far ahead: the backlog drains one chunk per step
	s.plane.Pos.Y = 10
	s.maxAltitude = 10
	before := s.nextChunk
	s.Step(frameDt, Control{})
	if got := countEvents(s.Drain(), event.EventChunkMaterialized); got > 1 {
		t.Errorf("Expected at most one chunk per tick, got %d", got)
	}
	if s.nextChunk != before+1 {
		t.Errorf("Expected next chunk %d, got %d", before+1, s.nextChunk)
	}
}

func TestStepCrashIntoWall(t *testing.T) {
	s := NewSession(DefaultConfig(), 5, 0)
	s.Drain()
	s.plane.Pos.X = 100

	if !s.Step(frameDt, Control{}) {
		t.Fatal("Expected the session to end")
	}
	res := s.Result()
	if res.Reason != ReasonCrash {
		t.Errorf("Expected crash, got %s", res.Reason)
	}
	if res.Ticks != 1 {
		t.Errorf("Expected 1 tick, got %d", res.Ticks)
	}
	if countEvents(s.Drain(), event.EventCrash) != 1 {
		t.Error("Expected a crash event")
	}
	if !s.Step(frameDt, Control{Throttle: 1}) || s.Tick() != 1 {
		t.Error("Expected steps after the end to be no-ops")
	}
}

func TestStepOutOfBounds(t *testing.T) {
	s := NewSession(DefaultConfig(), 5, 0)
	s.Drain()

	s.maxAltitude = 3
	k := int(math.Round(1 / s.cfg.Terrain.PointStep()))
	s.plane.Pos.X = s.terrain.PointAt(k).Center()
	s.plane.Pos.Y = 1

	if !s.Step(frameDt, Control{}) {
		t.Fatal("Expected the session to end")
	}
	if s.Result().Reason != ReasonOutOfBounds {
		t.Errorf("Expected out-of-bounds, got %s", s.Result().Reason)
	}
	if s.Result().Altitude != 3 {
		t.Errorf("Expected altitude 3, got %v", s.Result().Altitude)
	}
	if countEvents(s.Drain(), event.EventOutOfBounds) != 1 {
		t.Error("Expected an out-of-bounds event")
	}
}

func TestGasBurnAndEmpty(t *testing.T) {
	s := NewSession(DefaultConfig(), 7, 0)
	s.Drain()

	s.Step(frameDt, Control{Throttle: 1})
	want := 1 - s.cfg.Session.GasBurnRate*frameDt
	if math.Abs(s.Gas()-want) > 1e-12 {
		t.Errorf("Expected gas %v, got %v", want, s.Gas())
	}

	s.gas = 1e-9
	s.Step(frameDt, Control{Throttle: 1})
	if s.Gas() != 0 {
		t.Errorf("Expected empty tank, got %v", s.Gas())
	}
	if countEvents(s.Drain(), event.EventGasEmpty) != 1 {
		t.Error("Expected a gas-empty event")
	}

	s.Step(frameDt, Control{Throttle: 1})
	if s.throttle != 0 {
		t.Errorf("Expected thrust disabled on an empty tank, got %v", s.throttle)
	}
	if countEvents(s.Drain(), event.EventGasEmpty) != 0 {
		t.Error("Expected gas-empty only once")
	}
}

func TestMilestones(t *testing.T) {
	s := NewSession(DefaultConfig(), 7, 0.3)
	s.Drain()
	step := s.cfg.Session.MilestoneStep

	tests := []struct {
		y    float64
		want int
	}{
		{0.29, 0},
		{0.5, 1},
		{0.3 + step + 0.1, 1},
		{0.3 + 4*step - 0.1, 2},
	}
	for _, tt := range tests {
		s.plane.Pos.Y = tt.y
		s.trackAltitude()
		if got := countEvents(s.Drain(), event.EventAltitudeMilestone); got != tt.want {
			t.Errorf("At y=%v: expected %d milestones, got %d", tt.y, tt.want, got)
		}
	}
}

func TestFirstMilestoneWithoutRecord(t *testing.T) {
	s := NewSession(DefaultConfig(), 7, 0)
	s.Drain()
	s.plane.Pos.Y = s.cfg.Session.MilestoneStep - 0.1
	s.trackAltitude()
	if countEvents(s.Drain(), event.EventAltitudeMilestone) != 0 {
		t.Error("Expected no milestone below the first step")
	}
	s.plane.Pos.Y = s.cfg.Session.MilestoneStep + 0.1
	s.trackAltitude()
	if countEvents(s.Drain(), event.EventAltitudeMilestone) != 1 {
		t.Error("Expected the first milestone")
	}
}

func TestEntityLifecycleEvents(t *testing.T) {
	s := NewSession(DefaultConfig(), 9, 0)
	s.Drain()
	s.gas = 0.2

	s.Spawn(hazard.NewPickup(s.plane.Pos, &s.cfg.Hazard))
	s.admitPending()
	if countEvents(s.Drain(), event.EventEntitySpawned) != 1 {
		t.Fatal("Expected a spawn event")
	}
	if len(s.entities) != 1 {
		t.Fatalf("Expected one live entity, got %d", len(s.entities))
	}

	s.Step(frameDt, Control{})
	events := s.Drain()
	if countEvents(events, event.EventEntityExpired) != 1 || countEvents(events, event.EventGasCollected) != 1 {
		t.Errorf("Expected pickup to expire and refill, got %v", events)
	}
	if s.Gas() != 1 {
		t.Errorf("Expected full tank, got %v", s.Gas())
	}
	if len(s.entities) != 0 {
		t.Errorf("Expected no live entities, got %d", len(s.entities))
	}
}

func TestSessionDeterministic(t *testing.T) {
	a := NewSession(DefaultConfig(), 11, 0)
	b := NewSession(DefaultConfig(), 11, 0)
	for i := 0; i < 240; i++ {
		ctl := Control{Throttle: 0.8, Steer: math.Sin(float64(i) / 20)}
		da, db := a.Step(frameDt, ctl), b.Step(frameDt, ctl)
		if a.Plane() != b.Plane() || a.Gas() != b.Gas() || da != db {
			t.Fatalf("Tick %d: sessions diverged", i)
		}
		if da {
			break
		}
	}
}

func TestFrameTerrainWindow(t *testing.T) {
	s := NewSession(DefaultConfig(), 13, 0)
	f := s.Frame(s.Drain())

	if len(f.Terrain) == 0 {
		t.Fatal("Expected terrain in view")
	}
	top := s.MaterializedTop()
	for i, p := range f.Terrain {
		if p.Y() < f.CameraBottom-1e-9 || p.Y() > top+1e-9 {
			t.Errorf("Point %d at y=%v outside [%v, %v]", i, p.Y(), f.CameraBottom, top)
		}
	}
	if f.Result != nil {
		t.Error("Expected no result while running")
	}
	if len(f.Events) == 0 {
		t.Error("Expected primed events on the first frame")
	}
}

func TestReasonString(t *testing.T) {
	tests := map[Reason]string{
		ReasonNone:        "running",
		ReasonCrash:       "crash",
		ReasonOutOfBounds: "out-of-bounds",
		ReasonQuit:        "quit",
	}
	for r, want := range tests {
		if r.String() != want {
			t.Errorf("Expected %q, got %q", want, r.String())
		}
	}
}
