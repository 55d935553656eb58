package engine

import (
	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/hazard"
	"github.com/lixenwraith/gasup/physics"
	"github.com/lixenwraith/gasup/terrain"
	"github.com/lixenwraith/gasup/vmath"
)

// EntityView is a read-only entity snapshot for renderers
type EntityView struct {
	ID    uint64      `json:"id"`
	Kind  hazard.Kind `json:"kind"`
	Pos   vmath.Vec2  `json:"pos"`
	Angle float64     `json:"angle"`
}

// Frame is everything a renderer needs for one tick
// Slices are copies owned by the receiver
type Frame struct {
	Tick         int64             `json:"tick"`
	Plane        physics.Plane     `json:"plane"`
	Throttle     float64           `json:"throttle"`
	Gas          float64           `json:"gas"`
	MaxAltitude  float64           `json:"max_altitude"`
	Best         float64           `json:"best"`
	CameraBottom float64           `json:"camera_bottom"`
	ViewHeight   float64           `json:"view_height"`
	Terrain      []terrain.Point   `json:"-"`
	Entities     []EntityView      `json:"entities"`
	Events       []event.GameEvent `json:"-"`
	Result       *Result           `json:"result,omitempty"`
}

// Frame snapshots the session with the events drained for this tick
// The terrain window covers the camera view up to the last materialised point
func (s *Session) Frame(events []event.GameEvent) *Frame {
	view := s.cfg.ViewHeight()
	bottom := s.CameraBottom()
	top := min(bottom+view, s.MaterializedTop())

	f := &Frame{
		Tick:         s.tick,
		Plane:        s.plane,
		Throttle:     s.throttle,
		Gas:          s.gas,
		MaxAltitude:  s.maxAltitude,
		Best:         s.best,
		CameraBottom: bottom,
		ViewHeight:   view,
		Terrain:      terrain.QueryRange(s.terrain, bottom, top),
		Entities:     make([]EntityView, 0, len(s.entities)),
		Events:       events,
	}
	for _, t := range s.entities {
		f.Entities = append(f.Entities, EntityView{
			ID:    t.id,
			Kind:  t.Kind(),
			Pos:   t.Position(),
			Angle: t.Angle(),
		})
	}
	if s.result.Reason != ReasonNone {
		res := s.result
		f.Result = &res
	}
	return f
}
