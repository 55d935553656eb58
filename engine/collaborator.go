package engine

import (
	"context"

	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/physics"
)

// Control is one tick of player input
// Throttle in [0, 1], Steer in [-1, 1] with positive turning left
type Control struct {
	Throttle float64 `json:"throttle"`
	Steer    float64 `json:"steer"`
	Quit     bool    `json:"-"`
}

// Renderer draws a frame; called from the loop goroutine
type Renderer interface {
	Render(f *Frame)
}

// InputSource reports the current control state; must be safe to call while input arrives on another goroutine
type InputSource interface {
	Poll() Control
}

// ScoreStore persists the best altitude; failures are logged and ignored
type ScoreStore interface {
	Best(ctx context.Context) (float64, error)
	Save(ctx context.Context, altitude float64) error
}

// RunLog optionally records finished sessions; a ScoreStore may implement it
type RunLog interface {
	RecordRun(ctx context.Context, seed int64, res Result) error
}

// TickRecord is one replay log line
type TickRecord struct {
	Tick    int64         `json:"tick"`
	Dt      float64       `json:"dt"`
	Control Control       `json:"control"`
	Plane   physics.Plane `json:"plane"`
	Gas     float64       `json:"gas"`
}

// TickRecorder receives one record per simulated tick
type TickRecorder interface {
	Record(rec TickRecord) error
}

// EventSink receives every drained game event
type EventSink = event.Sink
