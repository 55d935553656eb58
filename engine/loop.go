package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/parameter"
)

// Loop runs one session against its collaborators
// Store, Recorder and Sink are optional
type Loop struct {
	Config   Config
	Seed     int64
	Input    InputSource
	Renderer Renderer
	Store    ScoreStore
	Recorder TickRecorder
	Sink     EventSink
}

// Run blocks on frames, stepping the session once per received frame until it ends
// Cancelling ctx or closing frames ends the run with ReasonQuit
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time) Result {
	best := l.loadBest(ctx)
	s := NewSession(l.Config, l.Seed, best)
	l.publish(ctx, s, s.Drain())

	var last time.Time
	for {
		var now time.Time
		select {
		case <-ctx.Done():
			return l.finish(ctx, s, ReasonQuit, best)
		case t, ok := <-frames:
			if !ok {
				return l.finish(ctx, s, ReasonQuit, best)
			}
			now = t
		}

		dt := parameter.FrameUpdateInterval.Seconds()
		if !last.IsZero() {
			dt = now.Sub(last).Seconds()
		}
		last = now

		ctl := l.Input.Poll()
		if ctl.Quit {
			return l.finish(ctx, s, ReasonQuit, best)
		}

		done := s.Step(dt, ctl)
		if l.Recorder != nil {
			rec := TickRecord{Tick: s.Tick(), Dt: dt, Control: ctl, Plane: s.Plane(), Gas: s.Gas()}
			if err := l.Recorder.Record(rec); err != nil {
				log.Printf("replay: record tick %d: %v", rec.Tick, err)
				l.Recorder = nil
			}
		}
		l.publish(ctx, s, s.Drain())

		if done {
			return l.finish(ctx, s, s.Result().Reason, best)
		}
	}
}

// publish forwards events to the sink, persists milestones and renders
func (l *Loop) publish(ctx context.Context, s *Session, events []event.GameEvent) {
	for _, ev := range events {
		if l.Sink != nil {
			l.Sink.Handle(ev)
		}
		if ev.Type == event.EventAltitudeMilestone {
			if p, ok := ev.Payload.(*event.AltitudePayload); ok {
				l.saveBest(ctx, p.Altitude)
			}
		}
	}
	l.Renderer.Render(s.Frame(events))
}

func (l *Loop) finish(ctx context.Context, s *Session, reason Reason, best float64) Result {
	s.End(reason)
	res := s.Result()

	// Final frame carries the result
	if reason == ReasonQuit {
		l.publish(ctx, s, s.Drain())
	}

	if res.Altitude > best {
		// The run context may already be cancelled
		l.saveBest(context.WithoutCancel(ctx), res.Altitude)
	}
	if rl, ok := l.Store.(RunLog); ok {
		if err := rl.RecordRun(context.WithoutCancel(ctx), l.Seed, res); err != nil {
			log.Printf("store: record run: %v", err)
		}
	}
	log.Printf("session end: %s altitude=%.2f ticks=%d", res.Reason, res.Altitude, res.Ticks)
	return res
}

func (l *Loop) loadBest(ctx context.Context) float64 {
	if l.Store == nil {
		return 0
	}
	best, err := l.Store.Best(ctx)
	if err != nil {
		log.Printf("store: load best: %v", err)
		return 0
	}
	return best
}

func (l *Loop) saveBest(ctx context.Context, altitude float64) {
	if l.Store == nil {
		return
	}
	if err := l.Store.Save(ctx, altitude); err != nil {
		log.Printf("store: save best: %v", err)
	}
}
