package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gasup/audio"
	"github.com/lixenwraith/gasup/engine"
	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/input"
	"github.com/lixenwraith/gasup/parameter"
	"github.com/lixenwraith/gasup/render"
	"github.com/lixenwraith/gasup/replay"
	"github.com/lixenwraith/gasup/spectate"
	"github.com/lixenwraith/gasup/store"
)

// game wires one terminal to a sequence of sessions
// store, spectate and recordDir are optional
type game struct {
	cfg       engine.Config
	seed      int64
	recordDir string

	screen   tcell.Screen
	ctrl     *input.Controller
	term     *render.TerminalRenderer
	player   *audio.Player
	store    *store.Store
	spectate *spectate.Server

	// system carries quit and restart intents from the poll goroutine
	system chan input.IntentType
}

func newGame(cfg engine.Config, screen tcell.Screen, player *audio.Player) *game {
	ctrl := input.NewController(nil)
	ctrl.SetSize(screen.Size())
	return &game{
		cfg:    cfg,
		screen: screen,
		ctrl:   ctrl,
		term:   render.NewTerminalRenderer(screen),
		player: player,
		system: make(chan input.IntentType, 4),
	}
}

// run plays sessions until the player quits or ctx is cancelled
func (g *game) run(ctx context.Context) {
	go g.pollEvents()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for round := 0; ; round++ {
		res := g.session(ctx, ticker.C, round)
		g.ctrl.Reset()
		if res.Reason == engine.ReasonQuit || ctx.Err() != nil {
			return
		}
		g.drainSystem()
		if !g.awaitRestart(ctx) {
			return
		}
	}
}

// pollEvents feeds terminal events to the controller until the screen is finalised
func (g *game) pollEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			close(g.system)
			return
		}
		switch intent := g.ctrl.HandleEvent(ev); intent {
		case input.IntentToggleMute:
			if g.player != nil {
				log.Printf("audio muted=%v", g.player.ToggleMuted())
			}
		case input.IntentResize:
			g.screen.Sync()
		case input.IntentQuit, input.IntentRestart:
			select {
			case g.system <- intent:
			default:
			}
		}
	}
}

// drainSystem discards quit and restart intents queued during play
func (g *game) drainSystem() {
	for {
		select {
		case _, ok := <-g.system:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// awaitRestart blocks on the game-over screen; false means quit
func (g *game) awaitRestart(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case intent, ok := <-g.system:
			if !ok || intent == input.IntentQuit {
				return false
			}
			if intent == input.IntentRestart {
				return true
			}
		}
	}
}

// session resets cosmetic state and runs one session to completion
func (g *game) session(ctx context.Context, frames <-chan time.Time, round int) engine.Result {
	g.term.Reset()
	if g.spectate != nil {
		g.spectate.Reset()
	}
	g.drainSystem()

	seed := g.seedFor(round)
	loop := engine.Loop{
		Config:   g.cfg,
		Seed:     seed,
		Input:    g.ctrl,
		Renderer: g.renderer(),
		Sink:     g.sink(),
	}
	if g.store != nil {
		loop.Store = g.store
	}
	if w := g.recorder(ctx, seed); w != nil {
		loop.Recorder = w
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("replay: close: %v", err)
			}
		}()
	}

	log.Printf("session start: round=%d seed=%d", round, seed)
	return loop.Run(ctx, frames)
}

// seedFor returns the fixed seed when one was given, else a fresh one per round
func (g *game) seedFor(round int) int64 {
	if g.seed != 0 {
		return g.seed
	}
	return time.Now().UnixNano() + int64(round)
}

func (g *game) renderer() engine.Renderer {
	if g.spectate == nil {
		return g.term
	}
	return render.Multi{g.term, g.spectate}
}

func (g *game) sink() engine.EventSink {
	var sinks event.Fanout
	if g.player != nil {
		sinks = append(sinks, g.player)
	}
	if g.spectate != nil {
		sinks = append(sinks, g.spectate)
	}
	return sinks
}

// recorder opens a replay log for the session; failures disable recording
func (g *game) recorder(ctx context.Context, seed int64) *replay.Writer {
	if g.recordDir == "" {
		return nil
	}
	var best float64
	if g.store != nil {
		b, err := g.store.Best(ctx)
		if err != nil {
			log.Printf("store: load best: %v", err)
		}
		best = b
	}
	name := fmt.Sprintf("gasup-%d-%s.jsonl.zst", seed, time.Now().Format("20060102-150405"))
	w, err := replay.Create(filepath.Join(g.recordDir, name), replay.Header{Seed: seed, Best: best, Config: g.cfg})
	if err != nil {
		log.Printf("replay: %v", err)
		return nil
	}
	return w
}
