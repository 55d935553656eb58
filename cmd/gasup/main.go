package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gasup/audio"
	"github.com/lixenwraith/gasup/config"
	"github.com/lixenwraith/gasup/spectate"
	"github.com/lixenwraith/gasup/store"
)

var (
	configFlag   = flag.String("config", "", "YAML config overlay (optional)")
	dumpConfig   = flag.Bool("dump-config", false, "print the effective config as YAML and exit")
	seedFlag     = flag.Int64("seed", 0, "fixed session seed; 0 picks a fresh seed per session")
	dbFlag       = flag.String("db", "data/gasup.db", "SQLite score database; empty disables persistence")
	recordFlag   = flag.String("record", "", "directory for replay logs (optional)")
	spectateFlag = flag.String("spectate", "", "listen address for the spectator websocket, e.g. :8080 (optional)")
	muteFlag     = flag.Bool("mute", false, "start with audio muted")
	debugFlag    = flag.Bool("debug", false, "write logs to logs/gasup.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *dumpConfig {
		out, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal config:", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGASUP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()
	player.SetMuted(*muteFlag)

	g := newGame(cfg, screen, player)
	g.seed = *seedFlag
	g.recordDir = *recordFlag

	if *dbFlag != "" {
		st, err := store.Open(*dbFlag)
		if err != nil {
			log.Printf("%v (continuing without persistence)", err)
		} else {
			g.store = st
			defer st.Close()
		}
	}

	if *spectateFlag != "" {
		g.spectate = spectate.NewServer()
		srv := startSpectate(*spectateFlag, g.spectate)
		defer func() {
			g.spectate.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	g.run(ctx)
}

// startSpectate serves the spectator stream at /ws in the background
func startSpectate(addr string, s *spectate.Server) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/ws", s.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectate: %v", err)
		}
	}()
	log.Printf("spectate: listening on %s", addr)
	return srv
}
