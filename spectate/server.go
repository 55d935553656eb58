package spectate

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/gasup/engine"
	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/parameter"
)

// frameMsg wraps a frame in the same envelope shape as events
type frameMsg struct {
	Type    string        `json:"type"`
	Tick    int64         `json:"tick"`
	Payload *engine.Frame `json:"payload"`
}

type client struct {
	out chan []byte
}

// Server streams a running session to websocket spectators
// Implements engine.Renderer and engine.EventSink; both are called from the loop goroutine
// and never block on a slow client
type Server struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	recent  [][]byte
}

func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Handler upgrades spectators; each joiner first receives the recent chunks
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		c := s.join()
		defer s.leave(c)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for b := range c.out {
				_ = conn.SetWriteDeadline(time.Now().Add(parameter.SpectateWriteTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					_ = conn.Close()
					return
				}
			}
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "session over"),
				time.Now().Add(time.Second))
			_ = conn.Close()
		}()

		// Spectators are read-only; reading only services control frames
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		s.leave(c)
		<-done
	}
}

// Clients returns the number of connected spectators
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Handle broadcasts an event; chunk events are kept for late joiners
func (s *Server) Handle(ev event.GameEvent) {
	if ev.Type == event.EventWindParticle {
		return
	}
	b, err := event.Marshal(ev)
	if err != nil {
		log.Printf("spectate: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.Type == event.EventChunkMaterialized {
		s.recent = append(s.recent, b)
		if n := len(s.recent) - parameter.SpectateRecentChunks; n > 0 {
			s.recent = append(s.recent[:0], s.recent[n:]...)
		}
	}
	s.broadcastLocked(b)
}

// Render broadcasts the frame snapshot
func (s *Server) Render(f *engine.Frame) {
	if s.Clients() == 0 {
		return
	}
	b, err := json.Marshal(frameMsg{Type: "frame", Tick: f.Tick, Payload: f})
	if err != nil {
		log.Printf("spectate: marshal frame %d: %v", f.Tick, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcastLocked(b)
}

// Reset forgets the recent chunks before a new session starts
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = s.recent[:0]
}

// Close disconnects every spectator
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.out)
	}
}

func (s *Server) join() *client {
	c := &client{out: make(chan []byte, parameter.SpectateClientQueue+parameter.SpectateRecentChunks)}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.recent {
		c.out <- b
	}
	s.clients[c] = struct{}{}
	return c
}

func (s *Server) leave(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.out)
	}
}

// broadcastLocked queues b for every client, disconnecting any whose queue is full
func (s *Server) broadcastLocked(b []byte) {
	for c := range s.clients {
		select {
		case c.out <- b:
		default:
			log.Printf("spectate: dropping slow client")
			delete(s.clients, c)
			close(c.out)
		}
	}
}
