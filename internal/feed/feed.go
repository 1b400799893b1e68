// Package feed streams run events over WebSocket so an external
// narration layer can follow the game in real time.
package feed

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// Event kinds published on the feed.
const (
	TypeRoundStart = "round_start"
	TypeTurn       = "turn"
	TypeStatus     = "status"
	TypeRoundEnd   = "round_end"
)

// Event is the JSON payload pushed to every connected client.
type Event struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty,omitempty"`
	Persona    string `json:"persona,omitempty"`
	Turn       int    `json:"turn"`
	Health     int    `json:"health"`
	MaxHealth  int    `json:"max_health"`
	PlayerX    int    `json:"player_x"`
	PlayerY    int    `json:"player_y"`
	// ExitDistance is the Manhattan distance from the player to the exit.
	ExitDistance int `json:"exit_distance"`
	// DroneDistance is -1 when no drones remain on the board.
	DroneDistance int    `json:"drone_distance"`
	Mood          string `json:"mood,omitempty"`
	Outcome       string `json:"outcome,omitempty"`
	Caught        bool   `json:"caught,omitempty"`
	Line          string `json:"line,omitempty"`
	Result        string `json:"result,omitempty"`
}

// Hub tracks connected clients and fans events out to them. A client
// whose write fails is dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// ClientCount reports how many clients are currently subscribed.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish sends an event to every subscribed client. Clients that fail
// to accept the write are closed and removed.
func (h *Hub) Publish(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Error("feed: cannot marshal event", "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Debug("feed: dropping client", "remote", conn.RemoteAddr(), "err", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Server exposes the hub at /events over HTTP.
type Server struct {
	hub      *Hub
	upgrader websocket.Upgrader
	httpSrv  *http.Server
	addr     net.Addr
}

// NewServer wires a hub into an HTTP server listening on addr.
func NewServer(addr string) *Server {
	s := &Server{
		hub: NewHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.handleEvents)
	s.httpSrv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Hub returns the hub for publishing events.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Publish forwards an event to all subscribed clients.
func (s *Server) Publish(ev Event) {
	s.hub.Publish(ev)
}

// Addr returns the bound listener address, nil before Start.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Start binds the listener and serves in the background. Bind errors
// are returned synchronously.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		return err
	}
	s.addr = ln.Addr()
	log.Info("feed: listening", "addr", ln.Addr())

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Error("feed: server stopped", "err", err)
		}
	}()
	return nil
}

// Shutdown stops accepting clients and closes the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug("feed: upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	s.hub.add(conn)
	log.Info("feed: client connected", "remote", conn.RemoteAddr())

	// The feed is one-way. Reading drains control frames and tells us
	// when the client goes away.
	go func() {
		defer func() {
			s.hub.remove(conn)
			conn.Close()
			log.Info("feed: client disconnected", "remote", conn.RemoteAddr())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
