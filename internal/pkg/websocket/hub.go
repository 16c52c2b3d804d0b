package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EventStateChanged is published after every intent that touched a session.
const EventStateChanged = "state.changed"

// Event is pushed to every connection watching a session
type Event struct {
	Type      string    `json:"type"`
	SessionID string    `json:"sessionId"`
	Intent    string    `json:"intent"`
	Outcome   string    `json:"outcome"`
	Screen    string    `json:"screen"`
	Ref       string    `json:"ref,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub maintains the set of active clients and fans session events out to them
type Hub struct {
	// Registered clients organized by session ID
	clients map[string]map[*Client]bool

	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client

	// closed when Run returns
	done chan struct{}

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled. On exit
// every client's send channel is closed so its write pump can hang up.
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionID, clients := range h.clients {
		for client := range clients {
			close(client.send)
		}
		delete(h.clients, sessionID)
	}
	close(h.done)
	h.logger.Info().Msg("WebSocket hub stopped")
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.sessionID]; !ok {
		h.clients[client.sessionID] = make(map[*Client]bool)
	}
	h.clients[client.sessionID][client] = true

	h.logger.Debug().
		Str("sessionID", client.sessionID).
		Int("clientCount", len(h.clients[client.sessionID])).
		Msg("Client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.sessionID)
	}

	h.logger.Debug().
		Str("sessionID", client.sessionID).
		Msg("Client unregistered")
}

// broadcastEvent sends an event to all clients watching its session. Clients
// whose buffer is full are dropped.
func (h *Hub) broadcastEvent(event *Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[event.SessionID]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("sessionID", event.SessionID).
			Msg("Failed to marshal event for broadcast")
		return
	}

	for client := range clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn().Str("sessionID", event.SessionID).Msg("Dropping slow client")
			h.removeLocked(client)
		}
	}
}

// Publish queues an event for broadcast. It returns false once the hub has stopped.
func (h *Hub) Publish(event *Event) bool {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case h.broadcast <- event:
		return true
	case <-h.done:
		return false
	}
}

// Disconnect closes every client of a session, e.g. after logout.
func (h *Hub) Disconnect(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients[sessionID] {
		h.removeLocked(client)
	}
}

// GetClientsCount returns the number of connected clients for a session
func (h *Hub) GetClientsCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// Done is closed after the hub stops
func (h *Hub) Done() <-chan struct{} {
	return h.done
}
