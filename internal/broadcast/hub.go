package broadcast

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/partydeck/partydeck-go/internal/model"
)

// Hub manages the SSE clients of a single room
type Hub struct {
	roomCode model.RoomCode
	clients  map[*Client]bool
	mu       sync.RWMutex
	logger   *slog.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan targetedMessage
	done       chan struct{}
}

// targetedMessage carries a frame and an optional single recipient
type targetedMessage struct {
	playerID model.PlayerID // empty means everyone
	data     []byte
}

// NewHub creates a new Hub for a room
func NewHub(roomCode model.RoomCode, logger *slog.Logger) *Hub {
	return &Hub{
		roomCode:   roomCode,
		clients:    make(map[*Client]bool),
		logger:     logger.With(slog.String("room", string(roomCode))),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan targetedMessage, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			clientCount := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("sse client registered",
				slog.String("player_id", string(client.playerID)),
				slog.Int("total_clients", clientCount))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				clientCount := len(h.clients)
				h.mu.Unlock()
				h.logger.Info("sse client unregistered",
					slog.String("player_id", string(client.playerID)),
					slog.Duration("connection_duration", time.Since(client.connectedAt)),
					slog.Int("total_clients", clientCount))
			} else {
				h.mu.Unlock()
			}

		case msg := <-h.broadcast:
			h.mu.RLock()
			dropped := 0
			for client := range h.clients {
				if msg.playerID != "" && client.playerID != msg.playerID {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					dropped++
				}
			}
			h.mu.RUnlock()
			if dropped > 0 {
				h.logger.Warn("sse message dropped - client buffer full",
					slog.Int("dropped", dropped))
			}

		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister removes a client from the hub. Safe to call after Close;
// the stopped loop would otherwise block the stream handler forever.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) send(msg targetedMessage) {
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("sse broadcast dropped - hub buffer full")
	}
}

// Close shuts down the hub
func (h *Hub) Close() {
	close(h.done)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// formatEvent frames an event as an SSE message, the event type as the
// SSE event name and the JSON payload as the data line
func formatEvent(event model.Event) []byte {
	data, err := json.Marshal(event.Payload)
	if err != nil {
		data = []byte("{}")
	}
	msg := "event: " + string(event.Type) + "\n"
	msg += "data: " + string(data) + "\n\n"
	return []byte(msg)
}

// Manager owns the per-room hubs and implements Gateway
type Manager struct {
	hubs   map[model.RoomCode]*Hub
	mu     sync.RWMutex
	logger *slog.Logger
}

var _ Gateway = (*Manager)(nil)

// NewManager creates a new Manager
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		hubs:   make(map[model.RoomCode]*Hub),
		logger: logger.With(slog.String("component", "sse")),
	}
}

// GetOrCreateHub returns the hub for a room, creating one if needed
func (m *Manager) GetOrCreateHub(roomCode model.RoomCode) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[roomCode]; ok {
		return hub
	}

	hub := NewHub(roomCode, m.logger)
	m.hubs[roomCode] = hub
	go hub.Run()
	return hub
}

// Publish sends an event to every client in the room. Publishing to a
// room without a hub is a no-op.
func (m *Manager) Publish(code model.RoomCode, event model.Event) {
	m.mu.RLock()
	hub := m.hubs[code]
	m.mu.RUnlock()
	if hub == nil {
		return
	}
	hub.send(targetedMessage{data: formatEvent(event)})
}

// PublishTo sends an event to one player's clients in the room
func (m *Manager) PublishTo(code model.RoomCode, playerID model.PlayerID, event model.Event) {
	m.mu.RLock()
	hub := m.hubs[code]
	m.mu.RUnlock()
	if hub == nil {
		return
	}
	hub.send(targetedMessage{playerID: playerID, data: formatEvent(event)})
}

// CloseRoom shuts down and removes the room's hub
func (m *Manager) CloseRoom(code model.RoomCode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[code]; ok {
		hub.Close()
		delete(m.hubs, code)
		m.logger.Info("sse hub removed", slog.String("room", string(code)))
	}
}
