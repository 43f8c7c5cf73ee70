package broadcast

import (
	"sync"

	"github.com/partydeck/partydeck-go/internal/model"
)

// Recorded is one captured publication
type Recorded struct {
	RoomCode model.RoomCode
	PlayerID model.PlayerID // empty for room-wide publications
	Event    model.Event
}

// Recorder is a Gateway that captures publications instead of streaming
// them; used in tests
type Recorder struct {
	mu     sync.Mutex
	events []Recorded
	closed []model.RoomCode
}

var _ Gateway = (*Recorder)(nil)

// NewRecorder creates a new Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish captures a room-wide event
func (r *Recorder) Publish(code model.RoomCode, event model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Recorded{RoomCode: code, Event: event})
}

// PublishTo captures a single-player event
func (r *Recorder) PublishTo(code model.RoomCode, playerID model.PlayerID, event model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Recorded{RoomCode: code, PlayerID: playerID, Event: event})
}

// CloseRoom captures a room closure
func (r *Recorder) CloseRoom(code model.RoomCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = append(r.closed, code)
}

// Events returns all captured publications
func (r *Recorder) Events() []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Recorded, len(r.events))
	copy(out, r.events)
	return out
}

// EventsOfType returns captured publications of one event type
func (r *Recorder) EventsOfType(t model.EventType) []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Recorded
	for _, e := range r.events {
		if e.Event.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// LastOfType returns the most recent publication of one event type, or
// nil
func (r *Recorder) LastOfType(t model.EventType) *Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Event.Type == t {
			e := r.events[i]
			return &e
		}
	}
	return nil
}

// ClosedRooms returns the rooms whose hubs were closed
func (r *Recorder) ClosedRooms() []model.RoomCode {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.RoomCode, len(r.closed))
	copy(out, r.closed)
	return out
}

// Reset clears all captured state
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.closed = nil
}
