package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/partydeck/partydeck-go/internal/dependencies/clock"
	"github.com/partydeck/partydeck-go/internal/model"
)

// Errors
var (
	ErrInvalidSession = errors.New("invalid or expired session")
)

// Session binds a bearer token to a seat in a room. The token is the
// reconnection credential: it survives a dropped transport and proves
// the same player is back.
type Session struct {
	Token     string
	PlayerID  model.PlayerID
	RoomCode  model.RoomCode
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service issues and validates session tokens
type Service struct {
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the session service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new session Service
func New(clock clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		clock:           clock,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// NewPlayerID mints a durable player identity
func (s *Service) NewPlayerID() model.PlayerID {
	return model.PlayerID(uuid.NewString())
}

// NewConnectionID mints a volatile transport identity
func (s *Service) NewConnectionID() model.ConnectionID {
	return model.ConnectionID(uuid.NewString())
}

// Create issues a token for a player's seat in a room
func (s *Service) Create(playerID model.PlayerID, roomCode model.RoomCode, username string) *Session {
	token := generateToken()
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		PlayerID:  playerID,
		RoomCode:  roomCode,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session
}

// Validate checks a token and returns its session
func (s *Service) Validate(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// Invalidate removes a session by token
func (s *Service) Invalidate(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// InvalidatePlayer removes every session held by a player in a room.
// Called when a seat is removed so a kicked or expired player cannot
// keep acting on a stale token.
func (s *Service) InvalidatePlayer(roomCode model.RoomCode, playerID model.PlayerID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, session := range s.sessions {
		if session.RoomCode == roomCode && session.PlayerID == playerID {
			delete(s.sessions, token)
		}
	}
}

// InvalidateRoom removes every session bound to a room. Called when the
// room itself is deleted.
func (s *Service) InvalidateRoom(roomCode model.RoomCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, session := range s.sessions {
		if session.RoomCode == roomCode {
			delete(s.sessions, token)
		}
	}
}

// CleanExpired removes expired sessions (call periodically)
func (s *Service) CleanExpired() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
