package model

import (
	"strings"
	"time"
)

// RoomCode is the short human-typable identifier players share to join
type RoomCode string

// GameState is the coarse room lifecycle state
type GameState string

const (
	GameStateLobby  GameState = "lobby"
	GameStateInGame GameState = "in-game"
)

// Phase is the in-round phase; empty while in the lobby
type Phase string

const (
	PhaseNone       Phase = ""
	PhaseSubmitting Phase = "submitting"
	PhaseRevealing  Phase = "revealing"
	PhaseJudging    Phase = "judging"
	// PhaseRoundOver parks the room between the verdict and the scheduled
	// next-round or back-to-lobby transition; no round action is accepted
	PhaseRoundOver Phase = "round-over"
)

// MinPlayersToPlay is the player count below which a running game
// terminates back to the lobby
const MinPlayersToPlay = 3

// Submission is a player's answer card(s) for the current prompt.
// Immutable once created.
type Submission struct {
	PlayerID PlayerID `json:"player_id"`
	Cards    []Card   `json:"cards"`
}

// Room is one independent game session and the unit of concurrency.
// All mutation happens under the room controller's per-room lock.
type Room struct {
	Code     RoomCode  `json:"code"`
	Players  []*Player `json:"players"`
	OwnerID  PlayerID  `json:"owner_id"`
	Settings Settings  `json:"settings"`

	GameState GameState `json:"game_state"`
	Phase     Phase     `json:"phase"`

	PromptDeck    []Card       `json:"prompt_deck"`
	AnswerDeck    []Card       `json:"answer_deck"`
	CurrentPrompt *Card        `json:"current_prompt,omitempty"`
	JudgeID       PlayerID     `json:"judge_id,omitempty"`
	Submissions   []Submission `json:"submissions"`
	Revealed      []Submission `json:"revealed"`

	// Generation increments on game start, every round entry or reset, and
	// the return to lobby. Scheduled timers capture it and no-op on
	// mismatch.
	Generation uint64 `json:"generation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetPlayer returns the player with the given ID, or nil
func (r *Room) GetPlayer(id PlayerID) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerIndex returns the seat index of the player, or -1
func (r *Room) PlayerIndex(id PlayerID) int {
	for i, p := range r.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// PlayerByUsername returns the player with the given name,
// case-insensitively, or nil
func (r *Room) PlayerByUsername(username string) *Player {
	for _, p := range r.Players {
		if strings.EqualFold(p.Username, username) {
			return p
		}
	}
	return nil
}

// Judge returns the current judge, or nil while in the lobby
func (r *Room) Judge() *Player {
	if r.JudgeID == "" {
		return nil
	}
	return r.GetPlayer(r.JudgeID)
}

// Owner returns the room owner, or nil for an empty room
func (r *Room) Owner() *Player {
	if r.OwnerID == "" {
		return nil
	}
	return r.GetPlayer(r.OwnerID)
}

// IsOwner reports whether the player currently owns the room
func (r *Room) IsOwner(id PlayerID) bool {
	return r.OwnerID != "" && r.OwnerID == id
}

// IsJudge reports whether the player currently holds the judge role
func (r *Room) IsJudge(id PlayerID) bool {
	return r.JudgeID != "" && r.JudgeID == id
}

// HasSubmitted reports whether the player already submitted this round
func (r *Room) HasSubmitted(id PlayerID) bool {
	for _, s := range r.Submissions {
		if s.PlayerID == id {
			return true
		}
	}
	return false
}

// RequiredSubmissions is the number of non-judge players holding a
// non-empty hand. Spectators awaiting the next deal are excluded.
func (r *Room) RequiredSubmissions() int {
	count := 0
	for _, p := range r.Players {
		if p.ID != r.JudgeID && len(p.Hand) > 0 {
			count++
		}
	}
	return count
}

// RecomputeOwner reassigns ownership to the first seated player. Called
// whenever the player list may have lost the owner.
func (r *Room) RecomputeOwner() {
	if len(r.Players) == 0 {
		r.OwnerID = ""
		return
	}
	if r.GetPlayer(r.OwnerID) == nil {
		r.OwnerID = r.Players[0].ID
	}
}

// RemovePlayer drops the player from the seat list and returns their
// former index, or -1 if absent. Ownership is recomputed.
func (r *Room) RemovePlayer(id PlayerID) int {
	idx := r.PlayerIndex(id)
	if idx < 0 {
		return -1
	}
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	r.RecomputeOwner()
	return idx
}
