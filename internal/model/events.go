package model

// EventType names an outbound notification
type EventType string

const (
	EventRoomCreated         EventType = "room-created"
	EventPlayerListChanged   EventType = "player-list-changed"
	EventGameStarted         EventType = "game-started"
	EventNewRound            EventType = "new-round"
	EventPromptChanged       EventType = "prompt-changed"
	EventSubmissionsUpdated  EventType = "submissions-updated"
	EventFirstCardSubmitted  EventType = "first-card-submitted"
	EventSubmissionsComplete EventType = "submissions-complete"
	EventCardRevealed        EventType = "card-revealed"
	EventRoundOver           EventType = "round-over"
	EventGameOver            EventType = "game-over"
	EventBackToLobby         EventType = "back-to-lobby"
	EventSettingsUpdated     EventType = "settings-updated"
	EventPlayerRemoved       EventType = "player-removed"
	EventKickedNotice        EventType = "kicked-notice"
	EventGameTerminated      EventType = "game-terminated"
	EventChatMessage         EventType = "chat-message"
)

// Event is one outbound notification with its typed payload
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// PlayerSummary is the public view of a player; hands are never broadcast
type PlayerSummary struct {
	ID        PlayerID `json:"id"`
	Username  string   `json:"username"`
	Score     int      `json:"score"`
	Connected bool     `json:"connected"`
	HandSize  int      `json:"hand_size"`
}

// RoomSnapshot is the public view of a room broadcast with state changes.
// Players fetch their own hand through the room endpoint.
type RoomSnapshot struct {
	Code          RoomCode        `json:"code"`
	Players       []PlayerSummary `json:"players"`
	OwnerID       PlayerID        `json:"owner_id"`
	Settings      Settings        `json:"settings"`
	GameState     GameState       `json:"game_state"`
	Phase         Phase           `json:"phase"`
	CurrentPrompt *Card           `json:"current_prompt,omitempty"`
	JudgeID       PlayerID        `json:"judge_id,omitempty"`
	Submissions   int             `json:"submissions"`
	Revealed      []Submission    `json:"revealed"`
	PromptCount   int             `json:"prompt_count"`
	AnswerCount   int             `json:"answer_count"`
}

// Snapshot builds the public view of the room. Pool sizes are passed in
// because the room itself only holds the live decks.
func (r *Room) Snapshot(promptCount, answerCount int) RoomSnapshot {
	players := make([]PlayerSummary, len(r.Players))
	for i, p := range r.Players {
		players[i] = PlayerSummary{
			ID:        p.ID,
			Username:  p.Username,
			Score:     p.Score,
			Connected: p.Connected,
			HandSize:  len(p.Hand),
		}
	}
	return RoomSnapshot{
		Code:          r.Code,
		Players:       players,
		OwnerID:       r.OwnerID,
		Settings:      r.Settings,
		GameState:     r.GameState,
		Phase:         r.Phase,
		CurrentPrompt: r.CurrentPrompt,
		JudgeID:       r.JudgeID,
		Submissions:   len(r.Submissions),
		Revealed:      r.Revealed,
		PromptCount:   promptCount,
		AnswerCount:   answerCount,
	}
}

// ChatKind distinguishes player chat from engine announcements
type ChatKind string

const (
	ChatKindPlayer ChatKind = "player"
	ChatKindSystem ChatKind = "system"
)

// PlayerListChangedPayload carries the updated seat list
type PlayerListChangedPayload struct {
	Players []PlayerSummary `json:"players"`
}

// PromptChangedPayload carries only the replacement prompt
type PromptChangedPayload struct {
	Prompt Card `json:"prompt"`
}

// SubmissionsUpdatedPayload reports submission progress without contents
type SubmissionsUpdatedPayload struct {
	Count    int `json:"count"`
	Required int `json:"required"`
}

// SubmissionsCompletePayload announces the move to the reveal phase
type SubmissionsCompletePayload struct {
	Phase Phase `json:"phase"`
}

// CardRevealedPayload carries the reveal prefix and the possibly-advanced
// phase
type CardRevealedPayload struct {
	Revealed []Submission `json:"revealed"`
	Phase    Phase        `json:"phase"`
}

// RoundOverPayload announces the round winner
type RoundOverPayload struct {
	Winner       PlayerSummary `json:"winner"`
	WinningCards []Card        `json:"winning_cards"`
}

// GameOverPayload announces the game winner
type GameOverPayload struct {
	Winner PlayerSummary `json:"winner"`
}

// SettingsUpdatedPayload carries the now-current settings
type SettingsUpdatedPayload struct {
	Settings Settings `json:"settings"`
}

// PlayerRemovedPayload reports a removal (leave, kick, or expired
// disconnect) together with the remaining seats
type PlayerRemovedPayload struct {
	PlayerID PlayerID        `json:"player_id"`
	Username string          `json:"username"`
	Players  []PlayerSummary `json:"players"`
}

// GameTerminatedPayload explains a forced return to the lobby
type GameTerminatedPayload struct {
	Reason string `json:"reason"`
}

// ChatMessagePayload is a chat line, player-authored or system-generated
type ChatMessagePayload struct {
	Kind   ChatKind `json:"kind"`
	Sender string   `json:"sender,omitempty"`
	Text   string   `json:"text"`
}
