package model

import "time"

// PlayerID is the durable player identity, generated once at first join
// and preserved across reconnects
type PlayerID string

// ConnectionID is the volatile transport identity; it changes on every
// reconnect and is empty while the player is disconnected
type ConnectionID string

// Player represents one participant's seat in a room
type Player struct {
	ID           PlayerID     `json:"id"`
	ConnectionID ConnectionID `json:"connection_id,omitempty"`
	Username     string       `json:"username"`
	Score        int          `json:"score"`
	Hand         []Card       `json:"hand"`
	Connected    bool         `json:"connected"`
	// DisconnectedAt is set only while disconnected; it anchors the
	// reconnect window
	DisconnectedAt *time.Time `json:"disconnected_at,omitempty"`
	JoinedAt       time.Time  `json:"joined_at"`
}

// IsSpectator reports whether the player is waiting to be dealt in
// (present mid-game with an empty hand)
func (p *Player) IsSpectator() bool {
	return len(p.Hand) == 0
}

// HoldsCard reports whether the player's hand contains the card
func (p *Player) HoldsCard(cardID string) bool {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// RemoveCards drops the given cards from the hand by ID
func (p *Player) RemoveCards(cards []Card) {
	if len(cards) == 0 {
		return
	}
	removed := make(map[string]bool, len(cards))
	for _, c := range cards {
		removed[c.ID] = true
	}
	kept := p.Hand[:0]
	for _, c := range p.Hand {
		if !removed[c.ID] {
			kept = append(kept, c)
		}
	}
	p.Hand = kept
}
