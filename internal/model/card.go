package model

// CardKind distinguishes prompt cards from answer cards
type CardKind string

const (
	CardKindPrompt CardKind = "prompt"
	CardKindAnswer CardKind = "answer"
)

// Card is an immutable card value. IDs are unique within the originating
// deck instance; the same pool card reappears with the same ID after a
// deck refill.
type Card struct {
	ID      string   `json:"id"`
	Kind    CardKind `json:"kind"`
	Content string   `json:"content"`
	IsImage bool     `json:"is_image,omitempty"`
	// Blanks is how many answer cards a submission for this prompt must
	// contain. Prompt cards only; defaults to 1.
	Blanks int `json:"blanks,omitempty"`
}

// BlankCount returns the number of answers a prompt card expects
func (c Card) BlankCount() int {
	if c.Blanks <= 0 {
		return 1
	}
	return c.Blanks
}

// CardPools holds the two static pools decks are rebuilt from
type CardPools struct {
	Prompts []Card `json:"prompts"`
	Answers []Card `json:"answers"`
}
