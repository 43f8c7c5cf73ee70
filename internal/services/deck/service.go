package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/partydeck/partydeck-go/internal/dependencies/random"
	"github.com/partydeck/partydeck-go/internal/model"
	"github.com/partydeck/partydeck-go/internal/storage"
)

// Service owns the static card pools and all deck operations: shuffling,
// refill-on-depletion draws, and hand top-ups. Decks themselves live on
// the Room; the service never blocks a draw on pool exhaustion.
type Service struct {
	storage storage.Storage
	random  random.Random

	mu     sync.RWMutex
	pools  model.CardPools
	loaded bool
}

// New creates a new deck Service
func New(storage storage.Storage, random random.Random) *Service {
	return &Service{
		storage: storage,
		random:  random,
	}
}

// poolFile is the on-disk card format; IDs are assigned at load when
// absent
type poolFile []struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	IsImage bool   `json:"is_image"`
	Blanks  int    `json:"blanks"`
}

// LoadFromDir loads prompts.json and answers.json from dir and saves the
// pools to storage for future use
func (s *Service) LoadFromDir(ctx context.Context, dir string) error {
	prompts, err := loadPoolFile(filepath.Join(dir, "prompts.json"), model.CardKindPrompt, "p")
	if err != nil {
		return err
	}
	answers, err := loadPoolFile(filepath.Join(dir, "answers.json"), model.CardKindAnswer, "a")
	if err != nil {
		return err
	}

	pools := model.CardPools{Prompts: prompts, Answers: answers}
	if err := s.storage.SaveCardPools(ctx, &pools); err != nil {
		return err
	}
	return s.LoadPools(pools)
}

// LoadFromStorage loads previously saved pools
func (s *Service) LoadFromStorage(ctx context.Context) error {
	pools, err := s.storage.GetCardPools(ctx)
	if err != nil {
		return err
	}
	return s.LoadPools(*pools)
}

// LoadPools directly loads the pools (useful for testing)
func (s *Service) LoadPools(pools model.CardPools) error {
	if len(pools.Prompts) == 0 || len(pools.Answers) == 0 {
		return model.ErrCardPoolsNotLoaded
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools = pools
	s.loaded = true
	return nil
}

// IsLoaded returns whether the card pools have been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// PromptCount returns the prompt pool size
func (s *Service) PromptCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pools.Prompts)
}

// AnswerCount returns the answer pool size
func (s *Service) AnswerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pools.Answers)
}

// NewPromptDeck returns a freshly shuffled copy of the prompt pool
func (s *Service) NewPromptDeck() []model.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shuffledCopy(s.pools.Prompts)
}

// NewAnswerDeck returns a freshly shuffled copy of the answer pool
func (s *Service) NewAnswerDeck() []model.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shuffledCopy(s.pools.Answers)
}

// DrawPrompts removes and returns n cards from the front of the deck,
// first extending it with shuffled pool copies until it suffices
func (s *Service) DrawPrompts(deck *[]model.Card, n int) []model.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draw(deck, n, s.pools.Prompts)
}

// DrawAnswers removes and returns n cards from the front of the deck,
// refilled the same way
func (s *Service) DrawAnswers(deck *[]model.Card, n int) []model.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draw(deck, n, s.pools.Answers)
}

// TopUpHand draws answer cards until the hand holds handSize cards. A
// hand already at or above handSize is left alone; hands only shrink via
// submission.
func (s *Service) TopUpHand(deck *[]model.Card, p *model.Player, handSize int) {
	missing := handSize - len(p.Hand)
	if missing <= 0 {
		return
	}
	p.Hand = append(p.Hand, s.DrawAnswers(deck, missing)...)
}

func (s *Service) draw(deck *[]model.Card, n int, pool []model.Card) []model.Card {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	for len(*deck) < n {
		*deck = append(*deck, s.shuffledCopy(pool)...)
	}
	drawn := make([]model.Card, n)
	copy(drawn, (*deck)[:n])
	*deck = (*deck)[n:]
	return drawn
}

// shuffledCopy returns a uniform permutation of the pool (Fisher-Yates
// over the injected random source)
func (s *Service) shuffledCopy(pool []model.Card) []model.Card {
	cards := make([]model.Card, len(pool))
	copy(cards, pool)
	for i := len(cards) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}

// ShuffleSubmissions permutes submissions in place; used once at
// Revealing entry so the judge cannot map order to players
func (s *Service) ShuffleSubmissions(subs []model.Submission) {
	for i := len(subs) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		subs[i], subs[j] = subs[j], subs[i]
	}
}

func loadPoolFile(path string, kind model.CardKind, idPrefix string) ([]model.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file poolFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cards := make([]model.Card, 0, len(file))
	for i, entry := range file {
		id := entry.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", idPrefix, i+1)
		}
		card := model.Card{
			ID:      id,
			Kind:    kind,
			Content: entry.Content,
			IsImage: entry.IsImage,
		}
		if kind == model.CardKindPrompt {
			card.Blanks = entry.Blanks
			if card.Blanks <= 0 {
				card.Blanks = 1
			}
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromDir(ctx context.Context, dir string) error
	LoadFromStorage(ctx context.Context) error
	LoadPools(pools model.CardPools) error
	IsLoaded() bool
	PromptCount() int
	AnswerCount() int
	NewPromptDeck() []model.Card
	NewAnswerDeck() []model.Card
	DrawPrompts(deck *[]model.Card, n int) []model.Card
	DrawAnswers(deck *[]model.Card, n int) []model.Card
	TopUpHand(deck *[]model.Card, p *model.Player, handSize int)
	ShuffleSubmissions(subs []model.Submission)
}

var _ ServiceInterface = (*Service)(nil)
