package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/partydeck/partydeck-go/internal/dependencies/mocks"
	"github.com/partydeck/partydeck-go/internal/model"
	"github.com/partydeck/partydeck-go/internal/services/session"
	"github.com/partydeck/partydeck-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
	MockScheduler *mocks.MockScheduler
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockScheduler := mocks.NewMockScheduler()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, mockScheduler, session.DefaultConfig(), logger)

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
		MockScheduler: mockScheduler,
	}
}

// LoadTestCards loads a small card pool for testing
func (t *TestApp) LoadTestCards() error {
	pools := model.CardPools{
		Prompts: []model.Card{
			{ID: "p-1", Kind: model.CardKindPrompt, Content: "Why can't I sleep at night? ____.", Blanks: 1},
			{ID: "p-2", Kind: model.CardKindPrompt, Content: "____: kid-tested, mother-approved.", Blanks: 1},
			{ID: "p-3", Kind: model.CardKindPrompt, Content: "What's that smell? ____.", Blanks: 1},
			{ID: "p-4", Kind: model.CardKindPrompt, Content: "____ + ____ = disaster.", Blanks: 2},
			{ID: "p-5", Kind: model.CardKindPrompt, Content: "I drink to forget ____.", Blanks: 1},
			{ID: "p-6", Kind: model.CardKindPrompt, Content: "The secret ingredient is ____.", Blanks: 1},
		},
		Answers: []model.Card{
			{ID: "a-1", Kind: model.CardKindAnswer, Content: "A lifetime of regret."},
			{ID: "a-2", Kind: model.CardKindAnswer, Content: "Free samples."},
			{ID: "a-3", Kind: model.CardKindAnswer, Content: "An overdue library book."},
			{ID: "a-4", Kind: model.CardKindAnswer, Content: "Spontaneous interpretive dance."},
			{ID: "a-5", Kind: model.CardKindAnswer, Content: "The last slice of pizza."},
			{ID: "a-6", Kind: model.CardKindAnswer, Content: "A suspiciously friendly pigeon."},
			{ID: "a-7", Kind: model.CardKindAnswer, Content: "Decorative gourds."},
			{ID: "a-8", Kind: model.CardKindAnswer, Content: "My browser history."},
			{ID: "a-9", Kind: model.CardKindAnswer, Content: "A firm handshake."},
			{ID: "a-10", Kind: model.CardKindAnswer, Content: "Unsolicited advice."},
			{ID: "a-11", Kind: model.CardKindAnswer, Content: "The void."},
			{ID: "a-12", Kind: model.CardKindAnswer, Content: "Lukewarm coffee."},
			{ID: "a-13", Kind: model.CardKindAnswer, Content: "A motivational poster."},
			{ID: "a-14", Kind: model.CardKindAnswer, Content: "Forty jars of mayonnaise."},
			{ID: "a-15", Kind: model.CardKindAnswer, Content: "An interpretive mime."},
			{ID: "a-16", Kind: model.CardKindAnswer, Content: "The office thermostat wars."},
		},
	}
	return t.DeckService.LoadPools(pools)
}
