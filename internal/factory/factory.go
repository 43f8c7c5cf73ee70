package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/partydeck/partydeck-go/internal/broadcast"
	"github.com/partydeck/partydeck-go/internal/dependencies/clock"
	"github.com/partydeck/partydeck-go/internal/dependencies/random"
	"github.com/partydeck/partydeck-go/internal/dependencies/scheduler"
	"github.com/partydeck/partydeck-go/internal/report"
	"github.com/partydeck/partydeck-go/internal/services/deck"
	"github.com/partydeck/partydeck-go/internal/services/game"
	"github.com/partydeck/partydeck-go/internal/services/room"
	"github.com/partydeck/partydeck-go/internal/services/session"
	"github.com/partydeck/partydeck-go/internal/storage"
	"github.com/partydeck/partydeck-go/internal/storage/memory"
	redisstorage "github.com/partydeck/partydeck-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Scheduler scheduler.Scheduler

	// Services
	DeckService    *deck.Service
	GameEngine     *game.Engine
	SessionService *session.Service
	RoomController *room.Controller
	ReportService  *report.Service
	HubManager     *broadcast.Manager
}

// Config holds configuration for the application factory
type Config struct {
	// SessionConfig holds configuration for the session service (optional)
	// If zero value, defaults to session.DefaultConfig()
	SessionConfig session.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// BugWebhookURL is the webhook endpoint bug reports are relayed to (optional)
	// If empty, bug reporting is disabled
	BugWebhookURL string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()
	sched := scheduler.New()

	// Use default session config if not provided
	sessionCfg := cfg.SessionConfig
	if sessionCfg.SessionDuration == 0 {
		sessionCfg = session.DefaultConfig()
	}

	app := newWithDependencies(store, clk, rnd, sched, sessionCfg, logger)
	app.ReportService = report.New(cfg.BugWebhookURL, nil, logger)
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	sched scheduler.Scheduler,
	sessionCfg session.Config,
	logger *slog.Logger,
) *App {
	// Create services
	deckService := deck.New(store, rnd)
	engine := game.NewEngine(deckService, clk, logger)
	sessionService := session.New(clk, sessionCfg)
	hubManager := broadcast.NewManager(logger)
	roomController := room.NewController(
		store, engine, deckService, sessionService, hubManager, clk, rnd, sched, logger,
	)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Scheduler:      sched,
		DeckService:    deckService,
		GameEngine:     engine,
		SessionService: sessionService,
		RoomController: roomController,
		HubManager:     hubManager,
	}
}
