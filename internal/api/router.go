package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/partydeck/partydeck-go/internal/api/apierr"
	"github.com/partydeck/partydeck-go/internal/api/handler"
	apimiddleware "github.com/partydeck/partydeck-go/internal/api/middleware"
	"github.com/partydeck/partydeck-go/internal/broadcast"
	"github.com/partydeck/partydeck-go/internal/middleware"
	"github.com/partydeck/partydeck-go/internal/report"
	"github.com/partydeck/partydeck-go/internal/services/room"
	"github.com/partydeck/partydeck-go/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	SessionService *session.Service
	RoomController *room.Controller
	HubManager     *broadcast.Manager
	ReportService  *report.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	roomHandler := handler.NewRoomHandler(cfg.RoomController, cfg.HubManager)
	gameHandler := handler.NewGameHandler(cfg.RoomController)
	reportHandler := handler.NewReportHandler(cfg.ReportService)

	sessionMiddleware := apimiddleware.Session(cfg.SessionService)
	optionalSessionMiddleware := apimiddleware.OptionalSession(cfg.SessionService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Entry points that establish a session rather than require one
	api.HandleFunc("/rooms", roomHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/reconnect", roomHandler.Reconnect).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/join", roomHandler.Join).Methods(http.MethodPost)

	// Room routes (all require a session)
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.Use(sessionMiddleware)
	rooms.HandleFunc("/{code}", roomHandler.Get).Methods(http.MethodGet)
	rooms.HandleFunc("/{code}/settings", roomHandler.UpdateSettings).Methods(http.MethodPatch)
	rooms.HandleFunc("/{code}/leave", roomHandler.Leave).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/kick", roomHandler.Kick).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/chat", roomHandler.Chat).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/events", roomHandler.Events).Methods(http.MethodGet)

	// Game routes
	rooms.HandleFunc("/{code}/start", gameHandler.Start).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/skip-prompt", gameHandler.SkipPrompt).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/submit", gameHandler.Submit).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/reveal", gameHandler.Reveal).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/winner", gameHandler.SelectWinner).Methods(http.MethodPost)

	// Bug reports work with or without a session
	api.Handle("/report-bug",
		optionalSessionMiddleware(http.HandlerFunc(reportHandler.ReportBug)),
	).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
