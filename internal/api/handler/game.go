package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/partydeck/partydeck-go/internal/api/middleware"
	"github.com/partydeck/partydeck-go/internal/api/request"
	"github.com/partydeck/partydeck-go/internal/api/response"
	"github.com/partydeck/partydeck-go/internal/model"
	"github.com/partydeck/partydeck-go/internal/services/room"
)

// GameHandler handles in-game action endpoints
type GameHandler struct {
	rooms *room.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(rooms *room.Controller) *GameHandler {
	return &GameHandler{rooms: rooms}
}

// Start handles POST /api/v1/rooms/{code}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	if err := h.rooms.StartGame(r.Context(), code, sess.PlayerID); err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.rooms.GetView(r.Context(), code, sess.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// SkipPrompt handles POST /api/v1/rooms/{code}/skip-prompt
func (h *GameHandler) SkipPrompt(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	if err := h.rooms.SkipPrompt(r.Context(), code, sess.PlayerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Submit handles POST /api/v1/rooms/{code}/submit
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if len(req.CardIDs) == 0 {
		WriteError(w, NewInvalidRequestError("card_ids is required"))
		return
	}

	if err := h.rooms.Submit(r.Context(), code, sess.PlayerID, req.CardIDs); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Reveal handles POST /api/v1/rooms/{code}/reveal
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	if err := h.rooms.Reveal(r.Context(), code, sess.PlayerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// SelectWinner handles POST /api/v1/rooms/{code}/winner
func (h *GameHandler) SelectWinner(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.SelectWinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.WinnerID == "" {
		WriteError(w, NewInvalidRequestError("winner_id is required"))
		return
	}

	if err := h.rooms.SelectWinner(r.Context(), code, sess.PlayerID, model.PlayerID(req.WinnerID)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
