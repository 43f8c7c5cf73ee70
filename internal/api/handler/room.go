package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/partydeck/partydeck-go/internal/api/middleware"
	"github.com/partydeck/partydeck-go/internal/api/request"
	"github.com/partydeck/partydeck-go/internal/api/response"
	"github.com/partydeck/partydeck-go/internal/broadcast"
	"github.com/partydeck/partydeck-go/internal/model"
	"github.com/partydeck/partydeck-go/internal/services/room"
)

// RoomHandler handles room lifecycle and membership endpoints
type RoomHandler struct {
	rooms *room.Controller
	hubs  *broadcast.Manager
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(rooms *room.Controller, hubs *broadcast.Manager) *RoomHandler {
	return &RoomHandler{
		rooms: rooms,
		hubs:  hubs,
	}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}

	view, err := h.rooms.CreateRoom(r.Context(), req.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, view)
}

// Join handles POST /api/v1/rooms/{code}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}

	view, err := h.rooms.Join(r.Context(), code, req.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, view)
}

// Reconnect handles POST /api/v1/rooms/reconnect
func (h *RoomHandler) Reconnect(w http.ResponseWriter, r *http.Request) {
	var req request.ReconnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Token == "" {
		WriteError(w, NewInvalidRequestError("token is required"))
		return
	}

	view, err := h.rooms.Reconnect(r.Context(), req.Token)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, view)
}

// Get handles GET /api/v1/rooms/{code}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	view, err := h.rooms.GetView(r.Context(), code, sess.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, view)
}

// UpdateSettings handles PATCH /api/v1/rooms/{code}/settings
func (h *RoomHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	patch := model.SettingsPatch{
		PointsToWin: req.PointsToWin,
		MaxPlayers:  req.MaxPlayers,
		HandSize:    req.HandSize,
	}
	settings, err := h.rooms.UpdateSettings(r.Context(), code, sess.PlayerID, patch)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, settings)
}

// Leave handles POST /api/v1/rooms/{code}/leave
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	if err := h.rooms.Leave(r.Context(), code, sess.PlayerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Kick handles POST /api/v1/rooms/{code}/kick
func (h *RoomHandler) Kick(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.KickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.rooms.Kick(r.Context(), code, sess.PlayerID, model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Chat handles POST /api/v1/rooms/{code}/chat
func (h *RoomHandler) Chat(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.rooms.Chat(r.Context(), code, sess.PlayerID, req.Text); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Events handles GET /api/v1/rooms/{code}/events. The open stream is the
// player's presence: attaching marks them connected, the stream ending
// marks them disconnected and starts the reconnect window.
func (h *RoomHandler) Events(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])
	if sess.RoomCode != code {
		WriteError(w, model.ErrNotInRoom)
		return
	}

	if err := h.rooms.MarkConnected(r.Context(), code, sess.PlayerID); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubs.GetOrCreateHub(code)
	broadcast.ServeSSE(w, r, hub, sess.PlayerID)

	// The request context is canceled by now; disconnect bookkeeping gets
	// its own
	h.rooms.MarkDisconnected(context.Background(), code, sess.PlayerID)
}
