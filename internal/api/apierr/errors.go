package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/partydeck/partydeck-go/internal/model"
	"github.com/partydeck/partydeck-go/internal/report"
	"github.com/partydeck/partydeck-go/internal/services/session"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeRoomNotFound     = "ROOM_NOT_FOUND"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeDuplicateName    = "DUPLICATE_NAME"
	CodeRoomFull         = "ROOM_FULL"
	CodeNotAuthorized    = "NOT_AUTHORIZED"
	CodeInvalidPhase     = "INVALID_PHASE"
	CodeInvalidSettings  = "INVALID_SETTINGS"
	CodeReconnectExpired = "RECONNECT_EXPIRED"
	CodeNotEnoughPlayers = "NOT_ENOUGH_PLAYERS"
	CodeNotInRoom        = "NOT_IN_ROOM"
	CodeRelayFailed      = "RELAY_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNotInRoom):
		return &httpError{http.StatusNotFound, APIError{CodeNotInRoom, "Not in this room"}}
	case errors.Is(err, model.ErrDuplicateName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateName, "That name is already taken in this room"}}
	case errors.Is(err, model.ErrRoomFull):
		return &httpError{http.StatusConflict, APIError{CodeRoomFull, "Room is full"}}
	case errors.Is(err, model.ErrNotAuthorized):
		return &httpError{http.StatusForbidden, APIError{CodeNotAuthorized, "You cannot perform this action"}}
	case errors.Is(err, model.ErrInvalidPhase):
		return &httpError{http.StatusConflict, APIError{CodeInvalidPhase, "Action not valid in the current phase"}}
	case errors.Is(err, model.ErrInvalidSettings):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSettings, "Settings value out of bounds"}}
	case errors.Is(err, model.ErrReconnectExpired):
		return &httpError{http.StatusGone, APIError{CodeReconnectExpired, "Reconnect window expired"}}
	case errors.Is(err, model.ErrNotEnoughPlayers):
		return &httpError{http.StatusConflict, APIError{CodeNotEnoughPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrInvalidSubmission):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Submission does not match the prompt"}}
	case errors.Is(err, model.ErrCardPoolsNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeInternalError, "Card pools are not loaded"}}

	case errors.Is(err, session.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	case errors.Is(err, report.ErrRelayFailed):
		return &httpError{http.StatusBadGateway, APIError{CodeRelayFailed, "Could not deliver the report"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
