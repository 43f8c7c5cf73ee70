package model

import "errors"

// Recoverable errors reported to the originating connection only.
// None of these affect other players or the room itself.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrDuplicateName    = errors.New("a player with that name is already in the room")
	ErrRoomFull         = errors.New("room is full")
	ErrNotAuthorized    = errors.New("not authorized for this action")
	ErrInvalidPhase     = errors.New("action not valid in the current phase")
	ErrInvalidSettings  = errors.New("settings value out of bounds")
	ErrReconnectExpired = errors.New("reconnect window expired")

	ErrPlayerNotFound    = errors.New("player not found")
	ErrNotInRoom         = errors.New("player is not in the room")
	ErrNotEnoughPlayers  = errors.New("not enough players to start")
	ErrInvalidSubmission = errors.New("submission does not match the prompt")

	ErrCardPoolsNotLoaded = errors.New("card pools not loaded")
)
