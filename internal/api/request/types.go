package request

// CreateRoomRequest is the body for POST /rooms
type CreateRoomRequest struct {
	Username string `json:"username"`
}

// JoinRoomRequest is the body for POST /rooms/{code}/join
type JoinRoomRequest struct {
	Username string `json:"username"`
}

// ReconnectRequest is the body for POST /rooms/reconnect
type ReconnectRequest struct {
	Token string `json:"token"`
}

// UpdateSettingsRequest is the body for PATCH /rooms/{code}/settings.
// Omitted fields are left unchanged.
type UpdateSettingsRequest struct {
	PointsToWin *int `json:"points_to_win,omitempty"`
	MaxPlayers  *int `json:"max_players,omitempty"`
	HandSize    *int `json:"hand_size,omitempty"`
}

// SubmitRequest is the body for POST /rooms/{code}/submit
type SubmitRequest struct {
	CardIDs []string `json:"card_ids"`
}

// SelectWinnerRequest is the body for POST /rooms/{code}/winner
type SelectWinnerRequest struct {
	WinnerID string `json:"winner_id"`
}

// KickRequest is the body for POST /rooms/{code}/kick
type KickRequest struct {
	PlayerID string `json:"player_id"`
}

// ChatRequest is the body for POST /rooms/{code}/chat
type ChatRequest struct {
	Text string `json:"text"`
}

// ReportBugRequest is the body for POST /report-bug
type ReportBugRequest struct {
	Message string `json:"message"`
}
