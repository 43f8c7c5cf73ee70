package model

// Settings bounds
const (
	MinPointsToWin = 3
	MaxPointsToWin = 20
	MinMaxPlayers  = 3
	MaxMaxPlayers  = 12
	MinHandSize    = 5
	MaxHandSize    = 15
)

// Settings holds the configurable room parameters
type Settings struct {
	PointsToWin int `json:"points_to_win"`
	MaxPlayers  int `json:"max_players"`
	HandSize    int `json:"hand_size"`
}

// DefaultSettings returns the settings a fresh room starts with
func DefaultSettings() Settings {
	return Settings{
		PointsToWin: 5,
		MaxPlayers:  8,
		HandSize:    10,
	}
}

// Validate checks every value against its bound and maxPlayers against the
// current player count
func (s Settings) Validate(playerCount int) error {
	if s.PointsToWin < MinPointsToWin || s.PointsToWin > MaxPointsToWin {
		return ErrInvalidSettings
	}
	if s.MaxPlayers < MinMaxPlayers || s.MaxPlayers > MaxMaxPlayers {
		return ErrInvalidSettings
	}
	if s.HandSize < MinHandSize || s.HandSize > MaxHandSize {
		return ErrInvalidSettings
	}
	if s.MaxPlayers < playerCount {
		return ErrInvalidSettings
	}
	return nil
}

// SettingsPatch is a partial settings update; nil fields are left unchanged
type SettingsPatch struct {
	PointsToWin *int `json:"points_to_win,omitempty"`
	MaxPlayers  *int `json:"max_players,omitempty"`
	HandSize    *int `json:"hand_size,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p SettingsPatch) IsEmpty() bool {
	return p.PointsToWin == nil && p.MaxPlayers == nil && p.HandSize == nil
}

// Apply returns the settings with the patch's fields substituted
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.PointsToWin != nil {
		s.PointsToWin = *p.PointsToWin
	}
	if p.MaxPlayers != nil {
		s.MaxPlayers = *p.MaxPlayers
	}
	if p.HandSize != nil {
		s.HandSize = *p.HandSize
	}
	return s
}
