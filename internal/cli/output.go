package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RoomView:
		o.printRoomView(v)
	case Settings:
		o.printSettings(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RoomView response type (matches API)
type RoomView struct {
	Room     Room   `json:"room"`
	PlayerID string `json:"player_id"`
	Hand     []Card `json:"hand"`
	Token    string `json:"token,omitempty"`
}

// Room response type
type Room struct {
	Code          string       `json:"code"`
	Players       []PlayerInfo `json:"players"`
	OwnerID       string       `json:"owner_id"`
	Settings      Settings     `json:"settings"`
	GameState     string       `json:"game_state"`
	Phase         string       `json:"phase"`
	CurrentPrompt *Card        `json:"current_prompt,omitempty"`
	JudgeID       string       `json:"judge_id,omitempty"`
	Submissions   int          `json:"submissions"`
	Revealed      []Submission `json:"revealed"`
	PromptCount   int          `json:"prompt_count"`
	AnswerCount   int          `json:"answer_count"`
}

// PlayerInfo response type
type PlayerInfo struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Score     int    `json:"score"`
	Connected bool   `json:"connected"`
	HandSize  int    `json:"hand_size"`
}

// Settings response type
type Settings struct {
	PointsToWin int `json:"points_to_win"`
	MaxPlayers  int `json:"max_players"`
	HandSize    int `json:"hand_size"`
}

// Card response type
type Card struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
	IsImage bool   `json:"is_image,omitempty"`
	Blanks  int    `json:"blanks,omitempty"`
}

// Submission response type
type Submission struct {
	PlayerID string `json:"player_id"`
	Cards    []Card `json:"cards"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRoomView(v RoomView) {
	r := v.Room
	fmt.Printf("Room: %s\n", r.Code)
	fmt.Printf("State: %s", r.GameState)
	if r.Phase != "" {
		fmt.Printf(" (%s)", r.Phase)
	}
	fmt.Println()
	fmt.Printf("Settings: first to %d, max %d players, hand size %d\n",
		r.Settings.PointsToWin, r.Settings.MaxPlayers, r.Settings.HandSize)

	fmt.Printf("Players (%d):\n", len(r.Players))
	for _, p := range r.Players {
		tags := []string{}
		if p.ID == r.OwnerID {
			tags = append(tags, "owner")
		}
		if p.ID == r.JudgeID {
			tags = append(tags, "judge")
		}
		if p.ID == v.PlayerID {
			tags = append(tags, "you")
		}
		if !p.Connected {
			tags = append(tags, "disconnected")
		}
		tagStr := ""
		if len(tags) > 0 {
			tagStr = " [" + strings.Join(tags, ", ") + "]"
		}
		fmt.Printf("  - %s: %d points%s\n", p.Username, p.Score, tagStr)
	}

	if r.CurrentPrompt != nil {
		fmt.Printf("\nPrompt: %s\n", r.CurrentPrompt.Content)
	}
	if r.Phase == "revealing" || r.Phase == "judging" {
		fmt.Printf("Submissions: %d (%d revealed)\n", r.Submissions, len(r.Revealed))
		for i, sub := range r.Revealed {
			contents := make([]string, len(sub.Cards))
			for j, c := range sub.Cards {
				contents[j] = c.Content
			}
			fmt.Printf("  %d. %s\n", i+1, strings.Join(contents, " / "))
		}
	}

	if len(v.Hand) > 0 {
		fmt.Println("\nYour hand:")
		for _, c := range v.Hand {
			fmt.Printf("  %s: %s\n", c.ID, c.Content)
		}
	}

	if v.Token != "" {
		fmt.Printf("\nToken: %s\n", v.Token)
	}
}

func (o *Output) printSettings(s Settings) {
	fmt.Printf("Points To Win: %d\n", s.PointsToWin)
	fmt.Printf("Max Players: %d\n", s.MaxPlayers)
	fmt.Printf("Hand Size: %d\n", s.HandSize)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
