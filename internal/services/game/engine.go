package game

import (
	"log/slog"

	"github.com/partydeck/partydeck-go/internal/dependencies/clock"
	"github.com/partydeck/partydeck-go/internal/model"
	"github.com/partydeck/partydeck-go/internal/services/deck"
)

// Engine implements the in-room state machine: round flow, submissions,
// reveals, judging, and the disruption policy. It mutates rooms in place
// and never touches storage, locks, or timers; the room controller owns
// those.
type Engine struct {
	decks  *deck.Service
	clock  clock.Clock
	logger *slog.Logger
}

// NewEngine creates a new game Engine
func NewEngine(decks *deck.Service, clock clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{
		decks:  decks,
		clock:  clock,
		logger: logger,
	}
}

// SubmitResult describes what a submission changed
type SubmitResult struct {
	// First is true when this was the round's first submission
	First bool
	// Complete is true when the submission closed the phase and the room
	// is now Revealing
	Complete bool
}

// DepartureOutcome describes how the state machine absorbed a mid-game
// removal
type DepartureOutcome int

const (
	// DepartureContinued means the round was unaffected
	DepartureContinued DepartureOutcome = iota
	// DepartureRoundReset means the current round restarted
	DepartureRoundReset
	// DepartureTerminated means the game ended and the room returned to
	// the lobby
	DepartureTerminated
)

// Start begins a game from the lobby. Scores reset, fresh decks are
// built, the first seated player judges the first round.
func (e *Engine) Start(room *model.Room) error {
	if room.GameState != model.GameStateLobby {
		return model.ErrInvalidPhase
	}
	if len(room.Players) < model.MinPlayersToPlay {
		return model.ErrNotEnoughPlayers
	}
	if !e.decks.IsLoaded() {
		return model.ErrCardPoolsNotLoaded
	}

	for _, p := range room.Players {
		p.Score = 0
		p.Hand = nil
	}

	room.GameState = model.GameStateInGame
	room.PromptDeck = e.decks.NewPromptDeck()
	room.AnswerDeck = e.decks.NewAnswerDeck()
	room.JudgeID = room.Players[0].ID

	e.enterSubmitting(room, false)

	e.logger.Info("game started",
		slog.String("room_code", string(room.Code)),
		slog.Int("player_count", len(room.Players)),
		slog.Int("points_to_win", room.Settings.PointsToWin),
	)
	return nil
}

// NextRound rotates the judge one seat and opens a new round. Cards
// submitted last round leave their owners' hands here.
func (e *Engine) NextRound(room *model.Room) error {
	if room.GameState != model.GameStateInGame {
		return model.ErrInvalidPhase
	}

	// A vanished judge leaves idx at -1, handing the role to seat 0
	idx := room.PlayerIndex(room.JudgeID)
	room.JudgeID = room.Players[(idx+1)%len(room.Players)].ID

	e.enterSubmitting(room, true)
	return nil
}

// Submit records a player's answer cards for the current prompt. A
// repeat submission is a silent no-op. Closing the required count moves
// the room to Revealing with the submissions shuffled.
func (e *Engine) Submit(room *model.Room, playerID model.PlayerID, cardIDs []string) (SubmitResult, error) {
	if room.GameState != model.GameStateInGame || room.Phase != model.PhaseSubmitting {
		return SubmitResult{}, model.ErrInvalidPhase
	}

	player := room.GetPlayer(playerID)
	if player == nil {
		return SubmitResult{}, model.ErrPlayerNotFound
	}
	if room.IsJudge(playerID) {
		return SubmitResult{}, model.ErrNotAuthorized
	}
	if player.IsSpectator() {
		return SubmitResult{}, model.ErrInvalidSubmission
	}
	if room.HasSubmitted(playerID) {
		return SubmitResult{}, nil
	}

	if len(cardIDs) != room.CurrentPrompt.BlankCount() {
		return SubmitResult{}, model.ErrInvalidSubmission
	}
	seen := make(map[string]bool, len(cardIDs))
	cards := make([]model.Card, 0, len(cardIDs))
	for _, id := range cardIDs {
		if seen[id] || !player.HoldsCard(id) {
			return SubmitResult{}, model.ErrInvalidSubmission
		}
		seen[id] = true
		for _, c := range player.Hand {
			if c.ID == id {
				cards = append(cards, c)
				break
			}
		}
	}

	room.Submissions = append(room.Submissions, model.Submission{
		PlayerID: playerID,
		Cards:    cards,
	})
	room.UpdatedAt = e.clock.Now()

	result := SubmitResult{First: len(room.Submissions) == 1}
	if len(room.Submissions) >= room.RequiredSubmissions() {
		e.decks.ShuffleSubmissions(room.Submissions)
		room.Revealed = nil
		room.Phase = model.PhaseRevealing
		result.Complete = true
	}
	return result, nil
}

// SkipPrompt swaps the current prompt for a fresh one. Judge only, and
// only before anyone has submitted.
func (e *Engine) SkipPrompt(room *model.Room, playerID model.PlayerID) error {
	if room.GameState != model.GameStateInGame || room.Phase != model.PhaseSubmitting {
		return model.ErrInvalidPhase
	}
	if !room.IsJudge(playerID) {
		return model.ErrNotAuthorized
	}
	if len(room.Submissions) > 0 {
		return model.ErrInvalidPhase
	}

	e.drawPrompt(room)
	room.UpdatedAt = e.clock.Now()
	return nil
}

// Reveal turns over the next face-down submission. Judge only. Revealing
// past the end is a no-op; revealing the last one moves to Judging.
func (e *Engine) Reveal(room *model.Room, playerID model.PlayerID) error {
	if room.GameState != model.GameStateInGame || room.Phase != model.PhaseRevealing {
		return model.ErrInvalidPhase
	}
	if !room.IsJudge(playerID) {
		return model.ErrNotAuthorized
	}

	if len(room.Revealed) >= len(room.Submissions) {
		return nil
	}
	room.Revealed = append(room.Revealed, room.Submissions[len(room.Revealed)])
	if len(room.Revealed) == len(room.Submissions) {
		room.Phase = model.PhaseJudging
	}
	room.UpdatedAt = e.clock.Now()
	return nil
}

// SelectWinner awards the round to a submitter and reports whether the
// point reached the win threshold. Judge only, Judging only. The room
// parks in RoundOver until the scheduled transition moves it on, so a
// repeat pick during the pause is rejected.
func (e *Engine) SelectWinner(room *model.Room, judgeID, winnerID model.PlayerID) (*model.Player, bool, error) {
	if room.GameState != model.GameStateInGame || room.Phase != model.PhaseJudging {
		return nil, false, model.ErrInvalidPhase
	}
	if !room.IsJudge(judgeID) {
		return nil, false, model.ErrNotAuthorized
	}
	if !room.HasSubmitted(winnerID) {
		return nil, false, model.ErrInvalidSubmission
	}

	winner := room.GetPlayer(winnerID)
	if winner == nil {
		return nil, false, model.ErrPlayerNotFound
	}

	winner.Score++
	room.Phase = model.PhaseRoundOver
	room.UpdatedAt = e.clock.Now()

	won := winner.Score >= room.Settings.PointsToWin
	e.logger.Info("round won",
		slog.String("room_code", string(room.Code)),
		slog.String("winner", string(winnerID)),
		slog.Int("score", winner.Score),
		slog.Bool("game_over", won),
	)
	return winner, won, nil
}

// WinningCards returns the cards the winner submitted this round
func (e *Engine) WinningCards(room *model.Room, winnerID model.PlayerID) []model.Card {
	for _, s := range room.Submissions {
		if s.PlayerID == winnerID {
			return s.Cards
		}
	}
	return nil
}

// RemoveFromGame drops a player mid-game and applies the disruption
// policy: below the minimum the game terminates; losing the judge hands
// the role to the next seat and restarts the round; losing a submitter
// or pending submitter restarts the round; anyone else is absorbed
// silently. Restarts keep hands intact because submitted cards only
// leave hands when the next round opens normally.
func (e *Engine) RemoveFromGame(room *model.Room, playerID model.PlayerID) DepartureOutcome {
	wasJudge := room.IsJudge(playerID)
	hadSubmitted := room.HasSubmitted(playerID)
	wasPlaying := false
	if p := room.GetPlayer(playerID); p != nil {
		wasPlaying = !p.IsSpectator()
	}

	idx := room.RemovePlayer(playerID)
	if idx < 0 {
		return DepartureContinued
	}

	if len(room.Players) < model.MinPlayersToPlay {
		e.ReturnToLobby(room)
		return DepartureTerminated
	}

	if wasJudge {
		// The judge's seat passes positionally so rotation order is
		// preserved
		next := idx
		if next >= len(room.Players) {
			next = 0
		}
		room.JudgeID = room.Players[next].ID
		e.resetRound(room)
		return DepartureRoundReset
	}

	if wasPlaying && (hadSubmitted || room.Phase == model.PhaseSubmitting) {
		e.resetRound(room)
		return DepartureRoundReset
	}

	room.UpdatedAt = e.clock.Now()
	return DepartureContinued
}

// ReturnToLobby ends the game and puts the room back in the lobby with
// scores and hands cleared
func (e *Engine) ReturnToLobby(room *model.Room) {
	room.GameState = model.GameStateLobby
	room.Phase = model.PhaseNone
	room.PromptDeck = nil
	room.AnswerDeck = nil
	room.CurrentPrompt = nil
	room.JudgeID = ""
	room.Submissions = nil
	room.Revealed = nil
	for _, p := range room.Players {
		p.Hand = nil
		p.Score = 0
	}
	room.Generation++
	room.UpdatedAt = e.clock.Now()
}

// enterSubmitting opens a round: last round's submitted cards leave
// hands when deduct is set, everyone (spectators included) is topped up
// to the hand size, and a fresh prompt is drawn.
func (e *Engine) enterSubmitting(room *model.Room, deduct bool) {
	if deduct {
		for _, s := range room.Submissions {
			if p := room.GetPlayer(s.PlayerID); p != nil {
				p.RemoveCards(s.Cards)
			}
		}
	}
	room.Submissions = nil
	room.Revealed = nil
	room.Phase = model.PhaseSubmitting

	for _, p := range room.Players {
		e.decks.TopUpHand(&room.AnswerDeck, p, room.Settings.HandSize)
	}

	e.drawPrompt(room)
	room.Generation++
	room.UpdatedAt = e.clock.Now()
}

// resetRound restarts the current round after a disruption. Submissions
// are discarded, hands and the prompt stay as they were.
func (e *Engine) resetRound(room *model.Room) {
	room.Submissions = nil
	room.Revealed = nil
	room.Phase = model.PhaseSubmitting
	room.Generation++
	room.UpdatedAt = e.clock.Now()

	e.logger.Info("round reset",
		slog.String("room_code", string(room.Code)),
		slog.String("judge", string(room.JudgeID)),
	)
}

func (e *Engine) drawPrompt(room *model.Room) {
	drawn := e.decks.DrawPrompts(&room.PromptDeck, 1)
	if len(drawn) > 0 {
		room.CurrentPrompt = &drawn[0]
	}
}
