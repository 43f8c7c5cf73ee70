package room

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/partydeck/partydeck-go/internal/broadcast"
	"github.com/partydeck/partydeck-go/internal/dependencies/clock"
	"github.com/partydeck/partydeck-go/internal/dependencies/random"
	"github.com/partydeck/partydeck-go/internal/dependencies/scheduler"
	"github.com/partydeck/partydeck-go/internal/model"
	"github.com/partydeck/partydeck-go/internal/services/deck"
	"github.com/partydeck/partydeck-go/internal/services/game"
	"github.com/partydeck/partydeck-go/internal/services/session"
	"github.com/partydeck/partydeck-go/internal/storage"
)

const (
	// ReconnectWindow is how long a dropped player's seat is held
	ReconnectWindow = 10 * time.Second
	// RoundOverDelay is the pause between a round verdict and the next
	// round
	RoundOverDelay = 5 * time.Second
	// GameOverDelay is the pause between the game verdict and the return
	// to the lobby
	GameOverDelay = 5 * time.Second
	// SettingsQuietPeriod batches rapid settings changes into one
	// announcement
	SettingsQuietPeriod = 2 * time.Second

	roomCodeLength   = 5
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	maxCodeAttempts  = 10
)

// View is what a single player gets back from a room operation: the
// public snapshot plus their private hand
type View struct {
	Snapshot model.RoomSnapshot `json:"room"`
	PlayerID model.PlayerID     `json:"player_id"`
	Hand     []model.Card       `json:"hand"`
	Token    string             `json:"token,omitempty"`
}

type removalKey struct {
	code     model.RoomCode
	playerID model.PlayerID
}

// Controller owns all live rooms. Every operation takes the room's lock,
// loads the room, mutates it through the game engine, saves, and
// publishes; scheduled work re-validates the room generation before
// acting.
type Controller struct {
	storage  storage.Storage
	engine   *game.Engine
	decks    *deck.Service
	sessions *session.Service
	gateway  broadcast.Gateway
	clock    clock.Clock
	random   random.Random
	sched    scheduler.Scheduler
	logger   *slog.Logger

	locksMu sync.Mutex
	locks   map[model.RoomCode]*sync.Mutex

	timersMu    sync.Mutex
	phaseTimers map[model.RoomCode]scheduler.Timer
	removals    map[removalKey]scheduler.Timer
	debounces   map[model.RoomCode]scheduler.Timer
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	engine *game.Engine,
	decks *deck.Service,
	sessions *session.Service,
	gateway broadcast.Gateway,
	clock clock.Clock,
	random random.Random,
	sched scheduler.Scheduler,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		engine:      engine,
		decks:       decks,
		sessions:    sessions,
		gateway:     gateway,
		clock:       clock,
		random:      random,
		sched:       sched,
		logger:      logger,
		locks:       make(map[model.RoomCode]*sync.Mutex),
		phaseTimers: make(map[model.RoomCode]scheduler.Timer),
		removals:    make(map[removalKey]scheduler.Timer),
		debounces:   make(map[model.RoomCode]scheduler.Timer),
	}
}

// lockRoom serializes access to one room. All room state transitions
// happen with this held.
func (c *Controller) lockRoom(code model.RoomCode) func() {
	c.locksMu.Lock()
	lock, ok := c.locks[code]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[code] = lock
	}
	c.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// CreateRoom creates a room with default settings and seats its first
// player as owner
func (c *Controller) CreateRoom(ctx context.Context, username string) (*View, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, model.ErrInvalidSubmission
	}

	code, err := c.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	player := &model.Player{
		ID:           c.sessions.NewPlayerID(),
		Username:     username,
		Connected:    true,
		ConnectionID: c.sessions.NewConnectionID(),
		JoinedAt:     now,
	}
	room := &model.Room{
		Code:      code,
		Players:   []*model.Player{player},
		OwnerID:   player.ID,
		Settings:  model.DefaultSettings(),
		GameState: model.GameStateLobby,
		CreatedAt: now,
		UpdatedAt: now,
	}

	unlock := c.lockRoom(code)
	defer unlock()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	sess := c.sessions.Create(player.ID, code, username)

	c.logger.Info("room created",
		slog.String("room_code", string(code)),
		slog.String("owner", username),
	)
	c.publish(code, model.EventRoomCreated, c.snapshot(room))

	return c.view(room, player, sess.Token), nil
}

// Join seats a player in a room. Players seat connected; the reconnect
// window only opens once their event stream drops. Joining mid-game
// seats them as a spectator until the next round deals them in.
func (c *Controller) Join(ctx context.Context, code model.RoomCode, username string) (*View, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, model.ErrInvalidSubmission
	}

	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.PlayerByUsername(username) != nil {
		return nil, model.ErrDuplicateName
	}
	if len(room.Players) >= room.Settings.MaxPlayers {
		return nil, model.ErrRoomFull
	}

	player := &model.Player{
		ID:           c.sessions.NewPlayerID(),
		Username:     username,
		Connected:    true,
		ConnectionID: c.sessions.NewConnectionID(),
		JoinedAt:     c.clock.Now(),
	}
	room.Players = append(room.Players, player)
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	sess := c.sessions.Create(player.ID, code, username)

	c.logger.Info("player joined",
		slog.String("room_code", string(code)),
		slog.String("username", username),
		slog.Bool("spectating", room.GameState == model.GameStateInGame),
	)
	c.publishPlayerList(room)
	c.systemChat(code, fmt.Sprintf("%s joined the room", username))

	return c.view(room, player, sess.Token), nil
}

// Reconnect restores a dropped player's seat from their session token.
// Past the window the seat is gone and the full removal policy has or
// will run; the token is rejected.
func (c *Controller) Reconnect(ctx context.Context, token string) (*View, error) {
	sess, err := c.sessions.Validate(token)
	if err != nil {
		return nil, model.ErrReconnectExpired
	}

	unlock := c.lockRoom(sess.RoomCode)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, sess.RoomCode)
	if err != nil {
		return nil, model.ErrReconnectExpired
	}

	player := room.GetPlayer(sess.PlayerID)
	if player == nil {
		c.sessions.Invalidate(token)
		return nil, model.ErrReconnectExpired
	}

	if player.DisconnectedAt != nil && c.clock.Now().Sub(*player.DisconnectedAt) > ReconnectWindow {
		// The removal timer lost the race; apply the policy now
		if err := c.removePlayer(ctx, room, player.ID, "was removed after disconnecting"); err != nil {
			return nil, err
		}
		return nil, model.ErrReconnectExpired
	}

	c.connectPlayer(room, player)
	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.logger.Info("player reconnected",
		slog.String("room_code", string(room.Code)),
		slog.String("player_id", string(player.ID)),
	)
	c.publishPlayerList(room)
	c.systemChat(room.Code, fmt.Sprintf("%s reconnected", player.Username))

	return c.view(room, player, token), nil
}

// GetView returns the room as one player sees it: the public snapshot
// plus their own hand
func (c *Controller) GetView(ctx context.Context, code model.RoomCode, playerID model.PlayerID) (*View, error) {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	player := room.GetPlayer(playerID)
	if player == nil {
		return nil, model.ErrNotInRoom
	}
	return c.view(room, player, ""), nil
}

// MarkConnected records a live event stream for the player
func (c *Controller) MarkConnected(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	player := room.GetPlayer(playerID)
	if player == nil {
		return model.ErrNotInRoom
	}

	c.connectPlayer(room, player)
	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.publishPlayerList(room)
	return nil
}

// MarkDisconnected records a dropped event stream. The seat survives for
// the reconnect window; a timer applies the removal policy if the player
// stays away.
func (c *Controller) MarkDisconnected(ctx context.Context, code model.RoomCode, playerID model.PlayerID) {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return
	}
	player := room.GetPlayer(playerID)
	if player == nil || !player.Connected {
		return
	}

	now := c.clock.Now()
	player.Connected = false
	player.ConnectionID = ""
	player.DisconnectedAt = &now
	room.UpdatedAt = now
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		c.logger.Error("failed to save room on disconnect",
			slog.String("room_code", string(code)),
			slog.String("error", err.Error()),
		)
		return
	}

	c.scheduleRemoval(code, playerID)

	c.logger.Info("player disconnected",
		slog.String("room_code", string(code)),
		slog.String("player_id", string(playerID)),
	)
	c.publishPlayerList(room)
	c.systemChat(code, fmt.Sprintf("%s disconnected", player.Username))
}

// UpdateSettings applies a partial settings change. Owner only, in the
// lobby or mid-game; a mid-round change is visible to the round that
// completes after it. The change takes effect and is broadcast
// immediately; only the chat summary is held back for the quiet period
// so slider drags collapse into one line.
func (c *Controller) UpdateSettings(ctx context.Context, code model.RoomCode, playerID model.PlayerID, patch model.SettingsPatch) (model.Settings, error) {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return model.Settings{}, err
	}
	if !room.IsOwner(playerID) {
		return model.Settings{}, model.ErrNotAuthorized
	}
	if patch.IsEmpty() {
		return room.Settings, nil
	}

	updated := patch.Apply(room.Settings)
	if err := updated.Validate(len(room.Players)); err != nil {
		return model.Settings{}, err
	}

	room.Settings = updated
	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return model.Settings{}, err
	}

	c.publish(code, model.EventSettingsUpdated, model.SettingsUpdatedPayload{
		Settings: updated,
	})
	c.scheduleSettingsAnnouncement(code)
	return updated, nil
}

// StartGame starts the game. Owner only, lobby only, minimum players
// required.
func (c *Controller) StartGame(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	if !room.IsOwner(playerID) {
		return model.ErrNotAuthorized
	}
	if err := c.engine.Start(room); err != nil {
		return err
	}
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.publish(code, model.EventGameStarted, c.snapshot(room))
	c.publish(code, model.EventNewRound, c.snapshot(room))
	return nil
}

// Submit records a player's answer for the current prompt
func (c *Controller) Submit(ctx context.Context, code model.RoomCode, playerID model.PlayerID, cardIDs []string) error {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	result, err := c.engine.Submit(room, playerID, cardIDs)
	if err != nil {
		return err
	}
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.publish(code, model.EventSubmissionsUpdated, model.SubmissionsUpdatedPayload{
		Count:    len(room.Submissions),
		Required: room.RequiredSubmissions(),
	})
	if result.First {
		c.publish(code, model.EventFirstCardSubmitted, nil)
	}
	if result.Complete {
		c.publish(code, model.EventSubmissionsComplete, model.SubmissionsCompletePayload{
			Phase: room.Phase,
		})
	}
	return nil
}

// SkipPrompt swaps the round's prompt before anyone has answered it
func (c *Controller) SkipPrompt(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	if err := c.engine.SkipPrompt(room, playerID); err != nil {
		return err
	}
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.publish(code, model.EventPromptChanged, model.PromptChangedPayload{
		Prompt: *room.CurrentPrompt,
	})
	return nil
}

// Reveal turns over the next submission
func (c *Controller) Reveal(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	if err := c.engine.Reveal(room, playerID); err != nil {
		return err
	}
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.publish(code, model.EventCardRevealed, model.CardRevealedPayload{
		Revealed: room.Revealed,
		Phase:    room.Phase,
	})
	return nil
}

// SelectWinner awards the round and schedules what follows: the next
// round, or the game-over sequence when the point hit the target
func (c *Controller) SelectWinner(ctx context.Context, code model.RoomCode, playerID, winnerID model.PlayerID) error {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	winner, won, err := c.engine.SelectWinner(room, playerID, winnerID)
	if err != nil {
		return err
	}
	winningCards := c.engine.WinningCards(room, winnerID)
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	summary := model.PlayerSummary{
		ID:        winner.ID,
		Username:  winner.Username,
		Score:     winner.Score,
		Connected: winner.Connected,
		HandSize:  len(winner.Hand),
	}
	c.publish(code, model.EventRoundOver, model.RoundOverPayload{
		Winner:       summary,
		WinningCards: winningCards,
	})
	c.systemChat(code, fmt.Sprintf("%s won the round", winner.Username))

	if won {
		c.publish(code, model.EventGameOver, model.GameOverPayload{Winner: summary})
		c.schedulePhase(code, room.Generation, GameOverDelay, c.finishGame)
	} else {
		c.schedulePhase(code, room.Generation, RoundOverDelay, c.advanceRound)
	}
	return nil
}

// Kick removes another player from the room. Owner only.
func (c *Controller) Kick(ctx context.Context, code model.RoomCode, ownerID, targetID model.PlayerID) error {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	if !room.IsOwner(ownerID) {
		return model.ErrNotAuthorized
	}
	if ownerID == targetID {
		return model.ErrNotAuthorized
	}
	if room.GetPlayer(targetID) == nil {
		return model.ErrPlayerNotFound
	}

	c.gateway.PublishTo(code, targetID, model.Event{Type: model.EventKickedNotice})
	return c.removePlayer(ctx, room, targetID, "was kicked")
}

// Leave removes the calling player from the room, lobby or mid-game
func (c *Controller) Leave(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	if room.GetPlayer(playerID) == nil {
		return model.ErrNotInRoom
	}
	return c.removePlayer(ctx, room, playerID, "left the room")
}

// Chat relays a player's chat line to the room
func (c *Controller) Chat(ctx context.Context, code model.RoomCode, playerID model.PlayerID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ErrInvalidSubmission
	}

	unlock := c.lockRoom(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	player := room.GetPlayer(playerID)
	if player == nil {
		return model.ErrNotInRoom
	}

	c.publish(code, model.EventChatMessage, model.ChatMessagePayload{
		Kind:   model.ChatKindPlayer,
		Sender: player.Username,
		Text:   text,
	})
	return nil
}

// removePlayer applies the removal policy with the room lock held. In
// the lobby that is a simple unseat; mid-game it runs the disruption
// policy. The last player leaving deletes the room.
func (c *Controller) removePlayer(ctx context.Context, room *model.Room, playerID model.PlayerID, reason string) error {
	player := room.GetPlayer(playerID)
	if player == nil {
		return nil
	}
	username := player.Username
	code := room.Code

	c.cancelRemoval(code, playerID)
	c.sessions.InvalidatePlayer(code, playerID)

	outcome := game.DepartureContinued
	if room.GameState == model.GameStateInGame {
		outcome = c.engine.RemoveFromGame(room, playerID)
	} else {
		room.RemovePlayer(playerID)
	}

	if len(room.Players) == 0 {
		return c.deleteRoom(ctx, code)
	}

	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.logger.Info("player removed",
		slog.String("room_code", string(code)),
		slog.String("username", username),
		slog.String("reason", reason),
	)
	c.publish(code, model.EventPlayerRemoved, model.PlayerRemovedPayload{
		PlayerID: playerID,
		Username: username,
		Players:  c.snapshot(room).Players,
	})
	c.systemChat(code, fmt.Sprintf("%s %s", username, reason))

	switch outcome {
	case game.DepartureTerminated:
		c.publish(code, model.EventGameTerminated, model.GameTerminatedPayload{
			Reason: "not enough players to continue",
		})
		c.publish(code, model.EventBackToLobby, c.snapshot(room))
	case game.DepartureRoundReset:
		c.publish(code, model.EventNewRound, c.snapshot(room))
	}
	return nil
}

// deleteRoom tears the room down: storage, sessions, hub, live timers
func (c *Controller) deleteRoom(ctx context.Context, code model.RoomCode) error {
	if err := c.storage.DeleteRoom(ctx, code); err != nil {
		return err
	}
	c.sessions.InvalidateRoom(code)
	c.gateway.CloseRoom(code)

	c.timersMu.Lock()
	if t, ok := c.phaseTimers[code]; ok {
		t.Stop()
		delete(c.phaseTimers, code)
	}
	if t, ok := c.debounces[code]; ok {
		t.Stop()
		delete(c.debounces, code)
	}
	for key, t := range c.removals {
		if key.code == code {
			t.Stop()
			delete(c.removals, key)
		}
	}
	c.timersMu.Unlock()

	c.locksMu.Lock()
	delete(c.locks, code)
	c.locksMu.Unlock()

	c.logger.Info("room deleted", slog.String("room_code", string(code)))
	return nil
}

// advanceRound is the round-over timer body
func (c *Controller) advanceRound(ctx context.Context, room *model.Room) error {
	if err := c.engine.NextRound(room); err != nil {
		return err
	}
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}
	c.publish(room.Code, model.EventNewRound, c.snapshot(room))
	return nil
}

// finishGame is the game-over timer body
func (c *Controller) finishGame(ctx context.Context, room *model.Room) error {
	c.engine.ReturnToLobby(room)
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}
	c.publish(room.Code, model.EventBackToLobby, c.snapshot(room))
	return nil
}

// schedulePhase schedules fn against the room's current generation. By
// the time it fires the room may have moved on (disruption reset, game
// termination, deletion); a generation mismatch makes it a no-op.
func (c *Controller) schedulePhase(code model.RoomCode, generation uint64, d time.Duration, fn func(context.Context, *model.Room) error) {
	c.timersMu.Lock()
	if t, ok := c.phaseTimers[code]; ok {
		t.Stop()
	}
	c.phaseTimers[code] = c.sched.AfterFunc(d, func() {
		ctx := context.Background()
		unlock := c.lockRoom(code)
		defer unlock()

		room, err := c.storage.GetRoom(ctx, code)
		if err != nil || room.Generation != generation {
			return
		}
		if err := fn(ctx, room); err != nil {
			c.logger.Error("scheduled phase transition failed",
				slog.String("room_code", string(code)),
				slog.String("error", err.Error()),
			)
		}
	})
	c.timersMu.Unlock()
}

// scheduleRemoval arms the reconnect-window timer for a disconnected
// player
func (c *Controller) scheduleRemoval(code model.RoomCode, playerID model.PlayerID) {
	key := removalKey{code: code, playerID: playerID}

	c.timersMu.Lock()
	if t, ok := c.removals[key]; ok {
		t.Stop()
	}
	c.removals[key] = c.sched.AfterFunc(ReconnectWindow, func() {
		ctx := context.Background()
		unlock := c.lockRoom(code)
		defer unlock()

		c.timersMu.Lock()
		delete(c.removals, key)
		c.timersMu.Unlock()

		room, err := c.storage.GetRoom(ctx, code)
		if err != nil {
			return
		}
		player := room.GetPlayer(playerID)
		if player == nil || player.Connected || player.DisconnectedAt == nil {
			return
		}
		// A reconnect-then-drop while this timer was firing restarts the
		// window; only an elapsed one removes the seat
		if c.clock.Now().Sub(*player.DisconnectedAt) < ReconnectWindow {
			return
		}
		if err := c.removePlayer(ctx, room, playerID, "was removed after disconnecting"); err != nil {
			c.logger.Error("failed to remove expired player",
				slog.String("room_code", string(code)),
				slog.String("player_id", string(playerID)),
				slog.String("error", err.Error()),
			)
		}
	})
	c.timersMu.Unlock()
}

func (c *Controller) cancelRemoval(code model.RoomCode, playerID model.PlayerID) {
	key := removalKey{code: code, playerID: playerID}
	c.timersMu.Lock()
	if t, ok := c.removals[key]; ok {
		t.Stop()
		delete(c.removals, key)
	}
	c.timersMu.Unlock()
}

// scheduleSettingsAnnouncement (re)arms the quiet-period timer for the
// chat summary; a burst of changes collapses into one line
func (c *Controller) scheduleSettingsAnnouncement(code model.RoomCode) {
	c.timersMu.Lock()
	if t, ok := c.debounces[code]; ok {
		t.Stop()
	}
	c.debounces[code] = c.sched.AfterFunc(SettingsQuietPeriod, func() {
		ctx := context.Background()
		unlock := c.lockRoom(code)
		defer unlock()

		c.timersMu.Lock()
		delete(c.debounces, code)
		c.timersMu.Unlock()

		room, err := c.storage.GetRoom(ctx, code)
		if err != nil {
			return
		}
		c.systemChat(code, fmt.Sprintf("settings updated: first to %d, up to %d players, hand size %d",
			room.Settings.PointsToWin, room.Settings.MaxPlayers, room.Settings.HandSize))
	})
	c.timersMu.Unlock()
}

func (c *Controller) connectPlayer(room *model.Room, player *model.Player) {
	player.Connected = true
	player.ConnectionID = c.sessions.NewConnectionID()
	player.DisconnectedAt = nil
	c.cancelRemoval(room.Code, player.ID)
}

func (c *Controller) generateCode(ctx context.Context) (model.RoomCode, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := model.RoomCode(c.random.String(roomCodeLength, roomCodeAlphabet))
		exists, err := c.storage.RoomExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique room code")
}

func (c *Controller) snapshot(room *model.Room) model.RoomSnapshot {
	return room.Snapshot(c.decks.PromptCount(), c.decks.AnswerCount())
}

func (c *Controller) view(room *model.Room, player *model.Player, token string) *View {
	hand := make([]model.Card, len(player.Hand))
	copy(hand, player.Hand)
	return &View{
		Snapshot: c.snapshot(room),
		PlayerID: player.ID,
		Hand:     hand,
		Token:    token,
	}
}

func (c *Controller) publish(code model.RoomCode, t model.EventType, payload any) {
	c.gateway.Publish(code, model.Event{Type: t, Payload: payload})
}

func (c *Controller) publishPlayerList(room *model.Room) {
	c.publish(room.Code, model.EventPlayerListChanged, model.PlayerListChangedPayload{
		Players: c.snapshot(room).Players,
	})
}

func (c *Controller) systemChat(code model.RoomCode, text string) {
	c.publish(code, model.EventChatMessage, model.ChatMessagePayload{
		Kind: model.ChatKindSystem,
		Text: text,
	})
}
