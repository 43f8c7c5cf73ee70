package room

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/partydeck/partydeck-go/internal/broadcast"
	"github.com/partydeck/partydeck-go/internal/dependencies/mocks"
	"github.com/partydeck/partydeck-go/internal/model"
	"github.com/partydeck/partydeck-go/internal/services/deck"
	"github.com/partydeck/partydeck-go/internal/services/game"
	"github.com/partydeck/partydeck-go/internal/services/session"
	"github.com/partydeck/partydeck-go/internal/storage/memory"
	"github.com/partydeck/partydeck-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	sched      *mocks.MockScheduler
	recorder   *broadcast.Recorder
	decks      *deck.Service
	sessions   *session.Service
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.sched = mocks.NewMockScheduler()
	s.recorder = broadcast.NewRecorder()
	s.ctx = context.Background()

	s.decks = deck.New(s.storage, s.random)
	pools := model.CardPools{}
	for i := 1; i <= 5; i++ {
		pools.Prompts = append(pools.Prompts, model.Card{
			ID:      fmt.Sprintf("p-%d", i),
			Kind:    model.CardKindPrompt,
			Content: fmt.Sprintf("Prompt %d?", i),
			Blanks:  1,
		})
	}
	for i := 1; i <= 10; i++ {
		pools.Answers = append(pools.Answers, model.Card{
			ID:      fmt.Sprintf("a-%d", i),
			Kind:    model.CardKindAnswer,
			Content: fmt.Sprintf("Answer %d", i),
		})
	}
	s.Require().NoError(s.decks.LoadPools(pools))

	logger := testutil.NopLogger()
	engine := game.NewEngine(s.decks, s.clock, logger)
	s.sessions = session.New(s.clock, session.DefaultConfig())
	s.controller = NewController(
		s.storage, engine, s.decks, s.sessions, s.recorder,
		s.clock, s.random, s.sched, logger,
	)
}

func (s *ControllerSuite) createRoom(code, username string) *View {
	s.random.QueueString(code)
	v, err := s.controller.CreateRoom(s.ctx, username)
	s.Require().NoError(err)
	s.Require().Equal(model.RoomCode(code), v.Snapshot.Code)
	return v
}

func (s *ControllerSuite) join(code model.RoomCode, username string) *View {
	v, err := s.controller.Join(s.ctx, code, username)
	s.Require().NoError(err)
	return v
}

// threeSeats creates a room with alice (owner), bob, and carol
func (s *ControllerSuite) threeSeats() (model.RoomCode, map[string]*View) {
	owner := s.createRoom("ABCDE", "alice")
	code := owner.Snapshot.Code
	views := map[string]*View{
		"alice": owner,
		"bob":   s.join(code, "bob"),
		"carol": s.join(code, "carol"),
	}
	return code, views
}

func (s *ControllerSuite) startGame(code model.RoomCode, views map[string]*View) {
	s.Require().NoError(s.controller.StartGame(s.ctx, code, views["alice"].PlayerID))
}

func (s *ControllerSuite) hand(code model.RoomCode, playerID model.PlayerID) []model.Card {
	v, err := s.controller.GetView(s.ctx, code, playerID)
	s.Require().NoError(err)
	return v.Hand
}

func (s *ControllerSuite) roomState(code model.RoomCode) *model.Room {
	room, err := s.storage.GetRoom(s.ctx, code)
	s.Require().NoError(err)
	return room
}

// playRound drives a started room through submit, reveal, and judging,
// then awards the round to bob. Every seated non-judge submits.
func (s *ControllerSuite) playRound(code model.RoomCode, views map[string]*View) {
	room := s.roomState(code)
	for _, p := range room.Players {
		if room.IsJudge(p.ID) || p.IsSpectator() {
			continue
		}
		hand := s.hand(code, p.ID)
		s.Require().NoError(s.controller.Submit(s.ctx, code, p.ID, []string{hand[0].ID}))
	}

	judgeID := room.JudgeID
	for s.roomState(code).Phase == model.PhaseRevealing {
		s.Require().NoError(s.controller.Reveal(s.ctx, code, judgeID))
	}
	s.Require().NoError(s.controller.SelectWinner(s.ctx, code, judgeID, views["bob"].PlayerID))
}

func (s *ControllerSuite) TestCreateRoom() {
	v := s.createRoom("ABCDE", "alice")

	s.NotEmpty(v.Token)
	s.NotEmpty(v.PlayerID)
	s.Equal(model.GameStateLobby, v.Snapshot.GameState)
	s.Equal(model.DefaultSettings(), v.Snapshot.Settings)
	s.Equal(v.PlayerID, v.Snapshot.OwnerID)
	s.Len(v.Snapshot.Players, 1)
	s.Empty(v.Hand)

	created := s.recorder.LastOfType(model.EventRoomCreated)
	s.Require().NotNil(created)
	s.Equal(model.RoomCode("ABCDE"), created.RoomCode)
}

func (s *ControllerSuite) TestCreateRoomRejectsBlankName() {
	s.random.QueueString("ABCDE")
	_, err := s.controller.CreateRoom(s.ctx, "   ")
	s.Error(err)
}

func (s *ControllerSuite) TestCreateRoomRetriesTakenCodes() {
	s.createRoom("ABCDE", "alice")

	s.random.QueueString("ABCDE", "FGHIJ")
	v, err := s.controller.CreateRoom(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("FGHIJ"), v.Snapshot.Code)
}

func (s *ControllerSuite) TestJoin() {
	owner := s.createRoom("ABCDE", "alice")
	v := s.join(owner.Snapshot.Code, "bob")

	s.Len(v.Snapshot.Players, 2)
	s.NotEqual(owner.PlayerID, v.PlayerID)
	s.Equal(owner.PlayerID, v.Snapshot.OwnerID)
	s.NotNil(s.recorder.LastOfType(model.EventPlayerListChanged))
}

func (s *ControllerSuite) TestJoinSeatsPlayerConnected() {
	code, views := s.threeSeats()
	bob := views["bob"]
	s.True(s.roomState(code).GetPlayer(bob.PlayerID).Connected)

	// A drop before any event stream still opens the reconnect window
	s.controller.MarkDisconnected(s.ctx, code, bob.PlayerID)
	s.Equal(1, s.sched.Pending())
	s.False(s.roomState(code).GetPlayer(bob.PlayerID).Connected)
}

func (s *ControllerSuite) TestJoinUnknownRoom() {
	_, err := s.controller.Join(s.ctx, "NOPE1", "bob")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestJoinDuplicateNameCaseInsensitive() {
	owner := s.createRoom("ABCDE", "alice")
	_, err := s.controller.Join(s.ctx, owner.Snapshot.Code, "ALICE")
	s.ErrorIs(err, model.ErrDuplicateName)
}

func (s *ControllerSuite) TestJoinFullRoom() {
	code, views := s.threeSeats()
	three := 3
	_, err := s.controller.UpdateSettings(s.ctx, code, views["alice"].PlayerID, model.SettingsPatch{
		MaxPlayers: &three,
	})
	s.Require().NoError(err)

	_, err = s.controller.Join(s.ctx, code, "dave")
	s.ErrorIs(err, model.ErrRoomFull)
}

func (s *ControllerSuite) TestJoinMidGameSeatsSpectator() {
	code, views := s.threeSeats()
	s.startGame(code, views)

	v := s.join(code, "dave")
	s.Empty(v.Hand)
	s.Equal(model.GameStateInGame, v.Snapshot.GameState)

	// The next round deals them in
	s.playRound(code, views)
	s.sched.FireAll()
	s.Len(s.hand(code, v.PlayerID), model.DefaultSettings().HandSize)
}

func (s *ControllerSuite) TestStartGame() {
	code, views := s.threeSeats()
	s.startGame(code, views)

	room := s.roomState(code)
	s.Equal(model.GameStateInGame, room.GameState)
	s.Equal(model.PhaseSubmitting, room.Phase)
	s.Equal(views["alice"].PlayerID, room.JudgeID)
	s.NotNil(s.recorder.LastOfType(model.EventGameStarted))
	s.NotNil(s.recorder.LastOfType(model.EventNewRound))
}

func (s *ControllerSuite) TestStartGameOwnerOnly() {
	code, views := s.threeSeats()
	err := s.controller.StartGame(s.ctx, code, views["bob"].PlayerID)
	s.ErrorIs(err, model.ErrNotAuthorized)
}

func (s *ControllerSuite) TestStartGameNeedsThreePlayers() {
	owner := s.createRoom("ABCDE", "alice")
	s.join(owner.Snapshot.Code, "bob")
	err := s.controller.StartGame(s.ctx, owner.Snapshot.Code, owner.PlayerID)
	s.ErrorIs(err, model.ErrNotEnoughPlayers)
}

func (s *ControllerSuite) TestFullRoundFlow() {
	code, views := s.threeSeats()
	s.startGame(code, views)

	// Two non-judge players submit
	bobHand := s.hand(code, views["bob"].PlayerID)
	s.Require().NoError(s.controller.Submit(s.ctx, code, views["bob"].PlayerID, []string{bobHand[0].ID}))
	s.NotNil(s.recorder.LastOfType(model.EventFirstCardSubmitted))

	progress := s.recorder.LastOfType(model.EventSubmissionsUpdated)
	s.Require().NotNil(progress)
	s.Equal(model.SubmissionsUpdatedPayload{Count: 1, Required: 2}, progress.Event.Payload)

	carolHand := s.hand(code, views["carol"].PlayerID)
	s.Require().NoError(s.controller.Submit(s.ctx, code, views["carol"].PlayerID, []string{carolHand[0].ID}))
	s.NotNil(s.recorder.LastOfType(model.EventSubmissionsComplete))
	s.Equal(model.PhaseRevealing, s.roomState(code).Phase)

	// Judge reveals both, then picks bob
	judge := views["alice"].PlayerID
	s.Require().NoError(s.controller.Reveal(s.ctx, code, judge))
	revealed := s.recorder.LastOfType(model.EventCardRevealed)
	s.Require().NotNil(revealed)
	s.Equal(model.PhaseRevealing, revealed.Event.Payload.(model.CardRevealedPayload).Phase)

	s.Require().NoError(s.controller.Reveal(s.ctx, code, judge))
	s.Equal(model.PhaseJudging, s.roomState(code).Phase)

	s.Require().NoError(s.controller.SelectWinner(s.ctx, code, judge, views["bob"].PlayerID))
	over := s.recorder.LastOfType(model.EventRoundOver)
	s.Require().NotNil(over)
	s.Equal("bob", over.Event.Payload.(model.RoundOverPayload).Winner.Username)
	s.Equal(1, over.Event.Payload.(model.RoundOverPayload).Winner.Score)

	// The pause elapses and the next round opens with the judge rotated
	s.Require().Equal(1, s.sched.Pending())
	s.sched.FireAll()
	room := s.roomState(code)
	s.Equal(model.PhaseSubmitting, room.Phase)
	s.Equal(views["bob"].PlayerID, room.JudgeID)
	s.Empty(room.Submissions)
}

func (s *ControllerSuite) TestGameOverFlow() {
	code, views := s.threeSeats()
	s.startGame(code, views)

	// Put bob one point short before his winning round
	room := s.roomState(code)
	room.GetPlayer(views["bob"].PlayerID).Score = room.Settings.PointsToWin - 1
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	s.playRound(code, views)

	gameOver := s.recorder.LastOfType(model.EventGameOver)
	s.Require().NotNil(gameOver)
	s.Equal("bob", gameOver.Event.Payload.(model.GameOverPayload).Winner.Username)

	s.sched.FireAll()
	room = s.roomState(code)
	s.Equal(model.GameStateLobby, room.GameState)
	s.Equal(model.PhaseNone, room.Phase)
	s.NotNil(s.recorder.LastOfType(model.EventBackToLobby))
	// The lobby opens with a clean slate
	s.Equal(0, room.GetPlayer(views["bob"].PlayerID).Score)
}

func (s *ControllerSuite) TestStaleRoundTimerIsNoOp() {
	code, views := s.threeSeats()
	s.join(code, "dave")
	s.startGame(code, views)
	s.playRound(code, views)
	s.Require().Equal(1, s.sched.Pending())

	// A departure resets the round before the pause elapses
	s.Require().NoError(s.controller.Leave(s.ctx, code, views["carol"].PlayerID))
	room := s.roomState(code)
	s.Equal(model.PhaseSubmitting, room.Phase)
	judgeBefore := room.JudgeID
	gen := room.Generation

	s.sched.FireAll()
	room = s.roomState(code)
	s.Equal(gen, room.Generation, "stale timer must not advance the round")
	s.Equal(judgeBefore, room.JudgeID)
}

func (s *ControllerSuite) TestSkipPrompt() {
	code, views := s.threeSeats()
	s.startGame(code, views)
	before := s.roomState(code).CurrentPrompt.ID

	s.Require().NoError(s.controller.SkipPrompt(s.ctx, code, views["alice"].PlayerID))
	changed := s.recorder.LastOfType(model.EventPromptChanged)
	s.Require().NotNil(changed)
	s.NotEqual(before, changed.Event.Payload.(model.PromptChangedPayload).Prompt.ID)
}

func (s *ControllerSuite) settingsChatCount() int {
	count := 0
	for _, rec := range s.recorder.EventsOfType(model.EventChatMessage) {
		payload := rec.Event.Payload.(model.ChatMessagePayload)
		if payload.Kind == model.ChatKindSystem && strings.Contains(payload.Text, "settings") {
			count++
		}
	}
	return count
}

func (s *ControllerSuite) TestUpdateSettingsDebouncesChatSummary() {
	code, views := s.threeSeats()
	owner := views["alice"].PlayerID

	for _, points := range []int{6, 7, 8} {
		p := points
		_, err := s.controller.UpdateSettings(s.ctx, code, owner, model.SettingsPatch{PointsToWin: &p})
		s.Require().NoError(err)
	}

	// Every change is live and broadcast immediately
	s.Equal(8, s.roomState(code).Settings.PointsToWin)
	announced := s.recorder.LastOfType(model.EventSettingsUpdated)
	s.Require().NotNil(announced)
	s.Equal(8, announced.Event.Payload.(model.SettingsUpdatedPayload).Settings.PointsToWin)
	s.Len(s.recorder.EventsOfType(model.EventSettingsUpdated), 3)

	// The chat summary waits out the quiet period and collapses to one line
	s.Equal(0, s.settingsChatCount())
	s.Equal(1, s.sched.Pending(), "rapid changes share one pending summary")
	s.sched.FireAll()
	s.Equal(1, s.settingsChatCount())
}

func (s *ControllerSuite) TestUpdateSettingsValidation() {
	code, views := s.threeSeats()
	owner := views["alice"].PlayerID

	bad := 100
	_, err := s.controller.UpdateSettings(s.ctx, code, owner, model.SettingsPatch{PointsToWin: &bad})
	s.ErrorIs(err, model.ErrInvalidSettings)

	// maxPlayers below the current seat count
	two := 2
	_, err = s.controller.UpdateSettings(s.ctx, code, owner, model.SettingsPatch{MaxPlayers: &two})
	s.ErrorIs(err, model.ErrInvalidSettings)

	_, err = s.controller.UpdateSettings(s.ctx, code, views["bob"].PlayerID, model.SettingsPatch{PointsToWin: &bad})
	s.ErrorIs(err, model.ErrNotAuthorized)
}

func (s *ControllerSuite) TestUpdateSettingsMidGameAffectsWinCheck() {
	code, views := s.threeSeats()
	s.startGame(code, views)

	room := s.roomState(code)
	room.GetPlayer(views["bob"].PlayerID).Score = 2
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	// Lowering the target mid-round is honored by the next win check
	three := 3
	_, err := s.controller.UpdateSettings(s.ctx, code, views["alice"].PlayerID, model.SettingsPatch{PointsToWin: &three})
	s.Require().NoError(err)

	s.playRound(code, views)
	gameOver := s.recorder.LastOfType(model.EventGameOver)
	s.Require().NotNil(gameOver)
	s.Equal("bob", gameOver.Event.Payload.(model.GameOverPayload).Winner.Username)
}

func (s *ControllerSuite) TestReconnectWithinWindow() {
	code, views := s.threeSeats()
	bob := views["bob"]
	s.Require().NoError(s.controller.MarkConnected(s.ctx, code, bob.PlayerID))

	s.controller.MarkDisconnected(s.ctx, code, bob.PlayerID)
	s.Require().Equal(1, s.sched.Pending())

	s.clock.Advance(9 * time.Second)
	v, err := s.controller.Reconnect(s.ctx, bob.Token)
	s.Require().NoError(err)
	s.Equal(bob.PlayerID, v.PlayerID)

	player := s.roomState(code).GetPlayer(bob.PlayerID)
	s.True(player.Connected)
	s.Nil(player.DisconnectedAt)
	s.Equal(0, s.sched.Pending(), "reconnect cancels the removal timer")

	// The stopped timer does nothing even if fired late
	s.clock.Advance(time.Hour)
	s.sched.FireAll()
	s.NotNil(s.roomState(code).GetPlayer(bob.PlayerID))
}

func (s *ControllerSuite) TestReconnectAfterWindowExpired() {
	code, views := s.threeSeats()
	bob := views["bob"]
	s.Require().NoError(s.controller.MarkConnected(s.ctx, code, bob.PlayerID))
	s.controller.MarkDisconnected(s.ctx, code, bob.PlayerID)

	s.clock.Advance(11 * time.Second)
	_, err := s.controller.Reconnect(s.ctx, bob.Token)
	s.ErrorIs(err, model.ErrReconnectExpired)

	s.Nil(s.roomState(code).GetPlayer(bob.PlayerID), "expired reconnect removes the seat")
}

func (s *ControllerSuite) TestRemovalTimerExpiresSeat() {
	code, views := s.threeSeats()
	s.join(code, "dave")
	bob := views["bob"]
	s.Require().NoError(s.controller.MarkConnected(s.ctx, code, bob.PlayerID))
	s.controller.MarkDisconnected(s.ctx, code, bob.PlayerID)

	s.clock.Advance(11 * time.Second)
	s.sched.FireAll()

	s.Nil(s.roomState(code).GetPlayer(bob.PlayerID))
	removed := s.recorder.LastOfType(model.EventPlayerRemoved)
	s.Require().NotNil(removed)
	s.Equal("bob", removed.Event.Payload.(model.PlayerRemovedPayload).Username)

	// The seat's token is dead
	_, err := s.controller.Reconnect(s.ctx, bob.Token)
	s.ErrorIs(err, model.ErrReconnectExpired)
}

func (s *ControllerSuite) TestRemovalTimerRespectsFreshWindow() {
	code, views := s.threeSeats()
	bob := views["bob"]
	s.Require().NoError(s.controller.MarkConnected(s.ctx, code, bob.PlayerID))
	s.controller.MarkDisconnected(s.ctx, code, bob.PlayerID)

	// Timer fires but the window has not actually elapsed
	s.clock.Advance(5 * time.Second)
	s.sched.FireAll()
	s.NotNil(s.roomState(code).GetPlayer(bob.PlayerID))
}

func (s *ControllerSuite) TestDisconnectExpiryMidGameDisrupts() {
	code, views := s.threeSeats()
	s.join(code, "dave")
	s.startGame(code, views)

	bob := views["bob"]
	bobHand := s.hand(code, bob.PlayerID)
	s.Require().NoError(s.controller.Submit(s.ctx, code, bob.PlayerID, []string{bobHand[0].ID}))

	s.Require().NoError(s.controller.MarkConnected(s.ctx, code, bob.PlayerID))
	s.controller.MarkDisconnected(s.ctx, code, bob.PlayerID)
	s.clock.Advance(11 * time.Second)
	s.sched.FireAll()

	room := s.roomState(code)
	s.Nil(room.GetPlayer(bob.PlayerID))
	s.Equal(model.PhaseSubmitting, room.Phase)
	s.Empty(room.Submissions, "losing a submitter restarts the round")
	s.NotNil(s.recorder.LastOfType(model.EventNewRound))
}

func (s *ControllerSuite) TestLeaveMidGameBelowMinimumTerminates() {
	code, views := s.threeSeats()
	s.startGame(code, views)

	s.Require().NoError(s.controller.Leave(s.ctx, code, views["carol"].PlayerID))

	room := s.roomState(code)
	s.Equal(model.GameStateLobby, room.GameState)
	s.NotNil(s.recorder.LastOfType(model.EventGameTerminated))
	s.NotNil(s.recorder.LastOfType(model.EventBackToLobby))
}

func (s *ControllerSuite) TestLeaveLobbyReassignsOwner() {
	code, views := s.threeSeats()
	s.Require().NoError(s.controller.Leave(s.ctx, code, views["alice"].PlayerID))

	room := s.roomState(code)
	s.Equal(views["bob"].PlayerID, room.OwnerID)
}

func (s *ControllerSuite) TestLastPlayerLeavingDeletesRoom() {
	owner := s.createRoom("ABCDE", "alice")
	code := owner.Snapshot.Code

	s.Require().NoError(s.controller.Leave(s.ctx, code, owner.PlayerID))

	_, err := s.storage.GetRoom(s.ctx, code)
	s.ErrorIs(err, model.ErrRoomNotFound)
	s.Contains(s.recorder.ClosedRooms(), code)

	_, err = s.controller.Reconnect(s.ctx, owner.Token)
	s.ErrorIs(err, model.ErrReconnectExpired)
}

func (s *ControllerSuite) TestKick() {
	code, views := s.threeSeats()
	s.join(code, "dave")
	bob := views["bob"]

	s.Require().NoError(s.controller.Kick(s.ctx, code, views["alice"].PlayerID, bob.PlayerID))

	s.Nil(s.roomState(code).GetPlayer(bob.PlayerID))

	notice := s.recorder.LastOfType(model.EventKickedNotice)
	s.Require().NotNil(notice)
	s.Equal(bob.PlayerID, notice.PlayerID, "kick notice goes to the target only")

	_, err := s.controller.Reconnect(s.ctx, bob.Token)
	s.ErrorIs(err, model.ErrReconnectExpired)
}

func (s *ControllerSuite) TestKickOwnerOnly() {
	code, views := s.threeSeats()
	err := s.controller.Kick(s.ctx, code, views["bob"].PlayerID, views["carol"].PlayerID)
	s.ErrorIs(err, model.ErrNotAuthorized)
}

func (s *ControllerSuite) TestKickSelfRejected() {
	code, views := s.threeSeats()
	err := s.controller.Kick(s.ctx, code, views["alice"].PlayerID, views["alice"].PlayerID)
	s.ErrorIs(err, model.ErrNotAuthorized)
}

func (s *ControllerSuite) TestChat() {
	code, views := s.threeSeats()
	s.Require().NoError(s.controller.Chat(s.ctx, code, views["bob"].PlayerID, "hello"))

	msg := s.recorder.LastOfType(model.EventChatMessage)
	s.Require().NotNil(msg)
	payload := msg.Event.Payload.(model.ChatMessagePayload)
	s.Equal(model.ChatKindPlayer, payload.Kind)
	s.Equal("bob", payload.Sender)
	s.Equal("hello", payload.Text)
}

func (s *ControllerSuite) TestChatRejectsEmpty() {
	code, views := s.threeSeats()
	err := s.controller.Chat(s.ctx, code, views["bob"].PlayerID, "   ")
	s.Error(err)
}

func (s *ControllerSuite) TestGetViewReturnsOwnHandOnly() {
	code, views := s.threeSeats()
	s.startGame(code, views)

	v, err := s.controller.GetView(s.ctx, code, views["bob"].PlayerID)
	s.Require().NoError(err)
	s.Len(v.Hand, model.DefaultSettings().HandSize)
	for _, p := range v.Snapshot.Players {
		s.Equal(model.DefaultSettings().HandSize, p.HandSize)
	}
}

func (s *ControllerSuite) TestGetViewRejectsOutsider() {
	code, _ := s.threeSeats()
	_, err := s.controller.GetView(s.ctx, code, "stranger")
	s.ErrorIs(err, model.ErrNotInRoom)
}
