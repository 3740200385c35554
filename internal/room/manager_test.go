package room

import (
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velvet-ludo/internal/config"
	"velvet-ludo/internal/game"
	"velvet-ludo/internal/prompts"
)

// stubStore avoids importing the real store, which depends on this package.
type stubStore struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func newStubStore() *stubStore { return &stubStore{rooms: map[string]*Room{}} }

func (s *stubStore) GetRoom(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[code]
	return r, ok
}

func (s *stubStore) SaveRoom(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.Code] = r
}

func (s *stubStore) DeleteRoom(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

type recordedEvent struct {
	Code   string
	Action string
	Data   interface{}
}

type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorder) Broadcast(code, action string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Code: code, Action: action, Data: data})
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Action
	}
	return out
}

func newTestManager() (*Manager, *recorder) {
	cfg := config.Config{HTTPAddr: ":0", DiceSeed: 1, RoomCodeLength: 6}
	m := NewManager(newStubStore(), cfg, prompts.NewSelector(1))
	rec := &recorder{}
	m.SetBroadcaster(rec)
	return m, rec
}

func startedRoom(t *testing.T, m *Manager, n int) *Room {
	t.Helper()
	r := m.CreateRoom("host", "#e11", game.ModeFriends)
	for i := 1; i < n; i++ {
		_, _, err := m.JoinRoom(r.Code, "guest", "#22b")
		require.NoError(t, err)
	}
	r, err := m.StartGame(r.Code, r.HostID)
	require.NoError(t, err)
	return r
}

func TestCreateJoinStart(t *testing.T) {
	m, rec := newTestManager()

	r := m.CreateRoom("host", "#e11", game.ModeCouple)
	assert.Len(t, r.Code, 6)
	assert.Equal(t, StatusLobby, r.Status)
	require.Len(t, r.Seats, 1)
	assert.Equal(t, r.HostID, r.Seats[0].ID)

	_, seat, err := m.JoinRoom(r.Code, "guest", "#22b")
	require.NoError(t, err)
	assert.NotEqual(t, r.HostID, seat.ID)

	_, err = m.StartGame(r.Code, seat.ID)
	assert.ErrorIs(t, err, ErrNotHost)

	r2, err := m.StartGame(r.Code, r.HostID)
	require.NoError(t, err)
	assert.Equal(t, StatusPlaying, r2.Status)
	require.Len(t, r2.State.Players, 2)
	assert.Equal(t, game.ColorRed, r2.State.Players[0].Color)
	assert.Equal(t, game.ColorBlue, r2.State.Players[1].Color)
	assert.True(t, r2.State.CanRoll)

	assert.Contains(t, rec.actions(), "room_updated")
	assert.Contains(t, rec.actions(), "game_started")
}

func TestStartRequirements(t *testing.T) {
	m, _ := newTestManager()

	r := m.CreateRoom("host", "#e11", game.ModeFriends)
	_, err := m.StartGame(r.Code, r.HostID)
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)

	_, err = m.StartGame("ZZZZZZ", r.HostID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestJoinLimits(t *testing.T) {
	m, _ := newTestManager()
	r := m.CreateRoom("host", "#e11", game.ModeFriends)
	for i := 0; i < game.MaxPlayers-1; i++ {
		_, _, err := m.JoinRoom(r.Code, "guest", "#22b")
		require.NoError(t, err)
	}
	_, _, err := m.JoinRoom(r.Code, "late", "#333")
	assert.ErrorIs(t, err, ErrRoomFull)

	r2, err := m.StartGame(r.Code, r.HostID)
	require.NoError(t, err)
	_, _, err = m.JoinRoom(r2.Code, "later", "#444")
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestRollEnforcesTurnOwnership(t *testing.T) {
	m, _ := newTestManager()
	r := startedRoom(t, m, 2)

	other := r.State.Players[1].ID
	_, err := m.Roll(r.Code, other)
	assert.ErrorIs(t, err, ErrNotYourTurn)

	_, err = m.Roll(r.Code, r.State.Players[0].ID)
	require.NoError(t, err)
}

func TestRollAutoPassesDeadRolls(t *testing.T) {
	m, rec := newTestManager()
	r := startedRoom(t, m, 2)

	// Play ten rolls; any dead roll must be auto-passed so the room
	// never stalls, and live rolls are played out normally.
	var err error
	for turns := 0; turns < 10; turns++ {
		cur := r.State.CurrentPlayer().ID
		r, err = m.Roll(r.Code, cur)
		require.NoError(t, err)
		if r.State.CanMove {
			mv := r.State.ValidMoves[0]
			r, err = m.Move(r.Code, cur, mv.TokenID, 0)
			require.NoError(t, err)
		}
		assert.True(t, r.State.CanRoll, "room must be ready for the next roll")
		assert.False(t, r.State.CanMove)
	}
	assert.Contains(t, rec.actions(), "dice_rolled")
}

func TestMoveBroadcastsEffectWithPrompt(t *testing.T) {
	m, rec := newTestManager()
	r := startedRoom(t, m, 2)

	// Park the red token one short of a known freeze tile and hand-craft
	// the rolled state so the landing is deterministic.
	state := r.State
	state.Players[0].Tokens[0].PathProgress = 9
	state.Players[0].Tokens[0].Position = game.TileForProgress(game.ColorRed, 9)
	state.DiceValue = 1
	state.CanRoll = false
	state.CanMove = true
	state.ValidMoves = []game.Move{{
		TokenID:        state.Players[0].Tokens[0].ID,
		TargetTileID:   game.MainTileID(10),
		TargetProgress: 10,
	}}
	r.State = state

	r2, err := m.Move(r.Code, state.Players[0].ID, state.ValidMoves[0].TokenID, 0)
	require.NoError(t, err)
	require.NotNil(t, r2.State.SpecialEffect)
	assert.Equal(t, game.EffectFreeze, r2.State.SpecialEffect.Type)

	var effectEvent *recordedEvent
	rec.mu.Lock()
	for i := range rec.events {
		if rec.events[i].Action == "effect_triggered" {
			effectEvent = &rec.events[i]
		}
	}
	rec.mu.Unlock()
	require.NotNil(t, effectEvent)
	payload, ok := effectEvent.Data.(gin.H)
	require.True(t, ok)
	assert.Contains(t, payload, "prompt")
}

func TestDismissEffectOwnership(t *testing.T) {
	m, _ := newTestManager()
	r := startedRoom(t, m, 2)

	ana := r.State.Players[0].ID
	bo := r.State.Players[1].ID
	r.State.SpecialEffect = &game.SpecialEffect{
		Type:     game.EffectFreeze,
		TileID:   game.MainTileID(10),
		PlayerID: ana,
	}

	_, err := m.DismissEffect(r.Code, bo)
	assert.ErrorIs(t, err, ErrNotYourEffect)

	r2, err := m.DismissEffect(r.Code, ana)
	require.NoError(t, err)
	assert.Nil(t, r2.State.SpecialEffect)
	assert.True(t, r2.State.IsFrozen(ana))
}

func TestRescueLiftsFreeze(t *testing.T) {
	m, rec := newTestManager()
	r := startedRoom(t, m, 2)

	ana := r.State.Players[0].ID
	r.State.FrozenPlayers = []string{ana}

	r2, err := m.Rescue(r.Code, ana)
	require.NoError(t, err)
	assert.False(t, r2.State.IsFrozen(ana))
	assert.Contains(t, rec.actions(), "player_rescued")
}

func TestWinFinishesRoom(t *testing.T) {
	m, rec := newTestManager()
	r := startedRoom(t, m, 2)

	state := r.State
	ana := state.Players[0].ID
	for i := 0; i < 3; i++ {
		state.Players[0].Tokens[i].PathProgress = game.FinishProgress
		state.Players[0].Tokens[i].Position = game.PositionFinished
	}
	state.Players[0].FinishedTokens = 3
	state.Players[0].Tokens[3].PathProgress = game.FinishProgress - 1
	state.Players[0].Tokens[3].Position = game.TileForProgress(game.ColorRed, game.FinishProgress-1)
	state.DiceValue = 1
	state.CanRoll = false
	state.CanMove = true
	state.ValidMoves = []game.Move{{
		TokenID:        state.Players[0].Tokens[3].ID,
		TargetTileID:   game.PositionFinished,
		TargetProgress: game.FinishProgress,
	}}
	r.State = state

	r2, err := m.Move(r.Code, ana, state.ValidMoves[0].TokenID, 0)
	require.NoError(t, err)
	assert.Equal(t, ana, r2.State.WinnerID)
	assert.Equal(t, StatusFinished, r2.Status)
	assert.Contains(t, rec.actions(), "game_over")

	_, err = m.Roll(r.Code, ana)
	assert.ErrorIs(t, err, game.ErrGameAlreadyWon)
}

func TestIntentsRejectedInLobby(t *testing.T) {
	m, _ := newTestManager()
	r := m.CreateRoom("host", "#e11", game.ModeFriends)

	_, err := m.Roll(r.Code, r.HostID)
	assert.ErrorIs(t, err, ErrNotStarted)
	_, err = m.Move(r.Code, r.HostID, "red-0", 0)
	assert.ErrorIs(t, err, ErrNotStarted)
	_, err = m.Pass(r.Code, r.HostID)
	assert.ErrorIs(t, err, ErrNotStarted)
}
