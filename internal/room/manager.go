package room

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"velvet-ludo/internal/config"
	"velvet-ludo/internal/game"
	"velvet-ludo/internal/prompts"
)

// Manager owns room lifecycle and funnels every game intent through one
// lock, so two racing intents never apply against a stale state. The engine
// itself is pure and lock-free.
type Manager struct {
	mu      sync.Mutex
	store   Store
	cfg     config.Config
	bc      Broadcaster
	prompts *prompts.Selector
}

func NewManager(s Store, cfg config.Config, sel *prompts.Selector) *Manager {
	return &Manager{store: s, cfg: cfg, prompts: sel}
}

// SetBroadcaster wires the hub in after construction; hub and manager
// reference each other.
func (m *Manager) SetBroadcaster(bc Broadcaster) {
	m.bc = bc
}

func (m *Manager) broadcast(code, action string, data interface{}) {
	if m.bc == nil {
		return
	}
	m.bc.Broadcast(code, action, data)
}

func (m *Manager) CreateRoom(nickname, avatarColor string, mode game.GameMode) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	host := game.Seat{ID: uuid.NewString(), Nickname: nickname, AvatarColor: avatarColor}
	r := &Room{
		ID:        uuid.NewString(),
		Code:      randCode(m.cfg.RoomCodeLength),
		HostID:    host.ID,
		Status:    StatusLobby,
		GameMode:  mode,
		Seats:     []game.Seat{host},
		CreatedAt: time.Now(),
	}
	m.store.SaveRoom(r)
	return r
}

func (m *Manager) JoinRoom(code, nickname, avatarColor string) (*Room, game.Seat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, game.Seat{}, ErrRoomNotFound
	}
	if r.Status != StatusLobby {
		return nil, game.Seat{}, ErrAlreadyStarted
	}
	if len(r.Seats) >= game.MaxPlayers {
		return nil, game.Seat{}, ErrRoomFull
	}
	seat := game.Seat{ID: uuid.NewString(), Nickname: nickname, AvatarColor: avatarColor}
	r.Seats = append(r.Seats, seat)
	m.store.SaveRoom(r)
	m.broadcast(code, "room_updated", gin.H{"room": r})
	return r, seat, nil
}

func (m *Manager) StartGame(code, playerID string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	if r.Status != StatusLobby {
		return nil, ErrAlreadyStarted
	}
	if playerID != r.HostID {
		return nil, ErrNotHost
	}
	if len(r.Seats) < game.MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	state, err := game.NewGameState(r.Code, r.Seats, r.GameMode)
	if err != nil {
		return nil, err
	}
	r.State = state
	r.Status = StatusPlaying
	r.Dice = game.NewDice(m.cfg.DiceSeed)
	m.store.SaveRoom(r)
	m.broadcast(code, "game_started", gin.H{"state": r.State})
	return r, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// Roll performs the current player's roll. A roll with no legal moves is
// broadcast and then auto-passed, so a room can never stall on a dead roll.
func (m *Manager) Roll(code, playerID string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.playingRoom(code)
	if err != nil {
		return nil, err
	}
	if r.State.CurrentPlayer().ID != playerID {
		return nil, ErrNotYourTurn
	}

	wasFrozen := r.State.IsFrozen(playerID)
	state, err := game.RollDice(r.State, r.Dice)
	switch {
	case err == nil:
		r.State = state
		m.store.SaveRoom(r)
		if wasFrozen {
			m.broadcast(code, "roll_skipped", gin.H{
				"playerId": playerID,
				"state":    r.State,
			})
			return r, nil
		}
		m.broadcast(code, "dice_rolled", gin.H{
			"playerId":   playerID,
			"diceValue":  state.DiceValue,
			"validMoves": state.ValidMoves,
			"state":      r.State,
		})
		return r, nil
	case errors.Is(err, game.ErrNoLegalMoves):
		r.State = state
		m.broadcast(code, "dice_rolled", gin.H{
			"playerId":   playerID,
			"diceValue":  state.DiceValue,
			"validMoves": []game.Move{},
			"state":      r.State,
		})
		passed, perr := game.PassTurn(r.State)
		if perr != nil {
			log.Printf("room %s: pass after dead roll failed: %v", code, perr)
			m.store.SaveRoom(r)
			return r, nil
		}
		r.State = passed
		m.store.SaveRoom(r)
		m.broadcast(code, "turn_passed", gin.H{"state": r.State})
		return r, nil
	default:
		return nil, err
	}
}

func (m *Manager) Move(code, playerID, tokenID string, moveIndex int) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.playingRoom(code)
	if err != nil {
		return nil, err
	}
	if r.State.CurrentPlayer().ID != playerID {
		return nil, ErrNotYourTurn
	}

	state, err := game.ApplyMove(r.State, tokenID, moveIndex)
	if err != nil {
		return nil, err
	}
	r.State = state
	m.store.SaveRoom(r)
	m.broadcast(code, "move_applied", gin.H{
		"playerId": playerID,
		"tokenId":  tokenID,
		"state":    r.State,
	})

	if fx := state.SpecialEffect; fx != nil {
		payload := gin.H{"effect": fx}
		if p, err := m.prompts.Pick(fx.Type, r.GameMode); err == nil {
			payload["prompt"] = p
		} else {
			log.Printf("room %s: no prompt for effect %s: %v", code, fx.Type, err)
		}
		m.broadcast(code, "effect_triggered", payload)
	}

	if state.WinnerID != "" {
		r.Status = StatusFinished
		m.store.SaveRoom(r)
		m.broadcast(code, "game_over", gin.H{
			"winnerId": state.WinnerID,
			"state":    r.State,
		})
	}
	return r, nil
}

// DismissEffect resolves the pending special-tile prompt. Only the player
// the effect targets may dismiss it; a freeze takes hold here.
func (m *Manager) DismissEffect(code, playerID string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.playingRoom(code)
	if err != nil {
		return nil, err
	}
	if fx := r.State.SpecialEffect; fx != nil && fx.PlayerID != playerID {
		return nil, ErrNotYourEffect
	}
	state, err := game.ClearSpecialEffect(r.State)
	if err != nil {
		return nil, err
	}
	r.State = state
	m.store.SaveRoom(r)
	m.broadcast(code, "effect_cleared", gin.H{
		"playerId":      playerID,
		"frozenPlayers": state.FrozenPlayers,
		"state":         r.State,
	})
	return r, nil
}

// Rescue frees a frozen player, the bond-tile partner action.
func (m *Manager) Rescue(code, rescuedPlayerID string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.playingRoom(code)
	if err != nil {
		return nil, err
	}
	r.State = game.RescuePlayer(r.State, rescuedPlayerID)
	m.store.SaveRoom(r)
	m.broadcast(code, "player_rescued", gin.H{
		"playerId":      rescuedPlayerID,
		"frozenPlayers": r.State.FrozenPlayers,
		"state":         r.State,
	})
	return r, nil
}

// Pass force-advances the turn: the current player giving up a dead roll, or
// the host unsticking a room.
func (m *Manager) Pass(code, playerID string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.playingRoom(code)
	if err != nil {
		return nil, err
	}
	if playerID != r.HostID && r.State.CurrentPlayer().ID != playerID {
		return nil, ErrNotYourTurn
	}
	state, err := game.PassTurn(r.State)
	if err != nil {
		return nil, err
	}
	r.State = state
	m.store.SaveRoom(r)
	m.broadcast(code, "turn_passed", gin.H{"state": r.State})
	return r, nil
}

func (m *Manager) playingRoom(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	if r.Status == StatusLobby {
		return nil, ErrNotStarted
	}
	if r.Status == StatusFinished {
		return nil, game.ErrGameAlreadyWon
	}
	return r, nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
