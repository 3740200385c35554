package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velvet-ludo/internal/game"
	"velvet-ludo/internal/room"
)

// @Summary Create new room
// @Description Create a new room with the caller as host
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Host info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.Nickname == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nickname required"})
			return
		}
		mode := game.GameMode(req.GameMode)
		if mode != game.ModeCouple && mode != game.ModeFriends {
			mode = game.ModeFriends
		}
		rx := rm.CreateRoom(req.Nickname, req.AvatarColor, mode)
		c.JSON(http.StatusOK, gin.H{"roomCode": rx.Code, "room": rx})
	}
}

// @Summary Join an existing room
// @Description Add a player to a lobby; join order fixes turn order and color
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.Nickname == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and nickname required"})
			return
		}
		rx, seat, err := rm.JoinRoom(req.RoomCode, req.Nickname, req.AvatarColor)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx, "playerId": seat.ID})
	}
}

// @Summary Start the game
// @Description Host starts the match; builds the initial board state
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.StartRequest true "Room info"
// @Success 200 {object} map[string]interface{}
// @Router /start [post]
func StartHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, err := rm.StartGame(req.RoomCode, req.PlayerID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx, "state": rx.State})
	}
}

// @Summary Get room state
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx, "state": rx.State})
	}
}

// @Summary Roll the dice
// @Description Current player rolls; dead rolls are auto-passed
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.RollRequest true "Roll intent"
// @Success 200 {object} map[string]interface{}
// @Router /roll [post]
func RollHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RollRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, err := rm.Roll(req.RoomCode, req.PlayerID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"state":      rx.State,
			"diceValue":  rx.State.DiceValue,
			"validMoves": rx.State.ValidMoves,
		})
	}
}

// @Summary Apply a move
// @Description Play one of the valid moves computed by the last roll
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move intent"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, err := rm.Move(req.RoomCode, req.PlayerID, req.TokenID, req.MoveIndex)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"state":         rx.State,
			"specialEffect": rx.State.SpecialEffect,
			"winnerId":      rx.State.WinnerID,
		})
	}
}

// @Summary Dismiss the pending special effect
// @Description Resolve the special-tile prompt; a freeze takes hold here
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.DismissEffectRequest true "Dismiss intent"
// @Success 200 {object} map[string]interface{}
// @Router /dismiss-effect [post]
func DismissEffectHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DismissEffectRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, err := rm.DismissEffect(req.RoomCode, req.PlayerID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": rx.State})
	}
}

// @Summary Rescue a frozen player
// @Description Partner action lifting a freeze before the skipped roll
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.RescueRequest true "Rescue intent"
// @Success 200 {object} map[string]interface{}
// @Router /rescue [post]
func RescueHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RescueRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, err := rm.Rescue(req.RoomCode, req.PlayerID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": rx.State})
	}
}

// @Summary Pass the turn
// @Description Current player or host advances a turn with no playable move
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.PassRequest true "Pass intent"
// @Success 200 {object} map[string]interface{}
// @Router /pass [post]
func PassHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PassRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, err := rm.Pass(req.RoomCode, req.PlayerID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": rx.State})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrNotHost), errors.Is(err, room.ErrNotYourTurn),
		errors.Is(err, room.ErrNotYourEffect):
		return http.StatusForbidden
	case errors.Is(err, room.ErrRoomFull), errors.Is(err, room.ErrAlreadyStarted),
		errors.Is(err, room.ErrNotStarted), errors.Is(err, room.ErrNotEnoughPlayers):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
