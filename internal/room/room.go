package room

import (
	"time"

	"velvet-ludo/internal/game"
)

const (
	StatusLobby    = "lobby"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

type Room struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	HostID    string         `json:"hostId"`
	Status    string         `json:"status"` // "lobby", "playing" or "finished"
	GameMode  game.GameMode  `json:"gameMode"`
	Seats     []game.Seat    `json:"seats"`
	State     game.GameState `json:"state"`
	CreatedAt time.Time      `json:"createdAt"`

	// Dice is fixed at start so a match can be replayed from its seed.
	Dice game.Dice `json:"-"`
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
}
