package ws

import "velvet-ludo/internal/room"

type RoomManager interface {
	Get(code string) (*room.Room, bool)
	Roll(code, playerID string) (*room.Room, error)
	Move(code, playerID, tokenID string, moveIndex int) (*room.Room, error)
	DismissEffect(code, playerID string) (*room.Room, error)
	Rescue(code, playerID string) (*room.Room, error)
	Pass(code, playerID string) (*room.Room, error)
}
