package http

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	Nickname    string `json:"nickname"`
	AvatarColor string `json:"avatarColor"`
	GameMode    string `json:"gameMode"` // "couple" or "friends"
}

// JoinRoomRequest represents the payload for /join-room.
type JoinRoomRequest struct {
	RoomCode    string `json:"roomCode"`
	Nickname    string `json:"nickname"`
	AvatarColor string `json:"avatarColor"`
}

// StartRequest represents the payload for /start.
type StartRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

// RollRequest represents the payload for /roll.
type RollRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

// MoveRequest represents the payload for /move.
type MoveRequest struct {
	RoomCode  string `json:"roomCode"`
	PlayerID  string `json:"playerId"`
	TokenID   string `json:"tokenId"`
	MoveIndex int    `json:"moveIndex"`
}

// DismissEffectRequest represents the payload for /dismiss-effect.
type DismissEffectRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

// RescueRequest represents the payload for /rescue.
type RescueRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"` // the frozen player being freed
}

// PassRequest represents the payload for /pass.
type PassRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}
