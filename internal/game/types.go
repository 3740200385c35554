package game

type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
)

// TurnColors is the fixed color table; seat N gets TurnColors[N].
var TurnColors = [4]Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

type GameMode string

const (
	ModeCouple  GameMode = "couple"
	ModeFriends GameMode = "friends"
)

type EffectType string

const (
	EffectHeat   EffectType = "heat"
	EffectBond   EffectType = "bond"
	EffectFreeze EffectType = "freeze"
)

const (
	MinPlayers      = 2
	MaxPlayers      = 4
	TokensPerPlayer = 4

	MainPathLength = 52
	SafePathLength = 6
	// FinishProgress is the exact pathProgress a token must reach to finish.
	FinishProgress = MainPathLength + SafePathLength

	DiceMin = 1
	DiceMax = 6
	// RollAgain grants the mover another turn and lets a home token enter.
	RollAgain = 6
)

const (
	PositionHome     = "home"
	PositionFinished = "finished"
)

type Token struct {
	ID           string `json:"id"`
	PlayerID     string `json:"playerId"`
	Color        Color  `json:"color"`
	Position     string `json:"position"`     // "home", a tile id, or "finished"
	PathProgress int    `json:"pathProgress"` // -1 while home, FinishProgress when finished
}

type Player struct {
	ID             string  `json:"id"`
	Nickname       string  `json:"nickname"`
	Color          Color   `json:"color"`
	AvatarColor    string  `json:"avatarColor"`
	Tokens         []Token `json:"tokens"`
	FinishedTokens int     `json:"finishedTokens"`
}

// Seat is the join-order player tuple NewGameState consumes.
type Seat struct {
	ID          string `json:"id"`
	Nickname    string `json:"nickname"`
	AvatarColor string `json:"avatarColor"`
}

type Move struct {
	TokenID         string `json:"tokenId"`
	TargetTileID    string `json:"targetTileId"`
	TargetProgress  int    `json:"targetProgress"`
	Captures        bool   `json:"captures"`
	CapturedTokenID string `json:"capturedTokenId,omitempty"`
}

type SpecialEffect struct {
	Type     EffectType `json:"type"`
	TileID   string     `json:"tileId"`
	PlayerID string     `json:"playerId"`
}

// GameState is the sole aggregate for one match. Every transition takes a
// state value and returns a fresh one; the input is never mutated.
type GameState struct {
	RoomID             string         `json:"roomId"`
	Players            []Player       `json:"players"`
	CurrentPlayerIndex int            `json:"currentPlayerIndex"`
	DiceValue          int            `json:"diceValue"` // 0 between move and next roll
	CanRoll            bool           `json:"canRoll"`
	CanMove            bool           `json:"canMove"`
	ValidMoves         []Move         `json:"validMoves"`
	SpecialEffect      *SpecialEffect `json:"specialEffect,omitempty"`
	WinnerID           string         `json:"winnerId,omitempty"`
	TurnNumber         int            `json:"turnNumber"`
	GameMode           GameMode       `json:"gameMode"`
	FrozenPlayers      []string       `json:"frozenPlayers"`
}

// CurrentPlayer returns the player whose turn it is.
func (s GameState) CurrentPlayer() Player {
	return s.Players[s.CurrentPlayerIndex]
}

// IsFrozen reports whether the player's next roll is forfeit.
func (s GameState) IsFrozen(playerID string) bool {
	for _, id := range s.FrozenPlayers {
		if id == playerID {
			return true
		}
	}
	return false
}

func (s GameState) clone() GameState {
	out := s
	out.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		cp := p
		cp.Tokens = append([]Token(nil), p.Tokens...)
		out.Players[i] = cp
	}
	out.ValidMoves = append([]Move(nil), s.ValidMoves...)
	out.FrozenPlayers = append([]string{}, s.FrozenPlayers...)
	if s.SpecialEffect != nil {
		fx := *s.SpecialEffect
		out.SpecialEffect = &fx
	}
	return out
}
