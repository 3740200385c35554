package game

import "fmt"

// NewGameState builds a fresh match state. Seats are taken in join order:
// seat N gets color TurnColors[N] and four home tokens. The first seat rolls
// first.
func NewGameState(roomID string, seats []Seat, mode GameMode) (GameState, error) {
	if len(seats) < MinPlayers || len(seats) > MaxPlayers {
		return GameState{}, ErrInvalidPlayerCount
	}
	players := make([]Player, len(seats))
	for i, seat := range seats {
		color := TurnColors[i]
		tokens := make([]Token, TokensPerPlayer)
		for t := range tokens {
			tokens[t] = Token{
				ID:           fmt.Sprintf("%s-%d", color, t),
				PlayerID:     seat.ID,
				Color:        color,
				Position:     PositionHome,
				PathProgress: -1,
			}
		}
		players[i] = Player{
			ID:          seat.ID,
			Nickname:    seat.Nickname,
			Color:       color,
			AvatarColor: seat.AvatarColor,
			Tokens:      tokens,
		}
	}
	return GameState{
		RoomID:             roomID,
		Players:            players,
		CurrentPlayerIndex: 0,
		CanRoll:            true,
		TurnNumber:         1,
		GameMode:           mode,
		FrozenPlayers:      []string{},
	}, nil
}

// RollDice performs the active player's roll.
//
// A frozen player does not roll at all: their freeze is lifted and the turn
// passes on, the skipped roll being the penalty. Otherwise the die is drawn
// and legal moves are enumerated; when none exist the rolled state is
// returned together with ErrNoLegalMoves so the caller can surface the dead
// roll and then call PassTurn.
func RollDice(s GameState, dice Dice) (GameState, error) {
	if s.WinnerID != "" {
		return s, ErrGameAlreadyWon
	}
	if !s.CanRoll {
		return s, ErrNotRollPhase
	}

	out := s.clone()
	cur := out.CurrentPlayer()
	if out.IsFrozen(cur.ID) {
		out.FrozenPlayers = removeID(out.FrozenPlayers, cur.ID)
		advanceTurn(&out)
		return out, nil
	}

	out.DiceValue = dice.Roll()
	out.ValidMoves = calculateValidMoves(out, out.CurrentPlayerIndex, out.DiceValue)
	out.CanRoll = false
	out.CanMove = len(out.ValidMoves) > 0
	if !out.CanMove {
		return out, ErrNoLegalMoves
	}
	return out, nil
}

// ApplyMove plays validMoves[moveIndex] for the active player. tokenID must
// match the selected move; the redundancy guards callers that race their own
// UI state.
func ApplyMove(s GameState, tokenID string, moveIndex int) (GameState, error) {
	if s.WinnerID != "" {
		return s, ErrGameAlreadyWon
	}
	if !s.CanMove {
		return s, ErrNotMovePhase
	}
	if moveIndex < 0 || moveIndex >= len(s.ValidMoves) {
		return s, ErrInvalidMoveIndex
	}
	mv := s.ValidMoves[moveIndex]
	if mv.TokenID != tokenID {
		return s, ErrTokenMismatch
	}

	out := s.clone()
	cur := &out.Players[out.CurrentPlayerIndex]

	for i := range cur.Tokens {
		if cur.Tokens[i].ID == mv.TokenID {
			cur.Tokens[i].Position = mv.TargetTileID
			cur.Tokens[i].PathProgress = mv.TargetProgress
			break
		}
	}

	if mv.Captures {
		sendHome(&out, mv.CapturedTokenID)
	}

	if mv.TargetTileID == PositionFinished {
		cur.FinishedTokens++
	}

	out.SpecialEffect = nil
	if fx, ok := SpecialTileAt(mv.TargetTileID); ok {
		out.SpecialEffect = &SpecialEffect{
			Type:     fx,
			TileID:   mv.TargetTileID,
			PlayerID: cur.ID,
		}
	}

	if cur.FinishedTokens == TokensPerPlayer {
		out.WinnerID = cur.ID
	}

	if out.DiceValue == RollAgain && out.WinnerID == "" {
		// Rolled a six: same player goes again, same turn number.
		resetRollState(&out)
	} else {
		advanceTurn(&out)
	}
	if out.WinnerID != "" {
		out.CanRoll = false
	}
	return out, nil
}

// ClearSpecialEffect dismisses the pending special-tile prompt. Freeze is
// deliberately two-phase: the penalty lands here, on dismissal, so the UI
// can show the tile's prompt before it bites. Heat and bond are narrative
// hooks only. Clearing with nothing pending is a no-op.
func ClearSpecialEffect(s GameState) (GameState, error) {
	if s.SpecialEffect == nil {
		return s, nil
	}
	out := s.clone()
	if out.SpecialEffect.Type == EffectFreeze && !out.IsFrozen(out.SpecialEffect.PlayerID) {
		out.FrozenPlayers = append(out.FrozenPlayers, out.SpecialEffect.PlayerID)
	}
	out.SpecialEffect = nil
	return out, nil
}

// RescuePlayer lifts a freeze unconditionally. It is the engine half of the
// bond-tile cooperative action; who may invoke it is hosting-layer policy.
// Rescuing an unfrozen player is a no-op.
func RescuePlayer(s GameState, playerID string) GameState {
	if !s.IsFrozen(playerID) {
		return s
	}
	out := s.clone()
	out.FrozenPlayers = removeID(out.FrozenPlayers, playerID)
	return out
}

// PassTurn advances the turn without a move. It exists for the roll that
// yields no legal moves (see ErrNoLegalMoves) and for a host force-advancing
// a stalled room; it is rejected while a move is still pending.
func PassTurn(s GameState) (GameState, error) {
	if s.WinnerID != "" {
		return s, ErrGameAlreadyWon
	}
	if s.CanMove {
		return s, ErrMovePending
	}
	out := s.clone()
	advanceTurn(&out)
	return out, nil
}

func advanceTurn(s *GameState) {
	s.CurrentPlayerIndex = (s.CurrentPlayerIndex + 1) % len(s.Players)
	s.TurnNumber++
	resetRollState(s)
}

func resetRollState(s *GameState) {
	s.DiceValue = 0
	s.CanRoll = true
	s.CanMove = false
	s.ValidMoves = nil
}

// sendHome returns a captured token to its owner's yard, whichever player
// owns it.
func sendHome(s *GameState, tokenID string) {
	for i := range s.Players {
		for t := range s.Players[i].Tokens {
			if s.Players[i].Tokens[t].ID == tokenID {
				s.Players[i].Tokens[t].Position = PositionHome
				s.Players[i].Tokens[t].PathProgress = -1
				return
			}
		}
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
