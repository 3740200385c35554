package game

import "errors"

// Engine errors are local validation failures. Transitions return them
// alongside the unchanged input state so a hosting layer can keep serving
// other rooms and tests can assert on rejection instead of inferring it.
var (
	ErrInvalidPlayerCount = errors.New("ludo: player count must be between 2 and 4")
	ErrNotRollPhase       = errors.New("ludo: not in roll phase")
	ErrNotMovePhase       = errors.New("ludo: not in move phase")
	ErrInvalidMoveIndex   = errors.New("ludo: move index out of range")
	ErrTokenMismatch      = errors.New("ludo: token does not match selected move")
	ErrGameAlreadyWon     = errors.New("ludo: game already won")
	ErrMovePending        = errors.New("ludo: cannot pass while a move is pending")

	// ErrNoLegalMoves is advisory: RollDice returns it together with the
	// rolled state when the roll yields nothing playable, so the caller
	// can show the dead roll and then advance the turn via PassTurn.
	ErrNoLegalMoves = errors.New("ludo: no legal moves for this roll")
)
