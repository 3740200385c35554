package game

// calculateValidMoves enumerates every legal move for the player at the
// given seat with the rolled dice value.
//
// Home tokens may only enter on a six, landing on their color's start tile
// at progress 0. Finished tokens never move. On-board tokens advance by the
// dice value and are skipped if that would overshoot FinishProgress; a token
// must land exactly on or before the finish.
func calculateValidMoves(s GameState, playerIdx, dice int) []Move {
	p := s.Players[playerIdx]
	var moves []Move
	for _, tok := range p.Tokens {
		switch {
		case tok.Position == PositionFinished:
			continue
		case tok.Position == PositionHome:
			if dice != RollAgain {
				continue
			}
			mv := Move{
				TokenID:        tok.ID,
				TargetTileID:   MainTileID(StartIndex[p.Color]),
				TargetProgress: 0,
			}
			mv.CapturedTokenID, mv.Captures = captureTarget(s, p.ID, mv.TargetTileID)
			moves = append(moves, mv)
		default:
			next := tok.PathProgress + dice
			if next > FinishProgress {
				continue
			}
			mv := Move{
				TokenID:        tok.ID,
				TargetTileID:   TileForProgress(p.Color, next),
				TargetProgress: next,
			}
			mv.CapturedTokenID, mv.Captures = captureTarget(s, p.ID, mv.TargetTileID)
			moves = append(moves, mv)
		}
	}
	return moves
}

// captureTarget reports the first opponent token sitting on the target tile,
// if landing there would capture it. Only shared main-path tiles that are
// not start tiles are capturable; safe lanes, "home" and "finished" never
// are. Single occupancy outside safe zones is maintained by this very rule,
// so at most one occupant can match.
func captureTarget(s GameState, moverID, tileID string) (string, bool) {
	if tileID == PositionHome || tileID == PositionFinished {
		return "", false
	}
	if IsStartTile(tileID) {
		return "", false
	}
	if !isMainTile(tileID) {
		return "", false
	}
	for _, p := range s.Players {
		if p.ID == moverID {
			continue
		}
		for _, tok := range p.Tokens {
			if tok.Position == tileID {
				return tok.ID, true
			}
		}
	}
	return "", false
}

func isMainTile(tileID string) bool {
	return len(tileID) > 5 && tileID[:5] == "tile-"
}
