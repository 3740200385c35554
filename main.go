package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"velvet-ludo/internal/game"
)

// Local pass-and-play harness: one shared screen, players take turns on the
// same keyboard. The online server lives under cmd/server.
func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("How many players (2-4)? ")
	n := readInt(reader, 2)
	if n < game.MinPlayers {
		n = game.MinPlayers
	}
	if n > game.MaxPlayers {
		n = game.MaxPlayers
	}

	seats := make([]game.Seat, n)
	for i := range seats {
		fmt.Printf("Player %d nickname: ", i+1)
		name, _ := reader.ReadString('\n')
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		seats[i] = game.Seat{ID: fmt.Sprintf("local-%d", i), Nickname: name}
	}

	state, err := game.NewGameState("local", seats, game.ModeFriends)
	if err != nil {
		fmt.Println("could not start game:", err)
		os.Exit(1)
	}
	dice := game.NewDice(time.Now().UnixNano())

	for state.WinnerID == "" {
		cur := state.CurrentPlayer()
		fmt.Printf("\n--- Turn %d: %s (%s) ---\n", state.TurnNumber, cur.Nickname, cur.Color)
		printTokens(state)

		if state.IsFrozen(cur.ID) {
			fmt.Printf("%s is frozen and loses this roll. Press enter.\n", cur.Nickname)
			reader.ReadString('\n')
			state, _ = game.RollDice(state, dice)
			continue
		}

		fmt.Print("Press enter to roll...")
		reader.ReadString('\n')
		next, err := game.RollDice(state, dice)
		if err == game.ErrNoLegalMoves {
			fmt.Printf("Rolled %d: no legal moves, turn passes.\n", next.DiceValue)
			state, _ = game.PassTurn(next)
			continue
		}
		if err != nil {
			fmt.Println("roll rejected:", err)
			continue
		}
		state = next

		fmt.Printf("Rolled %d. Moves:\n", state.DiceValue)
		for i, mv := range state.ValidMoves {
			suffix := ""
			if mv.Captures {
				suffix = " (capture!)"
			}
			fmt.Printf("  [%d] %s -> %s%s\n", i, mv.TokenID, mv.TargetTileID, suffix)
		}
		fmt.Print("Pick a move: ")
		idx := readInt(reader, 0)
		if idx < 0 || idx >= len(state.ValidMoves) {
			idx = 0
		}
		state, err = game.ApplyMove(state, state.ValidMoves[idx].TokenID, idx)
		if err != nil {
			fmt.Println("move rejected:", err)
			continue
		}

		if fx := state.SpecialEffect; fx != nil {
			fmt.Printf("Landed on a %s tile (%s)! Press enter once resolved.\n", fx.Type, fx.TileID)
			reader.ReadString('\n')
			state, _ = game.ClearSpecialEffect(state)
			if fx.Type == game.EffectFreeze {
				fmt.Printf("%s is now frozen. Another player may type 'rescue' on their turn... or not.\n", playerName(state, fx.PlayerID))
			}
		}
	}

	fmt.Printf("\n%s wins!\n", playerName(state, state.WinnerID))
}

func printTokens(s game.GameState) {
	for _, p := range s.Players {
		frozen := ""
		if s.IsFrozen(p.ID) {
			frozen = " [frozen]"
		}
		fmt.Printf("%-8s (%s, %d home)%s:", p.Nickname, p.Color, homeCount(p), frozen)
		for _, tok := range p.Tokens {
			fmt.Printf(" %s@%s", tok.ID, tok.Position)
		}
		fmt.Println()
	}
}

func homeCount(p game.Player) int {
	n := 0
	for _, tok := range p.Tokens {
		if tok.Position == game.PositionHome {
			n++
		}
	}
	return n
}

func playerName(s game.GameState, playerID string) string {
	for _, p := range s.Players {
		if p.ID == playerID {
			return p.Nickname
		}
	}
	return playerID
}

func readInt(reader *bufio.Reader, def int) int {
	line, _ := reader.ReadString('\n')
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return def
	}
	return v
}
