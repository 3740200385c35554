package game

import (
	"math/rand"
	"time"
)

// Dice is the engine's only source of randomness. RollDice takes one so
// matches can be replayed deterministically and tests can script rolls.
type Dice interface {
	Roll() int
}

type randDice struct {
	r *rand.Rand
}

// NewDice returns a uniform six-sided die. A zero seed seeds from the clock.
func NewDice(seed int64) Dice {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randDice{r: rand.New(rand.NewSource(seed))}
}

func (d *randDice) Roll() int {
	return DiceMin + d.r.Intn(DiceMax-DiceMin+1)
}
