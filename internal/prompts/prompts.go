// Package prompts picks the themed text shown when a token lands on a
// special tile. The engine only reports the effect type; the flavor lives
// here, weighted so spicier prompts surface less often in friends mode.
package prompts

import (
	"errors"
	"math/rand"
	"time"

	"velvet-ludo/internal/game"
)

var ErrNoPrompts = errors.New("prompts: no prompts for effect type")

type Prompt struct {
	Text  string `json:"text"`
	Spice int    `json:"spice"` // 1 mild .. 3 bold
}

type Selector struct {
	r       *rand.Rand
	catalog map[game.EffectType][]Prompt
}

func NewSelector(seed int64) *Selector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Selector{
		r:       rand.New(rand.NewSource(seed)),
		catalog: defaultCatalog,
	}
}

// Pick draws a weighted-random prompt for the effect. Couple mode weights
// all spice levels evenly; friends mode favors milder prompts.
func (s *Selector) Pick(fx game.EffectType, mode game.GameMode) (Prompt, error) {
	pool := s.catalog[fx]
	if len(pool) == 0 {
		return Prompt{}, ErrNoPrompts
	}
	total := 0
	for _, p := range pool {
		total += weight(p, mode)
	}
	pick := s.r.Intn(total)
	for _, p := range pool {
		pick -= weight(p, mode)
		if pick < 0 {
			return p, nil
		}
	}
	return pool[len(pool)-1], nil
}

func weight(p Prompt, mode game.GameMode) int {
	if mode == game.ModeCouple {
		return 2
	}
	// friends: spice 1 -> 3, spice 2 -> 2, spice 3 -> 1
	w := 4 - p.Spice
	if w < 1 {
		w = 1
	}
	return w
}

var defaultCatalog = map[game.EffectType][]Prompt{
	game.EffectHeat: {
		{Text: "Describe your most daring date idea to the group.", Spice: 1},
		{Text: "Whisper something flirty to the player on your left.", Spice: 2},
		{Text: "Trade an item of clothing with another player, or drink.", Spice: 3},
		{Text: "Rate tonight's outfits out loud, worst first.", Spice: 2},
	},
	game.EffectBond: {
		{Text: "Pick a partner: you both move your next roll together.", Spice: 1},
		{Text: "Share one secret you have never told anyone here.", Spice: 2},
		{Text: "Swap seats with any player and toast to them.", Spice: 1},
		{Text: "Tell your partner the first thing you noticed about them.", Spice: 2},
	},
	game.EffectFreeze: {
		{Text: "Frozen! Hold perfectly still until someone rescues you.", Spice: 1},
		{Text: "On ice: sit out your next roll unless a partner frees you.", Spice: 1},
		{Text: "Cold shoulder: no talking until your rescue or your skip.", Spice: 2},
	},
}
