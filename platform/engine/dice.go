package engine

import (
	"math/rand"
)

// Roller produces every random event a simulation consumes. Tests swap in
// scripted implementations to replay exact turns.
type Roller interface {
	RollDice() (int, int)
	DrawCard() int
}

// DiceRoller is the production Roller. Each one owns its own generator so
// two runs can roll concurrently without sharing state.
type DiceRoller struct {
	rng *rand.Rand
}

func NewRoller(seed int64) *DiceRoller {
	return &DiceRoller{rng: rand.New(rand.NewSource(seed))}
}

// RollDice returns two independent dice in [1,6].
func (d *DiceRoller) RollDice() (int, int) {
	return d.rng.Intn(6) + 1, d.rng.Intn(6) + 1
}

// DrawCard picks one of the 16 cards of a deck. Decks never run down;
// every draw is from the full deck.
func (d *DiceRoller) DrawCard() int {
	return d.rng.Intn(DeckSize)
}
