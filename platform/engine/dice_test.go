package engine

import "testing"

func TestRollDiceRange(t *testing.T) {
	r := NewRoller(5)
	var seen [2][7]int
	for i := 0; i < 10000; i++ {
		d1, d2 := r.RollDice()
		if d1 < 1 || d1 > 6 || d2 < 1 || d2 > 6 {
			t.Fatalf("roll %d: dice %d and %d out of range", i, d1, d2)
		}
		seen[0][d1]++
		seen[1][d2]++
	}
	for die := 0; die < 2; die++ {
		for face := 1; face <= 6; face++ {
			if seen[die][face] == 0 {
				t.Fatalf("die %d never rolled a %d", die+1, face)
			}
		}
	}
}

func TestRollerDeterminism(t *testing.T) {
	a, b := NewRoller(42), NewRoller(42)
	for i := 0; i < 100; i++ {
		a1, a2 := a.RollDice()
		b1, b2 := b.RollDice()
		if a1 != b1 || a2 != b2 {
			t.Fatalf("same seed diverged on roll %d: (%d,%d) vs (%d,%d)", i, a1, a2, b1, b2)
		}
		if ac, bc := a.DrawCard(), b.DrawCard(); ac != bc {
			t.Fatalf("same seed diverged on card %d: %d vs %d", i, ac, bc)
		}
	}
}

// TestDrawCardUniform draws a million cards and checks every deck slot
// comes up within two percent of its fair share.
func TestDrawCardUniform(t *testing.T) {
	r := NewRoller(9)
	const draws = 1000000
	var counts [DeckSize]int
	for i := 0; i < draws; i++ {
		c := r.DrawCard()
		if c < 0 || c >= DeckSize {
			t.Fatalf("draw %d: card %d out of range", i, c)
		}
		counts[c]++
	}
	want := draws / DeckSize
	lo, hi := want*98/100, want*102/100
	for card, n := range counts {
		if n < lo || n > hi {
			t.Fatalf("card %d drawn %d times, want within [%d,%d]", card, n, lo, hi)
		}
	}
}
