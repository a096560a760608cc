package engine

import (
	"sync"
)

// Jail strategies. The number is how many turns a token sits in jail
// before it is let out regardless of what it rolls.
const (
	ShortJailStay = 1 // pay up immediately, out on the next turn
	LongJailStay  = 3 // sit out the maximum three turns
)

// StrategyName labels a jail policy for reports.
func StrategyName(leaveJail int) string {
	if leaveJail == ShortJailStay {
		return "short jail stay"
	}
	return "long jail stay"
}

// Simulation walks one token around the board one roll at a time and
// accumulates statistics. It is not safe for concurrent use; run one
// Simulation per goroutine with its own Roller and Stats.
type Simulation struct {
	leaveJail int
	roller    Roller
	stats     *Stats

	square   int // 0-39, or InJail
	inJail   int // turns served so far, 0 when free
	doubles  int // consecutive doubles rolled, 0-2
	lastRoll int // previous turn's dice sum
}

// New readies a simulation on Go with zeroed statistics. leaveJail must be
// ShortJailStay or LongJailStay.
func New(leaveJail int, roller Roller) *Simulation {
	return &Simulation{
		leaveJail: leaveJail,
		roller:    roller,
		stats:     &Stats{},
	}
}

// Stats exposes the accumulator. Read it only after the run is done.
func (s *Simulation) Stats() *Stats {
	return s.stats
}

// PlayTurn rolls once and plays out every consequence: jail service,
// doubles, the move, and whatever square the token lands on.
func (s *Simulation) PlayTurn() {
	st := s.stats
	st.Rolls++

	// Bookkeeping for the square this turn starts from. Nothing is kept
	// for the jail bucket. A turn starting on a utility means last turn's
	// roll landed us here, so that roll feeds the utility average.
	if s.square != InJail {
		st.TurnsFrom[s.square]++
		if s.doubles == 2 {
			st.TurnsFromDoubles[s.square]++
		}
		if s.square == ElectricCompany {
			st.UtilityVisits[UtilElectric]++
			st.UtilityRollSum[UtilElectric] += int64(s.lastRoll)
		}
		if s.square == WaterWorks {
			st.UtilityVisits[UtilWater]++
			st.UtilityRollSum[UtilWater] += int64(s.lastRoll)
		}
	}

	// Served the full stay: walk out to Just Visiting before rolling.
	// The roll below still moves the freed token.
	if s.inJail > 0 && s.inJail == s.leaveJail {
		s.square = JustVisiting
		s.inJail = 0
		s.doubles = 0
	}

	d1, d2 := s.roller.RollDice()
	s.lastRoll = d1 + d2

	// Still locked up: only a double gets the token out early, and the
	// token then moves by that roll. Anything else is another turn spent
	// in the bucket.
	if s.inJail > 0 {
		if d1 != d2 {
			s.inJail++
			st.Squares[InJail]++
			return
		}
		s.square = JustVisiting
		s.inJail = 0
		s.doubles = 0
	}

	// Three doubles in a row goes straight to jail, no move.
	if d1 == d2 {
		if s.doubles == 2 {
			s.square = InJail
			st.Squares[InJail]++
			s.doubles = 0
			s.inJail = 1
			return
		}
		s.doubles++
	} else {
		s.doubles = 0
	}

	// The move itself, wrapping past Go.
	next := s.square + s.lastRoll
	if next >= BoardSquares {
		next -= BoardSquares
		st.PassedGo++
	}
	s.square = next
	st.Squares[next]++
	switch next {
	case ReadingRailroad:
		st.RailLandings[RailReading]++
	case PennsylvaniaRailroad:
		st.RailLandings[RailPennsylvania]++
	case BAndORailroad:
		st.RailLandings[RailBAndO]++
	}

	// Some squares force more movement. Separate ifs, not else-ifs: a
	// Chance card can drop the token on the last Community Chest square,
	// which still draws a chest card this same turn.
	if KindOf(s.square) == SpaceGoToJail {
		s.relocate(InJail)
		s.inJail = 1
	}
	if KindOf(s.square) == SpaceChance {
		s.drawChance()
	}
	if KindOf(s.square) == SpaceCommunityChest {
		s.drawCommunityChest()
	}
}

// relocate moves the token off the square it just landed on and keeps the
// occupancy counts balanced: one decrement, one increment, never apart.
func (s *Simulation) relocate(to int) {
	s.stats.Squares[s.square]--
	s.square = to
	s.stats.Squares[to]++
}

// Run plays rolls trials under one jail policy and returns the filled
// accumulator.
func Run(leaveJail int, rolls int64, roller Roller) *Stats {
	return RunProgress(leaveJail, rolls, roller, 0, nil)
}

// RunProgress is Run with a callback every `every` trials, for live
// progress feeds. every <= 0 or a nil callback disables it.
func RunProgress(leaveJail int, rolls int64, roller Roller, every int64, progress func(done, total int64)) *Stats {
	s := New(leaveJail, roller)
	for i := int64(0); i < rolls; i++ {
		s.PlayTurn()
		if every > 0 && progress != nil && (i+1)%every == 0 {
			progress(i+1, rolls)
		}
	}
	return s.stats
}

// RunPolicies runs both jail strategies as two independent simulations in
// parallel, each with its own generator, and reports on both. The progress
// callback, when set, is invoked from both goroutines.
func RunPolicies(rolls int64, seed int64, every int64, progress func(leaveJail int, done, total int64)) (short Report, long Report) {
	var wg sync.WaitGroup
	wg.Add(2)
	for i, leaveJail := range [2]int{ShortJailStay, LongJailStay} {
		go func(i, leaveJail int) {
			defer wg.Done()
			var fn func(done, total int64)
			if progress != nil {
				fn = func(done, total int64) { progress(leaveJail, done, total) }
			}
			st := RunProgress(leaveJail, rolls, NewRoller(seed+int64(i)*1337), every, fn)
			if leaveJail == ShortJailStay {
				short = BuildReport(leaveJail, st)
			} else {
				long = BuildReport(leaveJail, st)
			}
		}(i, leaveJail)
	}
	wg.Wait()
	return short, long
}
