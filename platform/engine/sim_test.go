package engine

import (
	"sync/atomic"
	"testing"
)

// scriptRoller replays a fixed sequence of dice rolls and card draws so a
// test can walk the token through an exact scenario.
type scriptRoller struct {
	t     *testing.T
	rolls [][2]int
	cards []int
	ri    int
	ci    int
}

func (r *scriptRoller) RollDice() (int, int) {
	if r.ri >= len(r.rolls) {
		r.t.Fatalf("script ran out of rolls after %d", r.ri)
	}
	d := r.rolls[r.ri]
	r.ri++
	return d[0], d[1]
}

func (r *scriptRoller) DrawCard() int {
	if r.ci >= len(r.cards) {
		r.t.Fatalf("script ran out of cards after %d", r.ci)
	}
	c := r.cards[r.ci]
	r.ci++
	return c
}

func sumSquares(st *Stats) int64 {
	var sum int64
	for _, c := range st.Squares {
		sum += c
	}
	return sum
}

// TestOccupancySumsToRolls checks that every trial lands in exactly one
// bucket, under both jail strategies.
func TestOccupancySumsToRolls(t *testing.T) {
	for _, leaveJail := range []int{ShortJailStay, LongJailStay} {
		const rolls = 50000
		st := Run(leaveJail, rolls, NewRoller(1))
		if st.Rolls != rolls {
			t.Fatalf("leaveJail=%d: recorded %d rolls, want %d", leaveJail, st.Rolls, rolls)
		}
		if sum := sumSquares(st); sum != rolls {
			t.Fatalf("leaveJail=%d: occupancy sums to %d, want %d", leaveJail, sum, rolls)
		}
	}
}

// TestNeverRestsOnGoToJail checks that square 30 is always left in the
// same turn, and that no bookkeeping is kept for the jail bucket.
func TestNeverRestsOnGoToJail(t *testing.T) {
	for _, leaveJail := range []int{ShortJailStay, LongJailStay} {
		st := Run(leaveJail, 50000, NewRoller(2))
		if st.Squares[GoToJailSquare] != 0 {
			t.Fatalf("leaveJail=%d: %d trials ended on Go To Jail", leaveJail, st.Squares[GoToJailSquare])
		}
		if st.TurnsFrom[InJail] != 0 || st.TurnsFromDoubles[InJail] != 0 {
			t.Fatalf("leaveJail=%d: turn-start counts recorded for the jail bucket", leaveJail)
		}
	}
}

// TestLongStayFillsJail checks the long strategy keeps tokens in the
// bucket far more often than paying out at once.
func TestLongStayFillsJail(t *testing.T) {
	const rolls = 100000
	short := Run(ShortJailStay, rolls, NewRoller(3))
	long := Run(LongJailStay, rolls, NewRoller(4))
	if long.Squares[InJail] <= short.Squares[InJail] {
		t.Fatalf("long stay jail count %d not above short stay %d", long.Squares[InJail], short.Squares[InJail])
	}
}

// TestFirstTurnStartsClean checks trial 1 behaves as if no rolls came
// before it: no doubles history, no utility carryover.
func TestFirstTurnStartsClean(t *testing.T) {
	s := New(ShortJailStay, &scriptRoller{t: t, rolls: [][2]int{{1, 2}}})
	s.PlayTurn()

	st := s.Stats()
	if st.TurnsFrom[GoSquare] != 1 {
		t.Fatalf("turn-start count for Go = %d, want 1", st.TurnsFrom[GoSquare])
	}
	if st.TurnsFromDoubles[GoSquare] != 0 {
		t.Fatalf("doubles history recorded on a clean first turn")
	}
	if st.UtilityVisits[UtilElectric] != 0 || st.UtilityVisits[UtilWater] != 0 {
		t.Fatalf("utility visit recorded on a clean first turn")
	}
	if st.Squares[3] != 1 {
		t.Fatalf("token not on square 3 after rolling 3 from Go")
	}
}

// TestThreeDoublesGoToJail walks three consecutive doubles and checks the
// token is jailed on the third with no move.
func TestThreeDoublesGoToJail(t *testing.T) {
	roller := &scriptRoller{t: t, rolls: [][2]int{{2, 2}, {5, 5}, {1, 1}}}
	s := New(LongJailStay, roller)
	for i := 0; i < 3; i++ {
		s.PlayTurn()
	}

	st := s.Stats()
	if st.Squares[4] != 1 || st.Squares[14] != 1 {
		t.Fatalf("first two doubles did not move normally: %v %v", st.Squares[4], st.Squares[14])
	}
	if st.TurnsFromDoubles[14] != 1 {
		t.Fatalf("third turn did not start with two doubles on record")
	}
	if st.Squares[InJail] != 1 {
		t.Fatalf("jail bucket count = %d, want 1", st.Squares[InJail])
	}
	if s.square != InJail || s.inJail != 1 {
		t.Fatalf("token not in jail after third double: square=%d inJail=%d", s.square, s.inJail)
	}
	if sum := sumSquares(st); sum != 3 {
		t.Fatalf("occupancy sums to %d, want 3", sum)
	}
}

// TestShortStayReleasesNextTurn jails the token and checks the pay-at-once
// strategy frees it before the very next roll, which still moves it.
func TestShortStayReleasesNextTurn(t *testing.T) {
	roller := &scriptRoller{t: t, rolls: [][2]int{{6, 4}, {6, 4}, {6, 4}, {3, 4}}, cards: []int{13}}
	s := New(ShortJailStay, roller)
	for i := 0; i < 4; i++ {
		s.PlayTurn()
	}

	st := s.Stats()
	if st.Squares[GoToJailSquare] != 0 {
		t.Fatalf("landing on Go To Jail left a resting count")
	}
	if st.Squares[InJail] != 1 {
		t.Fatalf("jail bucket count = %d, want exactly the jailing turn", st.Squares[InJail])
	}
	// Released to Just Visiting before the roll, then moved 7 from there
	// onto the middle Community Chest, which deals a card as usual.
	if st.Squares[17] != 1 {
		t.Fatalf("freed token did not move from Just Visiting: %v", st.Squares)
	}
	if roller.ci != 1 {
		t.Fatalf("drew %d cards on the chest landing, want 1", roller.ci)
	}
	if s.inJail != 0 {
		t.Fatalf("token still marked in jail after release")
	}
}

// TestLongStayForcedRelease serves the maximum stay and checks the token
// is walked out before rolling on the turn after the third.
func TestLongStayForcedRelease(t *testing.T) {
	roller := &scriptRoller{t: t, rolls: [][2]int{
		{6, 4}, {6, 4}, {6, 4}, // walk to Go To Jail
		{1, 2}, {3, 4}, // two failed attempts at doubles
		{2, 3}, // forced out before this roll
	}}
	s := New(LongJailStay, roller)
	for i := 0; i < 5; i++ {
		s.PlayTurn()
	}
	if s.inJail != LongJailStay {
		t.Fatalf("served %d turns before forced release, want %d", s.inJail, LongJailStay)
	}
	s.PlayTurn()

	st := s.Stats()
	if s.inJail != 0 {
		t.Fatalf("token still in jail after serving the full stay")
	}
	if st.Squares[InJail] != 3 {
		t.Fatalf("jail bucket count = %d, want 3", st.Squares[InJail])
	}
	// 10 + 5 lands on the Pennsylvania Railroad.
	if st.Squares[PennsylvaniaRailroad] != 1 || st.RailLandings[RailPennsylvania] != 1 {
		t.Fatalf("freed token did not move 5 from Just Visiting: %v", st.Squares)
	}
	if sum := sumSquares(st); sum != 6 {
		t.Fatalf("occupancy sums to %d, want 6", sum)
	}
}

// TestJailDoubleRollReleasesAndMoves checks a double rolled in jail frees
// the token, moves it by that roll, and counts as one consecutive double.
func TestJailDoubleRollReleasesAndMoves(t *testing.T) {
	roller := &scriptRoller{t: t, rolls: [][2]int{{6, 4}, {6, 4}, {6, 4}, {2, 2}}}
	s := New(LongJailStay, roller)
	for i := 0; i < 4; i++ {
		s.PlayTurn()
	}

	st := s.Stats()
	if st.Squares[InJail] != 1 {
		t.Fatalf("jail bucket count = %d, want only the jailing turn", st.Squares[InJail])
	}
	if st.Squares[14] != 1 {
		t.Fatalf("double did not move the freed token from Just Visiting to 14")
	}
	if s.doubles != 1 {
		t.Fatalf("releasing double not on record: doubles=%d, want 1", s.doubles)
	}
}

// TestChanceSquareDrawsOneCard lands on the first Chance square and checks
// exactly one card is drawn.
func TestChanceSquareDrawsOneCard(t *testing.T) {
	roller := &scriptRoller{t: t, rolls: [][2]int{{3, 4}}, cards: []int{13}}
	s := New(ShortJailStay, roller)
	s.PlayTurn()

	if roller.ci != 1 {
		t.Fatalf("drew %d cards on a Chance landing, want 1", roller.ci)
	}
	if s.Stats().Squares[FirstChance] != 1 {
		t.Fatalf("no-op card moved the token off the Chance square")
	}
}

// TestChanceNextRailroadFromFirstChance checks the nearest-railroad card
// from square 7 pays Pennsylvania double and bumps both counters once.
func TestChanceNextRailroadFromFirstChance(t *testing.T) {
	roller := &scriptRoller{t: t, rolls: [][2]int{{3, 4}}, cards: []int{6}}
	s := New(ShortJailStay, roller)
	s.PlayTurn()

	st := s.Stats()
	if st.Squares[FirstChance] != 0 || st.Squares[PennsylvaniaRailroad] != 1 {
		t.Fatalf("token not transferred from Chance to Pennsylvania: %v", st.Squares)
	}
	if st.RailDouble[RailPennsylvania] != 1 || st.RailLandings[RailPennsylvania] != 1 {
		t.Fatalf("Pennsylvania counters = %d/%d, want 1/1",
			st.RailDouble[RailPennsylvania], st.RailLandings[RailPennsylvania])
	}
}

// TestChanceBackThreeDrawsChest rolls onto the last Chance square, goes
// back three onto the last Community Chest, and checks the chest card is
// drawn in the same turn.
func TestChanceBackThreeDrawsChest(t *testing.T) {
	roller := &scriptRoller{t: t, rolls: [][2]int{{3, 4}}, cards: []int{8, 7}}
	s := New(ShortJailStay, roller)
	s.square = 29
	s.PlayTurn()

	st := s.Stats()
	if roller.ci != 2 {
		t.Fatalf("drew %d cards, want a Chance card then a chest card", roller.ci)
	}
	if st.Squares[ThirdChance] != 0 || st.Squares[LastChest] != 1 {
		t.Fatalf("token not walked back onto the chest square: %v", st.Squares)
	}
	if st.ChestMoney != 200 {
		t.Fatalf("chest money = %d, want 200", st.ChestMoney)
	}
}

// TestGoPassOnWrap wraps past Go by dice and checks the pass and the
// Reading landing are both counted.
func TestGoPassOnWrap(t *testing.T) {
	roller := &scriptRoller{t: t, rolls: [][2]int{{3, 4}}}
	s := New(ShortJailStay, roller)
	s.square = 38
	s.PlayTurn()

	st := s.Stats()
	if st.PassedGo != 1 {
		t.Fatalf("go passes = %d, want 1", st.PassedGo)
	}
	if st.Squares[ReadingRailroad] != 1 || st.RailLandings[RailReading] != 1 {
		t.Fatalf("wrap landing on Reading not counted: %v", st.Squares)
	}
}

// TestUtilityRecordsPreviousRoll starts a turn on the Electric Company and
// checks the roll that landed there feeds the utility average, together
// with the two-doubles bookkeeping.
func TestUtilityRecordsPreviousRoll(t *testing.T) {
	roller := &scriptRoller{t: t, rolls: [][2]int{{5, 5}, {1, 1}, {1, 2}}}
	s := New(LongJailStay, roller)
	for i := 0; i < 3; i++ {
		s.PlayTurn()
	}

	st := s.Stats()
	if st.UtilityVisits[UtilElectric] != 1 || st.UtilityRollSum[UtilElectric] != 2 {
		t.Fatalf("electric accumulator = %d/%d, want roll sum 2 over 1 visit",
			st.UtilityRollSum[UtilElectric], st.UtilityVisits[UtilElectric])
	}
	if st.TurnsFromDoubles[ElectricCompany] != 1 {
		t.Fatalf("turn from Electric Company after two doubles not recorded")
	}
	if st.Squares[PennsylvaniaRailroad] != 1 {
		t.Fatalf("final move did not land on Pennsylvania: %v", st.Squares)
	}
}

// TestStatsReset reuses one accumulator for a second pass, as the console
// flow does between strategies.
func TestStatsReset(t *testing.T) {
	st := Run(ShortJailStay, 1000, NewRoller(6))
	st.Reset()
	if *st != (Stats{}) {
		t.Fatalf("accumulator not fully rezeroed: %+v", st)
	}
}

// TestRunPolicies runs both strategies concurrently and checks each report
// is complete and the progress feed fires for both.
func TestRunPolicies(t *testing.T) {
	const rolls = 20000
	var calls int64
	short, long := RunPolicies(rolls, 7, 5000, func(leaveJail int, done, total int64) {
		atomic.AddInt64(&calls, 1)
		if total != rolls || done <= 0 || done > total {
			t.Errorf("bad progress call: leaveJail=%d done=%d total=%d", leaveJail, done, total)
		}
	})

	if short.LeaveJail != ShortJailStay || long.LeaveJail != LongJailStay {
		t.Fatalf("reports carry wrong policies: %d and %d", short.LeaveJail, long.LeaveJail)
	}
	if short.Rolls != rolls || long.Rolls != rolls {
		t.Fatalf("reports carry wrong roll counts: %d and %d", short.Rolls, long.Rolls)
	}
	if got := atomic.LoadInt64(&calls); got != 8 {
		t.Fatalf("progress fired %d times, want 4 per policy", got)
	}
	for _, r := range []Report{short, long} {
		var sum float64
		for _, f := range r.Frequencies {
			sum += f
		}
		if sum < 99.999 || sum > 100.001 {
			t.Fatalf("%s frequencies sum to %f, want 100", r.Strategy, sum)
		}
	}
}
