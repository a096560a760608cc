package engine

// Stats is the accumulator a simulation writes while it runs. Only the
// Simulation mutates it; readers should wait for the run to finish.
type Stats struct {
	Rolls int64

	// Squares counts where each trial ended, jail bucket included.
	// It always sums to Rolls.
	Squares [TotalSquares]int64

	// TurnsFrom counts the trials that began on a square, and
	// TurnsFromDoubles those that began there right after two doubles.
	// Neither is kept for the jail bucket.
	TurnsFrom        [TotalSquares]int64
	TurnsFromDoubles [TotalSquares]int64

	PassedGo int64

	RailLandings [NumRailroads]int64
	RailDouble   [NumRailroads]int64

	// Money won (or lost, negative) across all card draws per deck.
	ChanceMoney int64
	ChestMoney  int64

	UtilityVisits  [NumUtilities]int64
	UtilityRollSum [NumUtilities]int64
}

// Reset rezeroes everything so the accumulator can back a fresh run.
func (st *Stats) Reset() {
	*st = Stats{}
}
