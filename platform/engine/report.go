package engine

import (
	"fmt"
	"strings"
)

// Report is everything derived from one run's statistics, shaped for JSON.
type Report struct {
	Strategy  string `json:"strategy"`
	LeaveJail int    `json:"leave_jail"`
	Rolls     int64  `json:"rolls"`

	// Frequencies covers all 41 buckets as percentages. DoublesOdds is
	// the chance the two previous rolls were doubles when starting a
	// turn on a square; the jail bucket has no entry.
	Frequencies [TotalSquares]float64 `json:"frequencies"`
	DoublesOdds [BoardSquares]float64 `json:"doubles_odds"`

	GoPasses     int64   `json:"go_passes"`
	GoIncome     float64 `json:"go_income"`
	ChanceIncome float64 `json:"chance_income"`
	ChestIncome  float64 `json:"chest_income"`

	Railroads [NumRailroads]RailroadReport `json:"railroads"`
	Utilities [NumUtilities]UtilityReport  `json:"utilities"`
}

type RailroadReport struct {
	Name       string  `json:"name"`
	Square     int     `json:"square"`
	Landings   int64   `json:"landings"`
	DoubleRent int64   `json:"double_rent"`
	DoublePct  float64 `json:"double_pct"`
}

type UtilityReport struct {
	Name        string  `json:"name"`
	Square      int     `json:"square"`
	Visits      int64   `json:"visits"`
	AverageRoll float64 `json:"average_roll"`
}

// ratio divides two counters, with 0/0 defined as 0 so tiny runs cannot
// blow up a report.
func ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// BuildReport derives the full report from a finished run's accumulator.
func BuildReport(leaveJail int, st *Stats) Report {
	r := Report{
		Strategy:  StrategyName(leaveJail),
		LeaveJail: leaveJail,
		Rolls:     st.Rolls,
		GoPasses:  st.PassedGo,
		GoIncome:  200.0 * ratio(st.PassedGo, st.Rolls),
	}

	for i := 0; i < TotalSquares; i++ {
		r.Frequencies[i] = 100.0 * ratio(st.Squares[i], st.Rolls)
	}
	for i := 0; i < BoardSquares; i++ {
		r.DoublesOdds[i] = ratio(st.TurnsFromDoubles[i], st.TurnsFrom[i])
	}

	r.ChanceIncome = ratio(st.ChanceMoney, st.Rolls)
	r.ChestIncome = ratio(st.ChestMoney, st.Rolls)

	for i := 0; i < NumRailroads; i++ {
		r.Railroads[i] = RailroadReport{
			Name:       RailroadNames[i],
			Square:     RailroadSquare(i),
			Landings:   st.RailLandings[i],
			DoubleRent: st.RailDouble[i],
			DoublePct:  100.0 * ratio(st.RailDouble[i], st.RailLandings[i]),
		}
	}

	r.Utilities[UtilElectric] = UtilityReport{
		Name:        UtilityNames[UtilElectric],
		Square:      ElectricCompany,
		Visits:      st.UtilityVisits[UtilElectric],
		AverageRoll: ratio(st.UtilityRollSum[UtilElectric], st.UtilityVisits[UtilElectric]),
	}
	r.Utilities[UtilWater] = UtilityReport{
		Name:        UtilityNames[UtilWater],
		Square:      WaterWorks,
		Visits:      st.UtilityVisits[UtilWater],
		AverageRoll: ratio(st.UtilityRollSum[UtilWater], st.UtilityVisits[UtilWater]),
	}

	return r
}

// Text renders the report the way the console tables always looked: the
// percentage grid ten to a row, the doubles grid, then the scalar lines.
func (r Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Land-on frequencies as percentages after %d rolls for preferred %s:\n", r.Rolls, r.Strategy)
	for i, freq := range r.Frequencies {
		if i != 0 && i%10 == 0 {
			fmt.Fprintln(&b)
		}
		fmt.Fprintf(&b, "%5.3f  ", freq)
	}
	fmt.Fprint(&b, "\n\n")

	fmt.Fprintln(&b, "Probabilities we have had two doubles when rolling from a square")
	for i, odds := range r.DoublesOdds {
		if i != 0 && i%10 == 0 {
			fmt.Fprintln(&b)
		}
		fmt.Fprintf(&b, "%8.6f  ", odds)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Passed or landed on Go %d times for an income per roll of %7.4f\n", r.GoPasses, r.GoIncome)
	fmt.Fprintf(&b, "Income per roll from Chance cards: %6.4f\n", r.ChanceIncome)
	fmt.Fprintf(&b, "Income per roll from Community Chest cards: %6.4f\n", r.ChestIncome)
	for _, rr := range r.Railroads {
		fmt.Fprintf(&b, "Percent of time landing on %s from Chance for double pay: %7.4f\n", rr.Name, rr.DoublePct)
	}
	for _, u := range r.Utilities {
		fmt.Fprintf(&b, "Average roll for %s: %7.4f\n", u.Name, u.AverageRoll)
	}

	return b.String()
}
