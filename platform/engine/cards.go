package engine

import (
	"fmt"
)

// DeckSize is the number of cards in each deck. Draws are always from the
// full deck; card order is not modeled, only the 16 equally likely effects.
const DeckSize = 16

// drawChance applies one Chance card. Only squares 7, 22 and 36 deal
// Chance, which the railroad and utility cards rely on: any other origin
// for those cards means the tables are broken, so they panic.
//
// Go credit on relocations is uneven per card: it tracks which moves
// actually pass Go on the real board (the ride to Reading always wraps,
// Illinois only wraps from square 36, and the "next railroad" hop from
// 36 back to Reading never pays out).
func (s *Simulation) drawChance() {
	st := s.stats
	from := s.square

	switch card := s.roller.DrawCard(); card {
	case 0:
		// Take a walk on the Boardwalk.
		s.relocate(Boardwalk)
	case 1:
		// Take a ride on the Reading. Always wraps past Go.
		s.relocate(ReadingRailroad)
		st.RailLandings[RailReading]++
		st.PassedGo++
	case 2:
		// Advance to Illinois Ave.
		s.relocate(IllinoisAvenue)
		if from == ThirdChance {
			st.PassedGo++
		}
	case 3:
		// Advance to St. Charles Place.
		s.relocate(StCharlesPlace)
		if from != FirstChance {
			st.PassedGo++
		}
	case 4:
		// Advance to Go.
		s.relocate(GoSquare)
		st.PassedGo++
	case 5:
		// Go directly to jail.
		s.relocate(InJail)
		s.inJail = 1
	case 6, 7:
		// Advance to the nearest railroad, rent doubled. Two of these
		// in the deck.
		switch from {
		case FirstChance:
			s.relocate(PennsylvaniaRailroad)
			st.RailDouble[RailPennsylvania]++
			st.RailLandings[RailPennsylvania]++
		case SecondChance:
			s.relocate(BAndORailroad)
			st.RailDouble[RailBAndO]++
			st.RailLandings[RailBAndO]++
		case ThirdChance:
			s.relocate(ReadingRailroad)
			st.RailDouble[RailReading]++
			st.RailLandings[RailReading]++
		default:
			panic(fmt.Sprintf("engine: chance railroad card drawn on square %d", from))
		}
	case 8:
		// Go back three spaces. From square 36 that is the last
		// Community Chest, which PlayTurn picks up afterwards.
		s.relocate(s.square - 3)
	case 9:
		// Advance to the nearest utility.
		switch from {
		case FirstChance, ThirdChance:
			s.relocate(ElectricCompany)
			if from == ThirdChance {
				st.PassedGo++
			}
		case SecondChance:
			s.relocate(WaterWorks)
		default:
			panic(fmt.Sprintf("engine: chance utility card drawn on square %d", from))
		}
	case 10:
		// Bank pays you dividend.
		st.ChanceMoney += 50
	case 11:
		// Poor tax.
		st.ChanceMoney -= 15
	case 12:
		// Building loan matures.
		st.ChanceMoney += 150
	default:
		// Cards 13-15 leave the token put and move no money.
	}
}

// drawCommunityChest applies one Community Chest card. Two cards move the
// token; the rest only move money, and three do nothing at all.
func (s *Simulation) drawCommunityChest() {
	st := s.stats

	switch card := s.roller.DrawCard(); card {
	case 0:
		s.relocate(GoSquare)
		st.PassedGo++
	case 1:
		s.relocate(InJail)
		s.inJail = 1
	case 2:
		st.ChestMoney += 10
	case 3:
		st.ChestMoney += 45
	case 4:
		st.ChestMoney += 100
	case 5:
		st.ChestMoney += 25
	case 6:
		st.ChestMoney -= 50
	case 7:
		st.ChestMoney += 200
	case 8:
		st.ChestMoney -= 150
	case 9:
		st.ChestMoney += 20
	case 10:
		st.ChestMoney -= 100
	case 11:
		st.ChestMoney += 100
	case 12:
		st.ChestMoney += 100
	default:
		// Cards 13-15 are no-ops.
	}
}
