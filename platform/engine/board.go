// Package engine simulates single-token Monopoly turns to estimate how
// often play ends up on each square under the two jail strategies.
package engine

// Board layout. Squares 0-39 are the physical board, 40 is the in-jail
// bucket (not the same thing as Just Visiting at 10).
const (
	GoSquare             = 0
	ReadingRailroad      = 5
	FirstChance          = 7
	JustVisiting         = 10
	StCharlesPlace       = 11
	ElectricCompany      = 12
	PennsylvaniaRailroad = 15
	SecondChance         = 22
	IllinoisAvenue       = 24
	BAndORailroad        = 25
	WaterWorks           = 28
	GoToJailSquare       = 30
	LastChest            = 33
	ThirdChance          = 36
	Boardwalk            = 39
	InJail               = 40

	BoardSquares = 40
	TotalSquares = 41
)

// SpaceKind marks the squares that force something beyond the dice move.
type SpaceKind int

const (
	SpaceNone SpaceKind = iota
	SpaceGoToJail
	SpaceChance
	SpaceCommunityChest
)

var spaceKinds = [TotalSquares]SpaceKind{
	2:              SpaceCommunityChest,
	FirstChance:    SpaceChance,
	17:             SpaceCommunityChest,
	SecondChance:   SpaceChance,
	GoToJailSquare: SpaceGoToJail,
	LastChest:      SpaceCommunityChest,
	ThirdChance:    SpaceChance,
}

// KindOf reports whether landing on square forces a redirect or card draw.
func KindOf(square int) SpaceKind {
	return spaceKinds[square]
}

// SquareNames has a display name for every occupancy bucket, jail included.
var SquareNames = [TotalSquares]string{
	"Go",
	"Mediterranean Avenue",
	"Community Chest",
	"Baltic Avenue",
	"Income Tax",
	"Reading Railroad",
	"Oriental Avenue",
	"Chance",
	"Vermont Avenue",
	"Connecticut Avenue",
	"Just Visiting",
	"St. Charles Place",
	"Electric Company",
	"States Avenue",
	"Virginia Avenue",
	"Pennsylvania Railroad",
	"St. James Place",
	"Community Chest",
	"Tennessee Avenue",
	"New York Avenue",
	"Free Parking",
	"Kentucky Avenue",
	"Chance",
	"Indiana Avenue",
	"Illinois Avenue",
	"B and O Railroad",
	"Atlantic Avenue",
	"Ventnor Avenue",
	"Water Works",
	"Marvin Gardens",
	"Go To Jail",
	"Pacific Avenue",
	"North Carolina Avenue",
	"Community Chest",
	"Pennsylvania Avenue",
	"Short Line",
	"Chance",
	"Park Place",
	"Luxury Tax",
	"Boardwalk",
	"In Jail",
}

// Railroads a Chance card can pay double rent on. Short Line is on the
// board but no card sends anyone there, so it is never tracked.
const (
	RailReading = iota
	RailPennsylvania
	RailBAndO
	NumRailroads
)

var RailroadNames = [NumRailroads]string{"Reading Railroad", "Pennsylvania Railroad", "B and O Railroad"}

var railroadSquares = [NumRailroads]int{ReadingRailroad, PennsylvaniaRailroad, BAndORailroad}

// RailroadSquare gives the board position of a tracked railroad.
func RailroadSquare(rail int) int {
	return railroadSquares[rail]
}

// Utilities.
const (
	UtilElectric = iota
	UtilWater
	NumUtilities
)

var UtilityNames = [NumUtilities]string{"Electric Company", "Water Works"}
