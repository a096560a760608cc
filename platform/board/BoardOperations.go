package board

import (
	"errors"

	"github.com/chrisaacson69/monopoly/app/models"
	"github.com/chrisaacson69/monopoly/platform/engine"
)

// Spaces lists every bucket the simulator tracks, the 40 board squares
// plus the in-jail bucket behind Boardwalk.
func Spaces() []models.Space {
	spaces := make([]models.Space, 0, engine.TotalSquares)
	for pos := 0; pos < engine.TotalSquares; pos++ {
		spaces = append(spaces, models.Space{
			Pos:    pos,
			Name:   engine.SquareNames[pos],
			Action: actionFor(pos),
		})
	}
	return spaces
}

func actionFor(pos int) string {
	switch engine.KindOf(pos) {
	case engine.SpaceChance:
		return "chance"
	case engine.SpaceCommunityChest:
		return "chest"
	case engine.SpaceGoToJail:
		return "jail"
	}
	return ""
}

func GetByPos(pos int, spaces *[]models.Space) (models.Space, error) { // O(N) time complexity
	for _, space := range *spaces {
		if space.Pos == pos {
			return space, nil
		}
	}
	return models.Space{}, errors.New("not found")
}
