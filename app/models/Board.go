package models

// Space is one tracked bucket of the board as served to clients. Action
// is "" for plain squares, or "chance", "chest", "jail" for the squares
// the simulator treats specially.
type Space struct {
	Pos    int    `json:"pos"`
	Name   string `json:"name"`
	Action string `json:"action"`
}
