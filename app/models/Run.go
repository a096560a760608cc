package models

import "time"

// Run is one simulation request: both jail strategies played for the same
// number of rolls. Reports are stored as the JSON they were served with.
type Run struct {
	Id          string
	Code        string
	UserId      string
	Rolls       int64
	Status      string // "running", "done" or "failed"
	ShortReport string
	LongReport  string
	CreatedAt   time.Time
}

type RunCreateDto struct {
	Rolls int64 `json:"rolls"`
}

type VerifyRunDto struct {
	Code string `query:"code"`
}
