package archive

import "time"

// WorkSession is an immutable historical record of a finished or
// interrupted timer.
type WorkSession struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"userId"`
	SessionType     string    `json:"sessionType"`
	PlannedDuration int       `json:"plannedDuration"`
	ActualDuration  int       `json:"actualDuration"`
	StartTime       time.Time `json:"startTime"`
	Completed       bool      `json:"completed"`
}

type CreateRequest struct {
	SessionType     string    `json:"sessionType"`
	PlannedDuration int       `json:"plannedDuration"`
	ActualDuration  int       `json:"actualDuration"`
	StartTime       time.Time `json:"startTime"`
	Completed       *bool     `json:"completed"`
}
