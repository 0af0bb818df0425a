package timer

import "time"

const (
	SessionTypeWork  = "work"
	SessionTypeBreak = "break"
)

// ActiveSession is the single in-progress timer a user may have. At most
// one row exists per user; starting a new timer replaces the old row.
type ActiveSession struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"userId"`
	SessionType  string    `json:"sessionType"`
	StartTime    time.Time `json:"startTime"`
	TimeElapsed  int       `json:"timeElapsed"`
	IsRunning    bool      `json:"isRunning"`
	IsPaused     bool      `json:"isPaused"`
	SessionCount int       `json:"sessionCount"`
}

// UpdateRequest is a partial mutation; nil fields keep their stored value.
type UpdateRequest struct {
	TimeElapsed *int  `json:"timeElapsed"`
	IsRunning   *bool `json:"isRunning"`
	IsPaused    *bool `json:"isPaused"`
}

type StopRequest struct {
	FinalElapsedTime *int `json:"finalElapsedTime"`
}

// Event is published on the stream hub so a user's other devices can
// converge on the latest session state.
type Event struct {
	Type        string         `json:"type"`
	Session     *ActiveSession `json:"session,omitempty"`
	ElapsedTime int            `json:"elapsedTime,omitempty"`
}

func validSessionType(t string) bool {
	return t == SessionTypeWork || t == SessionTypeBreak
}
