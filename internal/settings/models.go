package settings

import "time"

// TimerSettings holds a user's timer preferences, one row per user.
// Durations are minutes.
type TimerSettings struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"userId"`
	WorkDuration       int       `json:"workDuration"`
	ShortBreakDuration int       `json:"shortBreakDuration"`
	LongBreakDuration  int       `json:"longBreakDuration"`
	SoundNotifications bool      `json:"soundNotifications"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Defaults is the classic 25/5/15 pomodoro split.
func Defaults(userID string) TimerSettings {
	return TimerSettings{
		UserID:             userID,
		WorkDuration:       25,
		ShortBreakDuration: 5,
		LongBreakDuration:  15,
		SoundNotifications: true,
	}
}
