package stats

// TodaySummary reports the current civil day's work sessions.
type TodaySummary struct {
	CompletedSessions int `json:"completedSessions"`
	TotalTime         int `json:"totalTime"`
	Efficiency        int `json:"efficiency"`
}

// WeekdayTotal is one Sunday-first weekly bucket.
type WeekdayTotal struct {
	Day       string `json:"day"`
	TotalTime int    `json:"totalTime"`
}
