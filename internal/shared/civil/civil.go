package civil

import "time"

// Window is a half-open [Start, End) pair of UTC instants bounding a
// civil-calendar span in some timezone.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Resolve looks up an IANA timezone name. Unknown or empty names fall
// back to UTC with ok=false so callers can log the downgrade instead of
// silently serving wrong-zone results.
func Resolve(name string) (*time.Location, bool) {
	if name == "" {
		return time.UTC, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, false
	}
	return loc, true
}

// DayWindow returns the UTC bounds of the civil day in loc that contains
// ref. Boundaries come from time.Date in loc, so DST days of 23 or 25
// wall-clock hours still resolve to [local midnight, next local midnight).
func DayWindow(loc *time.Location, ref time.Time) Window {
	local := ref.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return Window{
		Start: start.UTC(),
		End:   start.AddDate(0, 0, 1).UTC(),
	}
}

// DayWindowFor is DayWindow for an explicit YYYY-MM-DD civil date.
func DayWindowFor(loc *time.Location, civilDate string) (Window, error) {
	d, err := time.ParseInLocation("2006-01-02", civilDate, loc)
	if err != nil {
		return Window{}, err
	}
	return Window{
		Start: d.UTC(),
		End:   d.AddDate(0, 0, 1).UTC(),
	}, nil
}

// WeekWindow returns the UTC bounds of the Sunday-first week of 7 civil
// days in loc that contains ref.
func WeekWindow(loc *time.Location, ref time.Time) Window {
	local := ref.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day()-int(local.Weekday()), 0, 0, 0, 0, loc)
	return Window{
		Start: start.UTC(),
		End:   start.AddDate(0, 0, 7).UTC(),
	}
}

// WeekdayIndex returns the civil weekday of t in loc, Sunday=0.
func WeekdayIndex(loc *time.Location, t time.Time) int {
	return int(t.In(loc).Weekday())
}

// WeekdayNames is the Sunday-first ordering used by weekly reports.
var WeekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
