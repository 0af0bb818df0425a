package civil

import (
	"testing"
	"time"
)

func TestResolveFallsBackToUTC(t *testing.T) {
	loc, ok := Resolve("Not/AZone")
	if ok || loc != time.UTC {
		t.Fatalf("expected UTC fallback for unknown zone")
	}
	loc, ok = Resolve("")
	if ok || loc != time.UTC {
		t.Fatalf("expected UTC fallback for empty zone")
	}
	loc, ok = Resolve("America/New_York")
	if !ok || loc.String() != "America/New_York" {
		t.Fatalf("expected real zone, got %v %v", loc, ok)
	}
}

func TestDayWindowNewYork(t *testing.T) {
	loc, _ := Resolve("America/New_York")

	// 2024-01-15T04:30Z is 2024-01-14 23:30 local (EST, -05:00).
	ref := time.Date(2024, 1, 15, 4, 30, 0, 0, time.UTC)
	w := DayWindow(loc, ref)

	wantStart := time.Date(2024, 1, 14, 5, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Fatalf("unexpected window: %v - %v", w.Start, w.End)
	}
	if !w.Contains(ref) {
		t.Fatalf("expected window to contain reference instant")
	}
	if w.Contains(wantEnd) {
		t.Fatalf("window must be half-open")
	}
}

func TestDayWindowIdempotent(t *testing.T) {
	loc, _ := Resolve("Asia/Tokyo")
	ref := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	w1 := DayWindow(loc, ref)
	w2 := DayWindow(loc, ref)
	if !w1.Start.Equal(w2.Start) || !w1.End.Equal(w2.End) {
		t.Fatalf("windows differ across calls")
	}
}

func TestDayWindowDSTTransition(t *testing.T) {
	loc, _ := Resolve("America/New_York")

	// 2024-03-10 has 23 local hours (spring forward). 23:30 local that
	// day is 2024-03-11T03:30Z; it must still land on the 10th.
	inDay := time.Date(2024, 3, 11, 3, 30, 0, 0, time.UTC)
	w := DayWindow(loc, inDay)

	wantStart := time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Fatalf("unexpected DST window: %v - %v", w.Start, w.End)
	}
	if w.End.Sub(w.Start) != 23*time.Hour {
		t.Fatalf("expected 23h civil day, got %v", w.End.Sub(w.Start))
	}
	if WeekdayIndex(loc, inDay) != 0 {
		t.Fatalf("expected Sunday bucket, got %d", WeekdayIndex(loc, inDay))
	}
}

func TestDayWindowFor(t *testing.T) {
	loc, _ := Resolve("America/New_York")

	w, err := DayWindowFor(loc, "2024-01-14")
	if err != nil {
		t.Fatalf("day window: %v", err)
	}
	session := time.Date(2024, 1, 15, 4, 30, 0, 0, time.UTC)
	if !w.Contains(session) {
		t.Fatalf("expected local Jan 14 to contain %v", session)
	}

	next, err := DayWindowFor(loc, "2024-01-15")
	if err != nil {
		t.Fatalf("day window: %v", err)
	}
	if next.Contains(session) {
		t.Fatalf("session must not leak into Jan 15")
	}

	if _, err := DayWindowFor(loc, "not-a-date"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestWeekWindowSundayFirst(t *testing.T) {
	loc, _ := Resolve("America/New_York")

	// Wednesday mid-week; the containing week starts Sunday 2024-03-10,
	// which is also a DST transition day.
	ref := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)
	w := WeekWindow(loc, ref)

	wantStart := time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 17, 4, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Fatalf("unexpected week window: %v - %v", w.Start, w.End)
	}
}

func TestWeekWindowUTC(t *testing.T) {
	// 2024-06-05 is a Wednesday.
	ref := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	w := WeekWindow(time.UTC, ref)

	if !w.Start.Equal(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected week start: %v", w.Start)
	}
	if w.End.Sub(w.Start) != 7*24*time.Hour {
		t.Fatalf("expected 7 civil days, got %v", w.End.Sub(w.Start))
	}
}

func TestWeekdayIndexCrossesDateLine(t *testing.T) {
	loc, _ := Resolve("America/Los_Angeles")

	// 2025-01-01T02:00Z is still Dec 31 locally (a Tuesday).
	ts := time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC)
	if got := WeekdayIndex(loc, ts); got != 2 {
		t.Fatalf("expected Tuesday (2), got %d", got)
	}
	if got := WeekdayIndex(time.UTC, ts); got != 3 {
		t.Fatalf("expected Wednesday (3) in UTC, got %d", got)
	}
}
