package stats

import (
	"context"
	"math"
	"time"

	"backend-focusflow/internal/archive"
	"backend-focusflow/internal/shared/civil"
)

type Service struct {
	archive *archive.Service
	now     func() time.Time
}

func NewService(archiveSvc *archive.Service) *Service {
	return &Service{archive: archiveSvc, now: time.Now}
}

// Today summarizes the 'work' sessions of the current civil day in loc.
func (s *Service) Today(ctx context.Context, userID string, loc *time.Location) (TodaySummary, error) {
	window := civil.DayWindow(loc, s.now())
	sessions, err := s.archive.WorkInWindow(ctx, userID, window)
	if err != nil {
		return TodaySummary{}, err
	}

	var summary TodaySummary
	var planned int
	for _, ws := range sessions {
		if ws.Completed {
			summary.CompletedSessions++
		}
		summary.TotalTime += ws.ActualDuration
		planned += ws.PlannedDuration
	}
	if planned > 0 {
		summary.Efficiency = int(math.Round(float64(summary.TotalTime) / float64(planned) * 100))
	}
	return summary, nil
}

// Weekly buckets the current Sunday-first week's 'work' sessions by the
// local civil weekday of each start instant, zero-filled.
func (s *Service) Weekly(ctx context.Context, userID string, loc *time.Location) ([]WeekdayTotal, error) {
	window := civil.WeekWindow(loc, s.now())
	sessions, err := s.archive.WorkInWindow(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	totals := make([]WeekdayTotal, len(civil.WeekdayNames))
	for i, name := range civil.WeekdayNames {
		totals[i] = WeekdayTotal{Day: name}
	}
	for _, ws := range sessions {
		totals[civil.WeekdayIndex(loc, ws.StartTime)].TotalTime += ws.ActualDuration
	}
	return totals, nil
}
