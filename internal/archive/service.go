package archive

import (
	"context"
	"errors"
	"time"

	"backend-focusflow/internal/db"
	"backend-focusflow/internal/shared/civil"
)

var (
	ErrInvalidSessionType = errors.New("session type must be work or break")
	ErrNegativeDuration   = errors.New("durations must be non-negative")
)

const recentLimit = 10

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (WorkSession, error) {
	if req.SessionType != "work" && req.SessionType != "break" {
		return WorkSession{}, ErrInvalidSessionType
	}
	if req.ActualDuration < 0 || req.PlannedDuration < 0 {
		return WorkSession{}, ErrNegativeDuration
	}
	if req.PlannedDuration == 0 {
		// stopwatch mode: planned mirrors actual
		req.PlannedDuration = req.ActualDuration
	}
	if req.StartTime.IsZero() {
		req.StartTime = time.Now().UTC()
	}
	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	ws := WorkSession{
		UserID:          userID,
		SessionType:     req.SessionType,
		PlannedDuration: req.PlannedDuration,
		ActualDuration:  req.ActualDuration,
		StartTime:       req.StartTime,
		Completed:       completed,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO work_sessions (user_id, session_type, planned_duration, actual_duration, start_time, completed)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, ws.UserID, ws.SessionType, ws.PlannedDuration, ws.ActualDuration, ws.StartTime, ws.Completed)
	if err := row.Scan(&ws.ID); err != nil {
		return WorkSession{}, err
	}
	return ws, nil
}

// Recent returns the user's latest sessions, newest first.
func (s *Service) Recent(ctx context.Context, userID string) ([]WorkSession, error) {
	return s.query(ctx, `
		SELECT id, user_id, session_type, planned_duration, actual_duration, start_time, completed
		FROM work_sessions WHERE user_id=$1
		ORDER BY start_time DESC
		LIMIT $2
	`, userID, recentLimit)
}

// ByDate returns sessions whose start instant falls on the given civil
// date in loc.
func (s *Service) ByDate(ctx context.Context, userID string, loc *time.Location, civilDate string) ([]WorkSession, error) {
	w, err := civil.DayWindowFor(loc, civilDate)
	if err != nil {
		return nil, err
	}
	return s.ByWindow(ctx, userID, w)
}

// ByWindow returns sessions with start_time in [w.Start, w.End), newest
// first.
func (s *Service) ByWindow(ctx context.Context, userID string, w civil.Window) ([]WorkSession, error) {
	return s.query(ctx, `
		SELECT id, user_id, session_type, planned_duration, actual_duration, start_time, completed
		FROM work_sessions
		WHERE user_id=$1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time DESC
	`, userID, w.Start, w.End)
}

// WorkInWindow returns only 'work'-type sessions inside the window, the
// population the stats aggregator reports over.
func (s *Service) WorkInWindow(ctx context.Context, userID string, w civil.Window) ([]WorkSession, error) {
	return s.query(ctx, `
		SELECT id, user_id, session_type, planned_duration, actual_duration, start_time, completed
		FROM work_sessions
		WHERE user_id=$1 AND session_type='work' AND start_time >= $2 AND start_time < $3
	`, userID, w.Start, w.End)
}

func (s *Service) query(ctx context.Context, sql string, args ...any) ([]WorkSession, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []WorkSession
	for rows.Next() {
		var ws WorkSession
		if err := rows.Scan(&ws.ID, &ws.UserID, &ws.SessionType, &ws.PlannedDuration, &ws.ActualDuration, &ws.StartTime, &ws.Completed); err != nil {
			return nil, err
		}
		sessions = append(sessions, ws)
	}
	return sessions, nil
}
