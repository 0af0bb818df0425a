package settings

import (
	"context"
	"errors"

	"backend-focusflow/internal/db"

	"github.com/jackc/pgx/v5"
)

var ErrInvalidDuration = errors.New("durations must be positive minutes")

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Get returns the user's settings, or the defaults when none are stored.
func (s *Service) Get(ctx context.Context, userID string) (TimerSettings, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, work_duration, short_break_duration, long_break_duration, sound_notifications, created_at, updated_at
		FROM timer_settings WHERE user_id=$1
	`, userID)
	var ts TimerSettings
	err := row.Scan(&ts.ID, &ts.UserID, &ts.WorkDuration, &ts.ShortBreakDuration, &ts.LongBreakDuration, &ts.SoundNotifications, &ts.CreatedAt, &ts.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Defaults(userID), nil
	}
	if err != nil {
		return TimerSettings{}, err
	}
	return ts, nil
}

// Upsert replaces the user's settings row in place. Replace semantics
// are explicit here rather than a hidden delete-then-insert.
func (s *Service) Upsert(ctx context.Context, userID string, ts TimerSettings) (TimerSettings, error) {
	if ts.WorkDuration <= 0 || ts.ShortBreakDuration <= 0 || ts.LongBreakDuration <= 0 {
		return TimerSettings{}, ErrInvalidDuration
	}
	ts.UserID = userID

	row := s.db.QueryRow(ctx, `
		INSERT INTO timer_settings (user_id, work_duration, short_break_duration, long_break_duration, sound_notifications)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (user_id) DO UPDATE
		SET work_duration=EXCLUDED.work_duration,
		    short_break_duration=EXCLUDED.short_break_duration,
		    long_break_duration=EXCLUDED.long_break_duration,
		    sound_notifications=EXCLUDED.sound_notifications,
		    updated_at=NOW()
		RETURNING id, created_at, updated_at
	`, ts.UserID, ts.WorkDuration, ts.ShortBreakDuration, ts.LongBreakDuration, ts.SoundNotifications)
	if err := row.Scan(&ts.ID, &ts.CreatedAt, &ts.UpdatedAt); err != nil {
		return TimerSettings{}, err
	}
	return ts, nil
}
