package user

import (
	"context"
	"errors"

	"backend-focusflow/internal/db"
	"backend-focusflow/internal/shared/civil"
)

var ErrUnknownTimezone = errors.New("unknown timezone")

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, email, username, full_name, timezone, created_at, updated_at
		FROM users WHERE id=$1
	`, userID)
	var p Profile
	if err := row.Scan(&p.ID, &p.Email, &p.Username, &p.FullName, &p.Timezone, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Timezone returns the stored preference, or "UTC" when the user row is
// missing or carries no value.
func (s *Service) Timezone(ctx context.Context, userID string) string {
	var tz string
	err := s.db.QueryRow(ctx, `SELECT timezone FROM users WHERE id=$1`, userID).Scan(&tz)
	if err != nil || tz == "" {
		return "UTC"
	}
	return tz
}

// UpdateTimezone rejects names the zone database does not know rather
// than storing a value every report would silently downgrade.
func (s *Service) UpdateTimezone(ctx context.Context, userID, timezone string) (Profile, error) {
	if _, ok := civil.Resolve(timezone); !ok {
		return Profile{}, ErrUnknownTimezone
	}

	_, err := s.db.Exec(ctx, `
		UPDATE users SET timezone=$2, updated_at=NOW() WHERE id=$1
	`, userID, timezone)
	if err != nil {
		return Profile{}, err
	}
	return s.Get(ctx, userID)
}
