package timer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"backend-focusflow/internal/db"
	"backend-focusflow/internal/stream"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNoActiveSession    = errors.New("no active session found")
	ErrInvalidSessionType = errors.New("session type must be work or break")
	ErrNegativeElapsed    = errors.New("timeElapsed must be non-negative")
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

func (s *Service) Get(ctx context.Context, userID string) (ActiveSession, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, session_type, start_time, time_elapsed, is_running, is_paused, session_count
		FROM active_timer_sessions WHERE user_id=$1
	`, userID)
	var a ActiveSession
	err := row.Scan(&a.ID, &a.UserID, &a.SessionType, &a.StartTime, &a.TimeElapsed, &a.IsRunning, &a.IsPaused, &a.SessionCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return ActiveSession{}, ErrNoActiveSession
	}
	if err != nil {
		return ActiveSession{}, err
	}
	return a, nil
}

// Replace starts a fresh timer for the user. Any prior active session is
// deleted first, its elapsed time discarded; last start wins. The replaced
// row is logged since its time is lost.
func (s *Service) Replace(ctx context.Context, userID, sessionType string) (ActiveSession, error) {
	if !validSessionType(sessionType) {
		return ActiveSession{}, ErrInvalidSessionType
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM active_timer_sessions WHERE user_id=$1`, userID)
	if err != nil {
		return ActiveSession{}, err
	}
	if tag.RowsAffected() > 0 {
		log.Printf("timer: replaced existing active session for user %s, elapsed time discarded", userID)
	}

	a := ActiveSession{
		UserID:       userID,
		SessionType:  sessionType,
		StartTime:    time.Now().UTC(),
		TimeElapsed:  0,
		IsRunning:    true,
		IsPaused:     false,
		SessionCount: 1,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO active_timer_sessions (user_id, session_type, start_time, time_elapsed, is_running, is_paused, session_count)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, a.UserID, a.SessionType, a.StartTime, a.TimeElapsed, a.IsRunning, a.IsPaused, a.SessionCount)
	if err := row.Scan(&a.ID); err != nil {
		return ActiveSession{}, err
	}

	s.publish(userID, Event{Type: "created", Session: &a})
	return a, nil
}

// Update merges a partial snapshot into the stored row. Absent fields are
// untouched; a paused session keeps its last pushed timeElapsed.
func (s *Service) Update(ctx context.Context, userID string, patch UpdateRequest) (ActiveSession, error) {
	if patch.TimeElapsed != nil && *patch.TimeElapsed < 0 {
		return ActiveSession{}, ErrNegativeElapsed
	}

	a, err := s.Get(ctx, userID)
	if err != nil {
		return ActiveSession{}, err
	}

	if patch.TimeElapsed != nil {
		a.TimeElapsed = *patch.TimeElapsed
	}
	if patch.IsRunning != nil {
		a.IsRunning = *patch.IsRunning
	}
	if patch.IsPaused != nil {
		a.IsPaused = *patch.IsPaused
	}

	_, err = s.db.Exec(ctx, `
		UPDATE active_timer_sessions
		SET time_elapsed=$2, is_running=$3, is_paused=$4
		WHERE user_id=$1
	`, userID, a.TimeElapsed, a.IsRunning, a.IsPaused)
	if err != nil {
		return ActiveSession{}, err
	}

	s.publish(userID, Event{Type: "updated", Session: &a})
	return a, nil
}

// ComputeElapsed reports the authoritative elapsed seconds. The stored
// value is client-authoritative: the client's tick loop pushes periodic
// snapshots, so the server never adds its own now-startTime delta on top.
func (s *Service) ComputeElapsed(a ActiveSession) int {
	return a.TimeElapsed
}

// StopAndArchive converts the active session into a work_sessions row and
// deletes it, in one transaction. finalElapsed=nil falls back to the last
// stored snapshot; a non-positive final elapsed archives nothing.
func (s *Service) StopAndArchive(ctx context.Context, userID string, finalElapsed *int) (int, error) {
	a, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}

	final := s.ComputeElapsed(a)
	if finalElapsed != nil {
		final = *finalElapsed
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if final > 0 {
		_, err = tx.Exec(ctx, `
			INSERT INTO work_sessions (user_id, session_type, planned_duration, actual_duration, start_time, completed)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, userID, a.SessionType, final, final, a.StartTime, true)
		if err != nil {
			return 0, err
		}
	}
	if _, err = tx.Exec(ctx, `DELETE FROM active_timer_sessions WHERE user_id=$1`, userID); err != nil {
		return 0, err
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}

	s.publish(userID, Event{Type: "stopped", ElapsedTime: final})
	return final, nil
}

// Remove discards the active session without archiving.
func (s *Service) Remove(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM active_timer_sessions WHERE user_id=$1`, userID)
	if err != nil {
		return err
	}
	s.publish(userID, Event{Type: "removed"})
	return nil
}

// ReapStale force-closes sessions whose client never stopped cleanly
// (crash or lost connectivity between archive and delete). Rows started
// before the threshold are archived as interrupted at their last pushed
// elapsed time and removed.
func (s *Service) ReapStale(ctx context.Context, olderThan time.Duration) (int, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, session_type, start_time, time_elapsed, is_running, is_paused, session_count
		FROM active_timer_sessions WHERE start_time < $1
	`, time.Now().UTC().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var stale []ActiveSession
	for rows.Next() {
		var a ActiveSession
		if err := rows.Scan(&a.ID, &a.UserID, &a.SessionType, &a.StartTime, &a.TimeElapsed, &a.IsRunning, &a.IsPaused, &a.SessionCount); err != nil {
			return 0, err
		}
		stale = append(stale, a)
	}

	reaped := 0
	for _, a := range stale {
		if err := s.reapOne(ctx, a); err != nil {
			return reaped, fmt.Errorf("reap session %d: %w", a.ID, err)
		}
		reaped++
	}
	return reaped, nil
}

func (s *Service) reapOne(ctx context.Context, a ActiveSession) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if a.TimeElapsed > 0 {
		_, err = tx.Exec(ctx, `
			INSERT INTO work_sessions (user_id, session_type, planned_duration, actual_duration, start_time, completed)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, a.UserID, a.SessionType, a.TimeElapsed, a.TimeElapsed, a.StartTime, false)
		if err != nil {
			return err
		}
	}
	if _, err = tx.Exec(ctx, `DELETE FROM active_timer_sessions WHERE id=$1`, a.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// StartReaper runs ReapStale on a fixed interval until ctx is done.
func (s *Service) StartReaper(ctx context.Context, interval, olderThan time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := s.ReapStale(ctx, olderThan); err != nil {
					log.Printf("timer: reap stale sessions: %v", err)
				} else if n > 0 {
					log.Printf("timer: force-closed %d stale session(s)", n)
				}
			}
		}
	}()
}

func (s *Service) publish(userID string, ev Event) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	s.hub.Broadcast(userID, payload)
}
