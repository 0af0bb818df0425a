package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend-focusflow/internal/shared/civil"

	"github.com/pashagolub/pgxmock/v3"
)

var errQuery = errors.New("query error")

var workSessionCols = []string{"id", "user_id", "session_type", "planned_duration", "actual_duration", "start_time", "completed"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestCreateWorkSession(t *testing.T) {
	mock := newMock(t)

	start := time.Now().Add(-time.Hour)
	mock.ExpectQuery(`INSERT INTO work_sessions`).
		WithArgs("user-1", "work", 1500, 1400, start, true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	svc := NewService(mock)
	ws, err := svc.Create(context.Background(), "user-1", CreateRequest{
		SessionType:     "work",
		PlannedDuration: 1500,
		ActualDuration:  1400,
		StartTime:       start,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ws.ID != 11 || !ws.Completed {
		t.Fatalf("unexpected session: %+v", ws)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateStopwatchEchoesPlanned(t *testing.T) {
	mock := newMock(t)

	start := time.Now()
	mock.ExpectQuery(`INSERT INTO work_sessions`).
		WithArgs("user-1", "work", 600, 600, start, true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	svc := NewService(mock)
	ws, err := svc.Create(context.Background(), "user-1", CreateRequest{
		SessionType:    "work",
		ActualDuration: 600,
		StartTime:      start,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ws.PlannedDuration != 600 {
		t.Fatalf("expected planned=actual in stopwatch mode, got %d", ws.PlannedDuration)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(nil)

	if _, err := svc.Create(context.Background(), "user-1", CreateRequest{SessionType: "nap"}); !errors.Is(err, ErrInvalidSessionType) {
		t.Fatalf("expected ErrInvalidSessionType, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", CreateRequest{SessionType: "work", ActualDuration: -5}); !errors.Is(err, ErrNegativeDuration) {
		t.Fatalf("expected ErrNegativeDuration, got %v", err)
	}
}

func TestRecent(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT id, user_id, session_type, planned_duration, actual_duration, start_time, completed`).
		WithArgs("user-1", 10).
		WillReturnRows(pgxmock.NewRows(workSessionCols).
			AddRow(int64(2), "user-1", "work", 1500, 1500, time.Now(), true).
			AddRow(int64(1), "user-1", "break", 300, 280, time.Now().Add(-time.Hour), true))

	svc := NewService(mock)
	sessions, err := svc.Recent(context.Background(), "user-1")
	if err != nil || len(sessions) != 2 {
		t.Fatalf("recent: %v (%d)", err, len(sessions))
	}
}

// A session stored at 2024-01-15T04:30:00Z is 23:30 on Jan 14 in New
// York; by-date for the 14th must return it and the 15th must not.
func TestByDateUsesCivilDay(t *testing.T) {
	mock := newMock(t)

	loc, _ := civil.Resolve("America/New_York")
	sessionStart := time.Date(2024, 1, 15, 4, 30, 0, 0, time.UTC)

	jan14Start := time.Date(2024, 1, 14, 5, 0, 0, 0, time.UTC)
	jan15Start := time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, user_id, session_type, planned_duration, actual_duration, start_time, completed`).
		WithArgs("user-1", jan14Start, jan15Start).
		WillReturnRows(pgxmock.NewRows(workSessionCols).
			AddRow(int64(1), "user-1", "work", 1500, 1500, sessionStart, true))

	svc := NewService(mock)
	sessions, err := svc.ByDate(context.Background(), "user-1", loc, "2024-01-14")
	if err != nil || len(sessions) != 1 {
		t.Fatalf("by date: %v (%d)", err, len(sessions))
	}

	mock.ExpectQuery(`SELECT id, user_id, session_type, planned_duration, actual_duration, start_time, completed`).
		WithArgs("user-1", jan15Start, time.Date(2024, 1, 16, 5, 0, 0, 0, time.UTC)).
		WillReturnRows(pgxmock.NewRows(workSessionCols))

	sessions, err = svc.ByDate(context.Background(), "user-1", loc, "2024-01-15")
	if err != nil || len(sessions) != 0 {
		t.Fatalf("expected empty day, got %d", len(sessions))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestByDateBadDate(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.ByDate(context.Background(), "user-1", time.UTC, "15-01-2024"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestByWindowQueryError(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT id, user_id, session_type, planned_duration, actual_duration, start_time, completed`).
		WithArgs("user-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errQuery)

	svc := NewService(mock)
	_, err := svc.ByWindow(context.Background(), "user-1", civil.Window{Start: time.Now().Add(-time.Hour), End: time.Now()})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestWorkInWindowFiltersType(t *testing.T) {
	mock := newMock(t)

	w := civil.Window{
		Start: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
	}
	mock.ExpectQuery(`session_type='work'`).
		WithArgs("user-1", w.Start, w.End).
		WillReturnRows(pgxmock.NewRows(workSessionCols).
			AddRow(int64(1), "user-1", "work", 1500, 1500, w.Start.Add(time.Hour), true))

	svc := NewService(mock)
	sessions, err := svc.WorkInWindow(context.Background(), "user-1", w)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("work in window: %v (%d)", err, len(sessions))
	}
}
