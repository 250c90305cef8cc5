package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitbook/pkg/config"
	mongotx "fitbook/pkg/db/mongo"
	apperrors "fitbook/pkg/errors"
	"fitbook/pkg/logger"
	"fitbook/pkg/model"
)

// ────────────────────────────────────────────────
// Mock repository
// ────────────────────────────────────────────────

type mockClassRepository struct {
	findUpcomingFunc    func(ctx context.Context, now time.Time) ([]*model.FitnessClass, error)
	findAllFunc         func(ctx context.Context) ([]*model.FitnessClass, error)
	updateStartTimeFunc func(ctx context.Context, id int64, startTime time.Time) error
	updatedTimes        map[int64]time.Time
}

func (m *mockClassRepository) Create(ctx context.Context, class *model.FitnessClass) error {
	return nil
}

func (m *mockClassRepository) FindByID(ctx context.Context, id int64) (*model.FitnessClass, error) {
	return nil, nil
}

func (m *mockClassRepository) FindByIDs(ctx context.Context, ids []int64) ([]*model.FitnessClass, error) {
	return []*model.FitnessClass{}, nil
}

func (m *mockClassRepository) FindUpcoming(ctx context.Context, now time.Time) ([]*model.FitnessClass, error) {
	if m.findUpcomingFunc != nil {
		return m.findUpcomingFunc(ctx, now)
	}
	return []*model.FitnessClass{}, nil
}

func (m *mockClassRepository) FindAll(ctx context.Context) ([]*model.FitnessClass, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []*model.FitnessClass{}, nil
}

func (m *mockClassRepository) DecrementSlot(ctx context.Context, id int64) error { return nil }

func (m *mockClassRepository) UpdateStartTime(ctx context.Context, id int64, startTime time.Time) error {
	if m.updatedTimes == nil {
		m.updatedTimes = map[int64]time.Time{}
	}
	if m.updateStartTimeFunc != nil {
		if err := m.updateStartTimeFunc(ctx, id, startTime); err != nil {
			return err
		}
	}
	m.updatedTimes[id] = startTime
	return nil
}

func (m *mockClassRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockClassRepository) DeleteAll(ctx context.Context) error { return nil }

func (m *mockClassRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

// ────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────

func testConfig() *config.Config {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	return &config.Config{
		Log:             log,
		DefaultTimezone: "UTC",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
	}
}

func assertCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != wantCode {
		t.Fatalf("error code = %q, want %q (err: %v)", appErr.Code, wantCode, err)
	}
}

// ────────────────────────────────────────────────
// ListUpcoming
// ────────────────────────────────────────────────

func TestListUpcoming_FiltersByNow(t *testing.T) {
	var filterTime time.Time
	repo := &mockClassRepository{
		findUpcomingFunc: func(ctx context.Context, now time.Time) ([]*model.FitnessClass, error) {
			filterTime = now
			return []*model.FitnessClass{
				{ID: 1, Name: "Morning Yoga", StartTime: now.Add(time.Hour)},
			}, nil
		},
	}
	svc := NewClassService(repo, testConfig())

	before := time.Now().UTC()
	classes, err := svc.ListUpcoming(context.Background())
	if err != nil {
		t.Fatalf("ListUpcoming returned error: %v", err)
	}

	if len(classes) != 1 {
		t.Errorf("len(classes) = %d, want 1", len(classes))
	}
	if filterTime.Before(before) {
		t.Errorf("filter time %v predates the call at %v", filterTime, before)
	}
	if filterTime.Location() != time.UTC {
		t.Error("filter time is not UTC")
	}
}

func TestListUpcoming_RepositoryFailure(t *testing.T) {
	repo := &mockClassRepository{
		findUpcomingFunc: func(ctx context.Context, now time.Time) ([]*model.FitnessClass, error) {
			return nil, errors.New("cursor error")
		},
	}
	svc := NewClassService(repo, testConfig())

	_, err := svc.ListUpcoming(context.Background())
	assertCode(t, err, apperrors.CodeInternal)
}

// ────────────────────────────────────────────────
// ShiftTimezone
// ────────────────────────────────────────────────

func TestShiftTimezone_RequiresName(t *testing.T) {
	svc := NewClassService(&mockClassRepository{}, testConfig())

	_, err := svc.ShiftTimezone(context.Background(), "")
	assertCode(t, err, apperrors.CodeInvalidInput)
}

func TestShiftTimezone_RejectsUnknownZone(t *testing.T) {
	repo := &mockClassRepository{}
	svc := NewClassService(repo, testConfig())

	_, err := svc.ShiftTimezone(context.Background(), "Mars/Olympus")
	assertCode(t, err, apperrors.CodeInvalidTimezone)
	if len(repo.updatedTimes) != 0 {
		t.Error("classes were modified despite an invalid timezone")
	}
}

func TestShiftTimezone_RewritesAllClasses(t *testing.T) {
	// Stored 10:30 UTC wall clock, shifted to IST, lands at 05:00 UTC.
	stored := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)
	past := time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC)

	repo := &mockClassRepository{
		findAllFunc: func(ctx context.Context) ([]*model.FitnessClass, error) {
			return []*model.FitnessClass{
				{ID: 1, Name: "Morning Yoga", StartTime: stored},
				{ID: 2, Name: "Old Session", StartTime: past},
			}, nil
		},
	}
	svc := NewClassService(repo, testConfig())

	_, err := svc.ShiftTimezone(context.Background(), "Asia/Kolkata")
	if err != nil {
		t.Fatalf("ShiftTimezone returned error: %v", err)
	}

	if len(repo.updatedTimes) != 2 {
		t.Fatalf("updated %d classes, want 2 (past sessions shift too)", len(repo.updatedTimes))
	}

	want := time.Date(2026, 6, 15, 5, 0, 0, 0, time.UTC)
	if !repo.updatedTimes[1].Equal(want) {
		t.Errorf("class 1 shifted to %v, want %v", repo.updatedTimes[1].UTC(), want)
	}
}

func TestShiftTimezone_AllOrNothing(t *testing.T) {
	repo := &mockClassRepository{
		findAllFunc: func(ctx context.Context) ([]*model.FitnessClass, error) {
			return []*model.FitnessClass{
				{ID: 1, StartTime: time.Now().UTC()},
				{ID: 2, StartTime: time.Now().UTC()},
			}, nil
		},
		updateStartTimeFunc: func(ctx context.Context, id int64, startTime time.Time) error {
			if id == 2 {
				return errors.New("write conflict")
			}
			return nil
		},
	}
	svc := NewClassService(repo, testConfig())

	_, err := svc.ShiftTimezone(context.Background(), "Europe/London")
	assertCode(t, err, apperrors.CodeInternal)
}
