package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"fitbook/pkg/config"
	apperrors "fitbook/pkg/errors"
	"fitbook/pkg/logger"
	"fitbook/pkg/model"
)

type mockClassService struct {
	listUpcomingFunc  func(ctx context.Context) ([]*model.FitnessClass, error)
	shiftTimezoneFunc func(ctx context.Context, timezoneName string) ([]*model.FitnessClass, error)
}

func (m *mockClassService) ListUpcoming(ctx context.Context) ([]*model.FitnessClass, error) {
	if m.listUpcomingFunc != nil {
		return m.listUpcomingFunc(ctx)
	}
	return []*model.FitnessClass{}, nil
}

func (m *mockClassService) ShiftTimezone(ctx context.Context, timezoneName string) ([]*model.FitnessClass, error) {
	if m.shiftTimezoneFunc != nil {
		return m.shiftTimezoneFunc(ctx, timezoneName)
	}
	return []*model.FitnessClass{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func newTestRouter(svc *mockClassService) *httprouter.Router {
	router := httprouter.New()
	NewClassHandler(svc, testConfig()).RegisterRoutes(router)
	return router
}

func sampleClass() *model.FitnessClass {
	return &model.FitnessClass{
		ID:             1,
		Name:           "Morning Yoga",
		ClassType:      model.ClassTypeYoga,
		StartTime:      time.Date(2026, 9, 10, 7, 0, 0, 0, time.UTC),
		Instructor:     "Jane Doe",
		TotalSlots:     20,
		AvailableSlots: 12,
	}
}

func TestListUpcoming_ReturnsArray(t *testing.T) {
	svc := &mockClassService{
		listUpcomingFunc: func(ctx context.Context) ([]*model.FitnessClass, error) {
			return []*model.FitnessClass{sampleClass()}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/classes/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	class := got[0]
	for _, field := range []string{"id", "name", "class_type", "datetime", "instructor", "total_slots", "available_slots"} {
		if _, ok := class[field]; !ok {
			t.Errorf("response missing field %q: %v", field, class)
		}
	}
}

func TestListUpcoming_EmptyArrayNotNull(t *testing.T) {
	router := newTestRouter(&mockClassService{})

	req := httptest.NewRequest(http.MethodGet, "/classes/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if strings.TrimSpace(rec.Body.String()) == "null" {
		t.Error("empty result serialized as null instead of []")
	}
}

func TestShiftTimezone_ReturnsShiftedClasses(t *testing.T) {
	var received string
	svc := &mockClassService{
		shiftTimezoneFunc: func(ctx context.Context, timezoneName string) ([]*model.FitnessClass, error) {
			received = timezoneName
			return []*model.FitnessClass{sampleClass()}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/timezone/", strings.NewReader(`{"timezone": "Asia/Kolkata"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if received != "Asia/Kolkata" {
		t.Errorf("service received timezone %q", received)
	}
}

func TestShiftTimezone_InvalidZone(t *testing.T) {
	svc := &mockClassService{
		shiftTimezoneFunc: func(ctx context.Context, timezoneName string) ([]*model.FitnessClass, error) {
			return nil, apperrors.InvalidTimezone(timezoneName)
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/timezone/", strings.NewReader(`{"timezone": "Nowhere/Land"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var errResp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("error response is not valid JSON: %v", err)
	}
	if errResp["code"] != apperrors.CodeInvalidTimezone {
		t.Errorf("code = %v, want %s", errResp["code"], apperrors.CodeInvalidTimezone)
	}
}

func TestShiftTimezone_MalformedBody(t *testing.T) {
	router := newTestRouter(&mockClassService{})

	req := httptest.NewRequest(http.MethodPost, "/timezone/", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
