package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors_CodesAndStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"invalid input", InvalidInput("bad"), CodeInvalidInput, http.StatusBadRequest},
		{"validation", Validation("bad", nil), CodeValidation, http.StatusBadRequest},
		{"not found", NotFoundWithID("Class", 7), CodeNotFound, http.StatusNotFound},
		{"class started", ClassAlreadyStarted(), CodeClassAlreadyStarted, http.StatusBadRequest},
		{"no slots", NoAvailableSlots(), CodeNoAvailableSlots, http.StatusBadRequest},
		{"duplicate", DuplicateBooking(), CodeDuplicateBooking, http.StatusBadRequest},
		{"timezone", InvalidTimezone("Mars/Olympus"), CodeInvalidTimezone, http.StatusBadRequest},
		{"conflict", Conflict("busy"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", errors.New("cause")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.wantStatus)
			}
		})
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Class", 42)
	if err.Details["resource"] != "Class" {
		t.Errorf("Details[resource] = %v", err.Details["resource"])
	}
	if err.Details["id"] != int64(42) {
		t.Errorf("Details[id] = %v", err.Details["id"])
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("db down", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find wrapped cause")
	}
	wrapped := fmt.Errorf("outer: %w", err)
	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Error("errors.As failed to find AppError through wrapping")
	}
}

func TestAsAppError(t *testing.T) {
	original := DuplicateBooking()
	if got := AsAppError(original); got != original {
		t.Error("AsAppError rewrapped an existing AppError")
	}

	raw := errors.New("unexpected")
	got := AsAppError(raw)
	if got.Code != CodeInternal {
		t.Errorf("Code = %q, want %q", got.Code, CodeInternal)
	}
	if got.Message == raw.Error() {
		t.Error("raw error text leaked into the message")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(InvalidInput("x")) {
		t.Error("IsAppError(AppError) = false")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("IsAppError(plain) = true")
	}
}
