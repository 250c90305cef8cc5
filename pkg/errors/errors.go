package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeValidation          = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeClassAlreadyStarted = "CLASS_ALREADY_STARTED"
	CodeNoAvailableSlots    = "NO_AVAILABLE_SLOTS"
	CodeDuplicateBooking    = "DUPLICATE_BOOKING"
	CodeInvalidTimezone     = "INVALID_TIMEZONE"
	CodeConflict            = "CONFLICT"
	CodeInternal            = "INTERNAL_ERROR"
)

// AppError is the error type every layer below the HTTP handlers returns.
// Code is machine readable, Message is safe to show to callers, Err is the
// wrapped cause and never leaves the process.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

func NotFoundWithID(resource string, id int64) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func ClassAlreadyStarted() *AppError {
	return &AppError{
		Code:       CodeClassAlreadyStarted,
		Message:    "Cannot book a class that has already started or ended",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": "class_id"},
	}
}

func NoAvailableSlots() *AppError {
	return &AppError{
		Code:       CodeNoAvailableSlots,
		Message:    "No available slots for this class",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": "class_id"},
	}
}

func DuplicateBooking() *AppError {
	return &AppError{
		Code:       CodeDuplicateBooking,
		Message:    "You have already booked this class",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": "client_email"},
	}
}

func InvalidTimezone(name string) *AppError {
	return &AppError{
		Code:       CodeInvalidTimezone,
		Message:    fmt.Sprintf("Invalid timezone: %s", name),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": "timezone"},
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError returns err as an AppError, wrapping unknown errors as internal
// so no raw error detail ever reaches a caller.
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
