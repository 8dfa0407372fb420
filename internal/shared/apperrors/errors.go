package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable, machine-readable error code returned in API responses.
type Code string

const (
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeInvalidPartySize  Code = "INVALID_PARTY_SIZE"
	CodeActivityNotFound  Code = "ACTIVITY_NOT_FOUND"
	CodeBookingNotFound   Code = "BOOKING_NOT_FOUND"
	CodeSlotNotFound      Code = "NO_AVAILABILITY_FOR_SLOT"
	CodeSlotFull          Code = "SLOT_FULL"
	CodeAlreadyCancelled  Code = "ALREADY_CANCELLED"
	CodeInvalidTransition Code = "INVALID_STATUS_TRANSITION"
	CodeSelfBooking       Code = "FORBIDDEN_SELF_BOOKING"
	CodeInternal          Code = "INTERNAL_ERROR"
)

// Error is the typed error returned by services. Controllers map it to an
// HTTP status and a stable code string; callers can match with errors.As.
type Error struct {
	Code    Code
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes two taxonomy errors comparable by code, so sentinel-style checks
// like errors.Is(err, apperrors.Conflict(apperrors.CodeSlotFull, "")) work.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: message}
}

func ValidationCode(code Code, message string) *Error {
	return &Error{Code: code, Status: http.StatusBadRequest, Message: message}
}

func NotFound(code Code, message string) *Error {
	return &Error{Code: code, Status: http.StatusNotFound, Message: message}
}

func Conflict(code Code, message string) *Error {
	return &Error{Code: code, Status: http.StatusConflict, Message: message}
}

func Forbidden(code Code, message string) *Error {
	return &Error{Code: code, Status: http.StatusForbidden, Message: message}
}

func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Status: http.StatusInternalServerError, Message: "unexpected error", Err: err}
}

// Resolve extracts the taxonomy error from err, wrapping anything unknown as
// an internal error so persistence failures never leak driver details.
func Resolve(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// HasCode reports whether err carries the given taxonomy code.
func HasCode(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
