package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_TypedError(t *testing.T) {
	err := Conflict(CodeSlotFull, "only 2 seats remaining")

	resolved := Resolve(err)
	assert.Equal(t, CodeSlotFull, resolved.Code)
	assert.Equal(t, http.StatusConflict, resolved.Status)
	assert.Equal(t, "only 2 seats remaining", resolved.Message)
}

func TestResolve_WrappedError(t *testing.T) {
	inner := NotFound(CodeBookingNotFound, "booking not found")
	wrapped := fmt.Errorf("handling request: %w", inner)

	resolved := Resolve(wrapped)
	assert.Equal(t, CodeBookingNotFound, resolved.Code)
	assert.Equal(t, http.StatusNotFound, resolved.Status)
}

func TestResolve_UnknownError(t *testing.T) {
	resolved := Resolve(errors.New("connection reset"))
	assert.Equal(t, CodeInternal, resolved.Code)
	assert.Equal(t, http.StatusInternalServerError, resolved.Status)
}

func TestHasCode(t *testing.T) {
	err := Forbidden(CodeSelfBooking, "providers cannot book their own activities")

	assert.True(t, HasCode(err, CodeSelfBooking))
	assert.False(t, HasCode(err, CodeSlotFull))
	assert.True(t, HasCode(fmt.Errorf("wrap: %w", err), CodeSelfBooking))
	assert.False(t, HasCode(nil, CodeSelfBooking))
}

func TestInternal_PreservesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
}
