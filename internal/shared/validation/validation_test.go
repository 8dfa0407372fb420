package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Date string `validate:"omitempty,bookingdate"`
	Slot string `validate:"omitempty,slotlabel"`
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("bookingdate", validBookingDate))
	require.NoError(t, v.RegisterValidation("slotlabel", validSlotLabel))
	return v
}

func TestBookingDateValidator(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Struct(testPayload{Date: "2026-09-15"}))
	assert.NoError(t, v.Struct(testPayload{Date: "2026-02-28"}))

	assert.Error(t, v.Struct(testPayload{Date: "15-09-2026"}))
	assert.Error(t, v.Struct(testPayload{Date: "2026-13-01"}))
	assert.Error(t, v.Struct(testPayload{Date: "not-a-date"}))
}

func TestSlotLabelValidator(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Struct(testPayload{Slot: "10:00 AM"}))
	assert.NoError(t, v.Struct(testPayload{Slot: "1:30 PM"}))
	assert.NoError(t, v.Struct(testPayload{Slot: "12:45 PM"}))

	assert.Error(t, v.Struct(testPayload{Slot: "13:00 PM"}))
	assert.Error(t, v.Struct(testPayload{Slot: "10:00"}))
	assert.Error(t, v.Struct(testPayload{Slot: "10:00 am"}))
	assert.Error(t, v.Struct(testPayload{Slot: "0:30 AM"}))
}
