package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"adventura/internal/shared/apperrors"
	"adventura/internal/shared/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService returns a canned error from every operation, for exercising the
// HTTP error envelope.
type stubService struct {
	err error
}

func (s *stubService) Reserve(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	return nil, s.err
}
func (s *stubService) CheckAvailability(ctx context.Context, query CheckAvailabilityQuery) (*AvailabilityCheckResponse, error) {
	return nil, s.err
}
func (s *stubService) GetBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	return nil, s.err
}
func (s *stubService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*BookingResponse, error) {
	return nil, s.err
}
func (s *stubService) UpdateStatus(ctx context.Context, id uuid.UUID, target Status) (*BookingResponse, error) {
	return nil, s.err
}
func (s *stubService) GetClientBookings(ctx context.Context, clientID uuid.UUID, query BookingListQuery) (*BookingListResponse, error) {
	return nil, s.err
}
func (s *stubService) GetProviderBookings(ctx context.Context, providerUserID uuid.UUID, query BookingListQuery) (*BookingListResponse, error) {
	return nil, s.err
}

func newTestRouter(t *testing.T, svc Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	engine := gin.New()
	controller := NewController(svc)
	engine.POST("/bookings/create", controller.CreateBooking)
	engine.POST("/bookings/:id/cancel", controller.CancelBooking)
	engine.GET("/bookings/:id", controller.GetBooking)
	return engine
}

type errorEnvelope struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Code       string `json:"code"`
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, errorEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestCreateBooking_SlotFullEnvelope(t *testing.T) {
	svc := &stubService{err: apperrors.Conflict(apperrors.CodeSlotFull, "only 1 seats remaining, requested 4")}
	engine := newTestRouter(t, svc)

	rec, envelope := doRequest(t, engine, http.MethodPost, "/bookings/create", gin.H{
		"activity_id":  uuid.New().String(),
		"client_id":    uuid.New().String(),
		"booking_date": "2026-09-15",
		"slot":         "10:00 AM",
		"total_price":  45.00,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, string(apperrors.CodeSlotFull), envelope.Code)
}

func TestCreateBooking_BindingRejectsBadDate(t *testing.T) {
	svc := &stubService{err: nil}
	engine := newTestRouter(t, svc)

	rec, envelope := doRequest(t, engine, http.MethodPost, "/bookings/create", gin.H{
		"activity_id":  uuid.New().String(),
		"client_id":    uuid.New().String(),
		"booking_date": "15/09/2026",
		"slot":         "10:00 AM",
		"total_price":  45.00,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(apperrors.CodeValidation), envelope.Code)
}

func TestCancelBooking_AlreadyCancelledEnvelope(t *testing.T) {
	svc := &stubService{err: apperrors.Conflict(apperrors.CodeAlreadyCancelled, "booking is already cancelled")}
	engine := newTestRouter(t, svc)

	rec, envelope := doRequest(t, engine, http.MethodPost, "/bookings/"+uuid.New().String()+"/cancel", gin.H{
		"reason": "changed plans",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(apperrors.CodeAlreadyCancelled), envelope.Code)
}

func TestGetBooking_NotFoundEnvelope(t *testing.T) {
	svc := &stubService{err: apperrors.NotFound(apperrors.CodeBookingNotFound, "booking not found")}
	engine := newTestRouter(t, svc)

	rec, envelope := doRequest(t, engine, http.MethodGet, "/bookings/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(apperrors.CodeBookingNotFound), envelope.Code)
}

func TestGetBooking_InvalidIDEnvelope(t *testing.T) {
	svc := &stubService{err: nil}
	engine := newTestRouter(t, svc)

	rec, envelope := doRequest(t, engine, http.MethodGet, "/bookings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(apperrors.CodeValidation), envelope.Code)
}
