package bookings

import (
	"net/http"

	"adventura/internal/shared/apperrors"
	"adventura/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateBooking handles POST /bookings/create
func (ctrl *Controller) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation(err.Error()))
		return
	}

	booking, err := ctrl.service.Reserve(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// CheckAvailability handles GET /bookings/check-availability
func (ctrl *Controller) CheckAvailability(c *gin.Context) {
	var query CheckAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation(err.Error()))
		return
	}

	result, err := ctrl.service.CheckAvailability(c.Request.Context(), query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Availability checked successfully", result, nil)
}

// GetBooking handles GET /bookings/:id
func (ctrl *Controller) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, apperrors.Validation("invalid booking ID"))
		return
	}

	booking, err := ctrl.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking fetched successfully", booking, nil)
}

// CancelBooking handles POST /bookings/:id/cancel
func (ctrl *Controller) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, apperrors.Validation("invalid booking ID"))
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.RespondError(c, apperrors.Validation(err.Error()))
		return
	}

	booking, err := ctrl.service.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

// UpdateBookingStatus handles PATCH /admin/bookings/:id/status
func (ctrl *Controller) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, apperrors.Validation("invalid booking ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation(err.Error()))
		return
	}

	booking, err := ctrl.service.UpdateStatus(c.Request.Context(), id, Status(req.Status))
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking status updated successfully", booking, nil)
}

// GetClientBookings handles GET /clients/:clientId/bookings
func (ctrl *Controller) GetClientBookings(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("clientId"))
	if err != nil {
		response.RespondError(c, apperrors.Validation("invalid client ID"))
		return
	}

	var query BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation(err.Error()))
		return
	}

	list, err := ctrl.service.GetClientBookings(c.Request.Context(), clientID, query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Client bookings fetched successfully", list, nil)
}

// GetProviderBookings handles GET /providers/:userId/bookings
func (ctrl *Controller) GetProviderBookings(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.RespondError(c, apperrors.Validation("invalid provider user ID"))
		return
	}

	var query BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation(err.Error()))
		return
	}

	list, err := ctrl.service.GetProviderBookings(c.Request.Context(), userID, query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Provider bookings fetched successfully", list, nil)
}
