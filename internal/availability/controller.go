package availability

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

// GetOpenSlots returns slot labels with remaining seats for an activity/date.
func (ctrl *Controller) GetOpenSlots(c *gin.Context) {
	var query SlotListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation("activity_id and date are required"))
		return
	}
	if query.Date == "" {
		response.RespondError(c, apperrors.Validation("date is required"))
		return
	}

	activityID, err := uuid.Parse(query.ActivityID)
	if err != nil {
		response.RespondError(c, apperrors.Validation("invalid activity_id"))
		return
	}

	slots, err := ctrl.service.ListOpenSlots(c.Request.Context(), activityID, query.Date)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Available slots fetched successfully", OpenSlotsResponse{
		ActivityID:     query.ActivityID,
		Date:           query.Date,
		AvailableSlots: slots,
	}, nil)
}

// GetOpenDates returns dates that still have at least one open slot.
func (ctrl *Controller) GetOpenDates(c *gin.Context) {
	var query SlotListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation("activity_id is required"))
		return
	}

	activityID, err := uuid.Parse(query.ActivityID)
	if err != nil {
		response.RespondError(c, apperrors.Validation("invalid activity_id"))
		return
	}

	dates, err := ctrl.service.ListOpenDates(c.Request.Context(), activityID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Available dates fetched successfully", OpenDatesResponse{
		ActivityID:     query.ActivityID,
		AvailableDates: dates,
	}, nil)
}

// CreateSlots is the admin operation that seeds capacity for a date.
func (ctrl *Controller) CreateSlots(c *gin.Context) {
	var req CreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation(err.Error()))
		return
	}

	created, err := ctrl.service.CreateSlots(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Availability slots created successfully", gin.H{
		"activity_id":   req.ActivityID,
		"date":          req.Date,
		"slots_created": created,
	}, nil)
}
