package activities

import (
	"net/http"

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

// CreateActivity handles POST /api/v1/provider/activities
func (c *Controller) CreateActivity(ctx *gin.Context) {
	var req CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid provider ID", nil, nil)
		return
	}

	activity, err := c.service.CreateActivity(ctx.Request.Context(), providerID, req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Activity created successfully", activity, nil)
}

// GetActivity handles GET /api/v1/activities/:id
func (c *Controller) GetActivity(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid activity ID", nil, nil)
		return
	}

	activity, err := c.service.GetActivity(ctx.Request.Context(), id)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Activity retrieved successfully", activity, nil)
}

// ListActivities handles GET /api/v1/activities
func (c *Controller) ListActivities(ctx *gin.Context) {
	var query ActivityListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	activities, total, err := c.service.ListActivities(ctx.Request.Context(), query)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Activities retrieved successfully", gin.H{
		"activities": activities,
		"total":      total,
		"page":       query.Page,
		"limit":      query.Limit,
	}, nil)
}

// UpdateActivity handles PUT /api/v1/provider/activities/:id?provider_id=
func (c *Controller) UpdateActivity(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid activity ID", nil, nil)
		return
	}

	providerID, err := uuid.Parse(ctx.Query("provider_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid provider ID", nil, nil)
		return
	}

	var req UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	activity, err := c.service.UpdateActivity(ctx.Request.Context(), id, providerID, req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Activity updated successfully", activity, nil)
}

// DeactivateActivity handles DELETE /api/v1/provider/activities/:id?provider_id=
func (c *Controller) DeactivateActivity(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid activity ID", nil, nil)
		return
	}

	providerID, err := uuid.Parse(ctx.Query("provider_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid provider ID", nil, nil)
		return
	}

	if err := c.service.DeactivateActivity(ctx.Request.Context(), id, providerID); err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Activity deactivated successfully", nil, nil)
}
