package activities

import (
	"adventura/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupActivityRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - anyone can browse the catalog
	public := router.Group("/activities")
	{
		public.GET("", controller.ListActivities)  // GET /api/v1/activities
		public.GET("/:id", controller.GetActivity) // GET /api/v1/activities/:id
	}

	// Provider routes - listing management
	provider := router.Group("/provider/activities")
	provider.Use(middleware.JWTAuth(), middleware.RequireRoles("PROVIDER", "ADMIN"))
	{
		provider.POST("", controller.CreateActivity)           // POST /api/v1/provider/activities
		provider.PUT("/:id", controller.UpdateActivity)        // PUT /api/v1/provider/activities/:id
		provider.DELETE("/:id", controller.DeactivateActivity) // DELETE /api/v1/provider/activities/:id
	}
}
