package availability

import (
	"adventura/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAvailabilityRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - clients browse open capacity before booking
	public := router.Group("/availability")
	{
		public.GET("", controller.GetOpenSlots)       // GET /api/v1/availability
		public.GET("/dates", controller.GetOpenDates) // GET /api/v1/availability/dates
	}

	// Admin routes - capacity seeding
	admin := router.Group("/admin/availability")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateSlots) // POST /api/v1/admin/availability
	}
}
