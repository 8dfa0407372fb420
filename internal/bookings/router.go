package bookings

import (
	"adventura/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller *Controller) {
	// Authenticated booking routes
	bookings := router.Group("/bookings")
	bookings.Use(middleware.JWTAuth())
	{
		bookings.POST("/create", controller.CreateBooking)                // POST /api/v1/bookings/create
		bookings.GET("/check-availability", controller.CheckAvailability) // GET /api/v1/bookings/check-availability
		bookings.GET("/:id", controller.GetBooking)                       // GET /api/v1/bookings/:id
		bookings.POST("/:id/cancel", controller.CancelBooking)            // POST /api/v1/bookings/:id/cancel
	}

	// Booking history per party
	history := router.Group("")
	history.Use(middleware.JWTAuth())
	{
		history.GET("/clients/:clientId/bookings", controller.GetClientBookings)   // GET /api/v1/clients/:clientId/bookings
		history.GET("/providers/:userId/bookings", controller.GetProviderBookings) // GET /api/v1/providers/:userId/bookings
	}

	// Admin status machine
	admin := router.Group("/admin/bookings")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.PATCH("/:id/status", controller.UpdateBookingStatus) // PATCH /api/v1/admin/bookings/:id/status
	}
}
