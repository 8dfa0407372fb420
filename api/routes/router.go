// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"adventura/internal/activities"
	"adventura/internal/availability"
	"adventura/internal/bookings"
	"adventura/internal/notifications"
	"adventura/internal/shared/config"
	"adventura/internal/shared/database"
	"adventura/internal/users"
	"adventura/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config  *config.Config
	db      *database.DB
	cache   cache.Service
	emitter notifications.Service

	// Cross-feature services for dependency injection
	activityService     activities.Service
	availabilityService availability.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, emitter notifications.Service) *Router {
	return &Router{
		config:  cfg,
		db:      db,
		cache:   cacheService,
		emitter: emitter,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Catalog routes (must be before availability/bookings for dependency injection)
		r.setupActivityRoutes(api)

		// Availability ledger routes
		r.setupAvailabilityRoutes(api)

		// Reservation routes
		r.setupBookingRoutes(api)
	}
}

// ActivityService exposes the catalog service for background jobs.
func (r *Router) ActivityService() activities.Service {
	return r.activityService
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "adventura-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "adventura-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupActivityRoutes configures activity catalog routes
func (r *Router) setupActivityRoutes(rg *gin.RouterGroup) {
	activityRepo := activities.NewRepository(r.db.GetPostgreSQL())
	activityService := activities.NewService(activityRepo)
	activityService.SetCacheService(r.cache)
	activityController := activities.NewController(activityService)

	// Store activity service for dependency injection
	r.activityService = activityService

	activities.SetupActivityRoutes(rg, activityController)
}

// setupAvailabilityRoutes configures availability ledger routes
func (r *Router) setupAvailabilityRoutes(rg *gin.RouterGroup) {
	availabilityRepo := availability.NewRepository(r.db.GetPostgreSQL())
	availabilityService := availability.NewService(availabilityRepo, r.activityService)
	availabilityService.SetCacheService(r.cache)
	availabilityController := availability.NewController(availabilityService)

	// Store availability service for dependency injection
	r.availabilityService = availabilityService

	availability.SetupAvailabilityRoutes(rg, availabilityController)
}

// setupBookingRoutes configures reservation routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	userRepo := users.NewRepository(r.db.GetPostgreSQL())

	bookingService := bookings.NewService(
		bookingRepo,
		activities.NewBookingCatalogAdapter(r.activityService),
		r.availabilityService,
		r.emitter,
		users.NewDirectoryAdapter(userRepo),
	)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}
