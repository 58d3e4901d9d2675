package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sipwell/hydrokit-backend/internal/api"
	"github.com/sipwell/hydrokit-backend/internal/database"
	"github.com/sipwell/hydrokit-backend/internal/middleware"
	"github.com/sipwell/hydrokit-backend/internal/service"
)

// Handlers collects all API handlers for route registration.
type Handlers struct {
	Auth      *api.AuthHandler
	Profile   *api.ProfileHandler
	Events    *api.EventHandler
	Hydration *api.HydrationHandler
	Kits      *api.KitHandler
	Orders    *api.OrderHandler
}

// SetupRouter configures the application routes. redisClient may be nil,
// which disables rate limiting, and healthDB may be nil, which reduces
// /health to a liveness probe (tests).
func SetupRouter(h Handlers, authService service.IAuthService, redisClient *redis.Client, healthDB *database.DB) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if healthDB != nil {
			if err := healthDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	h.Auth.RegisterRoutes(v1)
	h.Kits.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		h.Profile.RegisterRoutes(protected)
		h.Events.RegisterRoutes(protected)
		h.Orders.RegisterRoutes(protected)

		recommend := protected.Group("")
		if redisClient != nil {
			limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
				Window:    time.Minute,
				Limit:     30,
				KeyPrefix: "ratelimit:hydration",
			})
			recommend.Use(limiter.Middleware())
		}
		h.Hydration.RegisterRoutes(recommend)
	}

	staff := v1.Group("/staff")
	staff.Use(middleware.AuthMiddleware(authService), middleware.StaffOnly())
	{
		h.Orders.RegisterStaffRoutes(staff)
		h.Kits.RegisterStaffRoutes(staff)
	}

	return router
}
