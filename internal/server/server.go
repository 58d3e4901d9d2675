package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sipwell/hydrokit-backend/config"
	"github.com/sipwell/hydrokit-backend/internal/api"
	"github.com/sipwell/hydrokit-backend/internal/database"
	"github.com/sipwell/hydrokit-backend/internal/router"
	"github.com/sipwell/hydrokit-backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	http *http.Server
	db   *gorm.DB
}

// New wires services and handlers and builds the HTTP server. The S3
// config is optional; without it artwork uploads return 503. healthDB is
// the raw connection the /health probe pings.
func New(cfg *config.Config, db *gorm.DB, healthDB *database.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	eventService := service.NewEventService(db)
	hydrationService := service.NewHydrationService(profileService, eventService, redisClient)
	kitService := service.NewKitService(db)
	orderService := service.NewOrderService(db, kitService)
	coachService := service.NewCoachService(cfg.CoachAPIURL, cfg.CoachAPIKey, redisClient)

	var imageService *service.ImageService
	if s3Config != nil {
		imageService = service.NewImageService(s3Config)
	}

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(profileService),
		Events:    api.NewEventHandler(eventService, hydrationService),
		Hydration: api.NewHydrationHandler(hydrationService, coachService),
		Kits:      api.NewKitHandler(kitService, imageService),
		Orders:    api.NewOrderHandler(orderService),
	}

	engine := router.SetupRouter(handlers, authService, redisClient, healthDB)

	return &Server{
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
		db: db,
	}
}

// Start begins serving; it blocks until the listener stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
