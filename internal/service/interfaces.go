package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sipwell/hydrokit-backend/internal/hydration"
	"github.com/sipwell/hydrokit-backend/internal/models"
	"github.com/sipwell/hydrokit-backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GenerateToken(userID uuid.UUID, username string, isStaff bool) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
}

// IEventService defines the interface for intake event operations
type IEventService interface {
	LogEvent(ctx context.Context, userID uuid.UUID, req *types.LogEventRequest, now time.Time) (*models.IntakeEvent, error)
	ListDay(ctx context.Context, userID uuid.UUID, at time.Time) ([]models.IntakeEvent, error)
}

// IHydrationService defines the interface for gap and recommendation
// operations
type IHydrationService interface {
	Gap(ctx context.Context, userID uuid.UUID, now time.Time) (*hydration.GapResult, error)
	Recommend(ctx context.Context, userID uuid.UUID, now time.Time, activity, mood string) (*Recommendation, error)
	BestKit(ctx context.Context, userID uuid.UUID, now time.Time) (hydration.KitScore, []hydration.KitScore, error)
	InvalidateDay(ctx context.Context, userID uuid.UUID, at time.Time)
}

// IKitService defines the interface for kit catalog operations
type IKitService interface {
	ListKits(ctx context.Context) ([]models.Kit, error)
	GetKit(ctx context.Context, name string) (*models.Kit, error)
	SimilarKits(ctx context.Context, name string, limit int) ([]models.Kit, error)
	SetArtwork(ctx context.Context, name, url string) (*models.Kit, error)
	SeedCatalog(ctx context.Context) error
}

// IOrderService defines the interface for kit order operations
type IOrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *types.CreateOrderRequest) (*models.KitOrder, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]models.KitOrder, error)
	ListAllOrders(ctx context.Context, status string) ([]models.KitOrder, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*models.KitOrder, error)
}

// ICoachService defines the interface for the opaque coaching text
// producer
type ICoachService interface {
	CoachMessage(ctx context.Context, question string, gap *hydration.GapResult) (string, error)
}
