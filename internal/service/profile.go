package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sipwell/hydrokit-backend/internal/hydration"
	"github.com/sipwell/hydrokit-backend/internal/models"
	"github.com/sipwell/hydrokit-backend/internal/types"
)

// ErrProfileNotFound means the user has no profile row at all. This is the
// one condition the hydration pipeline must surface instead of defaulting
// away.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies partial updates. Sex and body type are normalized
// together: changing sex re-resolves the body type against the new sex's
// table.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if req.Username != nil && *req.Username != "" {
		profile.Username = *req.Username
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.Sex != nil {
		profile.Sex = *req.Sex
	}
	if req.BodyType != nil {
		profile.BodyType = *req.BodyType
	}
	profile.BodyType = string(hydration.NormalizeBodyType(
		hydration.Sex(profile.Sex), hydration.BodyType(profile.BodyType)))

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}
