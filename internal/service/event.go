package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sipwell/hydrokit-backend/internal/hydration"
	"github.com/sipwell/hydrokit-backend/internal/models"
	"github.com/sipwell/hydrokit-backend/internal/types"
)

// ErrWeightPairIncomplete rejects workout events with only one of the
// pre/post weights: sweat loss needs both or neither.
var ErrWeightPairIncomplete = errors.New("pre and post weight must both be present or both absent")

// EventService records and queries intake events. Events are immutable:
// there is no update or delete path.
type EventService struct {
	db *gorm.DB
}

var _ IEventService = (*EventService)(nil)

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// LogEvent persists one event. A zero At timestamp is stamped with now.
// Negative amounts clamp to zero rather than rejecting; the recommendation
// pipeline stays resilient to sloppy client input.
func (s *EventService) LogEvent(ctx context.Context, userID uuid.UUID, req *types.LogEventRequest, now time.Time) (*models.IntakeEvent, error) {
	if (req.PreWeight == nil) != (req.PostWeight == nil) {
		return nil, ErrWeightPairIncomplete
	}

	at := req.At
	if at.IsZero() {
		at = now
	}

	amount := req.Amount
	if amount < 0 {
		amount = 0
	}

	event := models.IntakeEvent{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        req.Type,
		At:          at.UTC(),
		Amount:      amount,
		FoodID:      req.FoodID,
		Mood:        req.Mood,
		Activity:    req.Activity,
		PreWeight:   req.PreWeight,
		PostWeight:  req.PostWeight,
		DurationMin: req.DurationMin,
		Intensity:   req.Intensity,
	}

	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListDay returns a user's events for the UTC day containing at, oldest
// first. The UTC boundary is deliberate: every caller aggregates over the
// same window regardless of client timezone.
func (s *EventService) ListDay(ctx context.Context, userID uuid.UUID, at time.Time) ([]models.IntakeEvent, error) {
	dayStart := at.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var events []models.IntakeEvent
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND at >= ? AND at < ?", userID, dayStart, dayEnd).
		Order("at asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ToEngineEvents converts stored rows into the pure engine's event type.
func ToEngineEvents(events []models.IntakeEvent) []hydration.Event {
	out := make([]hydration.Event, 0, len(events))
	for _, e := range events {
		he := hydration.Event{
			Type:      hydration.EventType(e.Type),
			At:        e.At,
			Amount:    e.Amount,
			FoodID:    e.FoodID,
			Mood:      e.Mood,
			Activity:  e.Activity,
			Duration:  e.DurationMin,
			Intensity: hydration.ActivityIntensity(e.Intensity),
		}
		if e.PreWeight != nil {
			he.PreWeight = *e.PreWeight
		}
		if e.PostWeight != nil {
			he.PostWeight = *e.PostWeight
		}
		out = append(out, he)
	}
	return out
}
