package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sipwell/hydrokit-backend/internal/hydration"
	"github.com/sipwell/hydrokit-backend/internal/models"
)

const gapCacheTTL = 5 * time.Minute

// HydrationService wires profiles and logged events into the pure
// estimation engine. The redis client is optional; without it results are
// simply recomputed per request.
type HydrationService struct {
	profiles IProfileService
	events   IEventService
	redis    *redis.Client
}

var _ IHydrationService = (*HydrationService)(nil)

func NewHydrationService(profiles IProfileService, events IEventService, redisClient *redis.Client) *HydrationService {
	return &HydrationService{
		profiles: profiles,
		events:   events,
		redis:    redisClient,
	}
}

// Recommendation is the archetype and ordered kit list for a user's
// current state, with the gap breakdown that produced it.
type Recommendation struct {
	Archetype hydration.Archetype `json:"archetype"`
	Kits      []hydration.KitName `json:"kits"`
	Gap       hydration.GapResult `json:"gap"`
}

// Gap computes the user's hydration gap for the UTC day containing now.
// A missing profile is an error — the engine never invents a physiology —
// while missing optional fields inside the profile resolve to documented
// defaults.
func (s *HydrationService) Gap(ctx context.Context, userID uuid.UUID, now time.Time) (*hydration.GapResult, error) {
	if cached := s.cachedGap(ctx, userID, now); cached != nil {
		return cached, nil
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.events.ListDay(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	result := computeGap(profile, events)
	s.cacheGap(ctx, userID, now, result)
	return result, nil
}

func computeGap(profile *models.UserProfile, events []models.IntakeEvent) *hydration.GapResult {
	summary := hydration.AggregateIntake(ToEngineEvents(events))
	act := summary.LatestActivity

	result := hydration.CalculateHydrationGap(
		profile.WeightKg,
		hydration.Sex(profile.Sex),
		hydration.BodyType(profile.BodyType),
		act.Type,
		act.DurationMin,
		act.Intensity,
		summary.TotalWaterIntake,
		summary.Foods,
	)
	return &result
}

// Recommend maps the user's state plus an optional activity/mood override
// onto an archetype and its ordered kit list. When no activity is supplied
// the day's latest logged activity is used.
func (s *HydrationService) Recommend(ctx context.Context, userID uuid.UUID, now time.Time, activity, mood string) (*Recommendation, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.events.ListDay(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	summary := hydration.AggregateIntake(ToEngineEvents(events))
	if activity == "" {
		activity = summary.LatestActivity.Type
	}

	gap := computeGap(profile, events)
	gapFlag := gap.HydrationGapML > 200

	archetype := hydration.ArchetypeFor(activity, now, gapFlag, mood)
	return &Recommendation{
		Archetype: archetype,
		Kits:      hydration.KitsFor(archetype),
		Gap:       *gap,
	}, nil
}

// BestKit reconciles every event of the day into a single weighted-score
// recommendation instead of reading only the latest activity.
func (s *HydrationService) BestKit(ctx context.Context, userID uuid.UUID, now time.Time) (hydration.KitScore, []hydration.KitScore, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return hydration.KitScore{}, nil, err
	}

	events, err := s.events.ListDay(ctx, userID, now)
	if err != nil {
		return hydration.KitScore{}, nil, err
	}

	gap := computeGap(profile, events)
	gapFlag := gap.HydrationGapML > 200

	engineEvents := ToEngineEvents(events)
	inputs := make([]hydration.ScoreInput, 0, len(engineEvents))
	for _, e := range engineEvents {
		inputs = append(inputs, hydration.ScoreInput{
			Activity:     e.Activity,
			At:           e.At,
			HydrationGap: gapFlag,
			Mood:         e.Mood,
			SweatLossML:  e.SweatLoss(),
		})
	}

	best, scores := hydration.BestKit(inputs)
	return best, scores, nil
}

// InvalidateDay drops the cached gap for the day containing at. Called
// after a new event lands so the next gap read reflects it.
func (s *HydrationService) InvalidateDay(ctx context.Context, userID uuid.UUID, at time.Time) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, gapCacheKey(userID, at)).Err(); err != nil {
		log.Printf("hydration: failed to invalidate gap cache: %v", err)
	}
}

func gapCacheKey(userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("hydration:gap:%s:%s", userID, now.UTC().Format("2006-01-02"))
}

func (s *HydrationService) cachedGap(ctx context.Context, userID uuid.UUID, now time.Time) *hydration.GapResult {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, gapCacheKey(userID, now)).Bytes()
	if err != nil {
		return nil
	}
	var result hydration.GapResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return &result
}

func (s *HydrationService) cacheGap(ctx context.Context, userID uuid.UUID, now time.Time, result *hydration.GapResult) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, gapCacheKey(userID, now), data, gapCacheTTL).Err(); err != nil {
		log.Printf("hydration: failed to cache gap result: %v", err)
	}
}
