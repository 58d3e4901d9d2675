// Package hydration implements the hydration-need estimation engine: body
// composition math, intake aggregation, gap calculation and the kit
// recommendation tables. Everything in this package is pure computation —
// callers supply the profile, the events and the clock.
package hydration

import (
	"log"
	"time"
)

// Sex is the biological sex used for body-composition lookups.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// BodyType is a coarse body-composition class. Valid values depend on sex;
// the legacy low/average/high aliases are still accepted from old profiles.
type BodyType string

const (
	BodyMuscular BodyType = "muscular"
	BodyAthletic BodyType = "athletic"
	BodyStocky   BodyType = "stocky"
	BodyToned    BodyType = "toned"
	BodyCurvy    BodyType = "curvy"

	// Legacy aliases kept for profiles created before the sex-specific
	// categories existed.
	BodyLow     BodyType = "low"
	BodyAverage BodyType = "average"
	BodyHigh    BodyType = "high"
)

// ActivityIntensity grades a workout event.
type ActivityIntensity string

const (
	IntensityLight    ActivityIntensity = "light"
	IntensityModerate ActivityIntensity = "moderate"
	IntensityIntense  ActivityIntensity = "intense"
)

// DefaultWeightKg is substituted when a profile carries a missing or
// non-positive weight. Logged as a warning, never raised as an error.
const DefaultWeightKg = 70.0

// DefaultActivity is synthesized when a day has no workout events so the
// rest of the pipeline always has an activity context.
const (
	DefaultActivity            = "desk_work"
	DefaultActivityDurationMin = 240
)

var bodyFatTable = map[Sex]map[BodyType]float64{
	Male: {
		BodyMuscular: 0.12,
		BodyAthletic: 0.15,
		BodyStocky:   0.22,
		BodyLow:      0.12,
		BodyAverage:  0.15,
		BodyHigh:     0.22,
	},
	Female: {
		BodyToned:    0.18,
		BodyAthletic: 0.22,
		BodyCurvy:    0.30,
		BodyLow:      0.18,
		BodyAverage:  0.22,
		BodyHigh:     0.30,
	},
}

// defaultBodyFat holds the per-sex fallback used when bodyType is absent
// from the table ("athletic" for both sexes).
var defaultBodyFat = map[Sex]float64{
	Male:   0.15,
	Female: 0.22,
}

// NormalizeBodyType resolves a stored body type against the table for the
// given sex, falling back to the sex-appropriate athletic default for
// out-of-range or legacy values.
func NormalizeBodyType(sex Sex, bodyType BodyType) BodyType {
	if table, ok := bodyFatTable[sex]; ok {
		if _, ok := table[bodyType]; ok {
			return bodyType
		}
	}
	return BodyAthletic
}

// BodyComposition is the derived physiology used by the gap engine.
type BodyComposition struct {
	BodyFatPercentage float64 `json:"body_fat_percentage"`
	LeanBodyMass      float64 `json:"lean_body_mass"`
}

// ComputeBodyComposition looks up body fat for (sex, bodyType) and derives
// lean body mass. Unknown body types resolve to the sex default rather than
// failing; a non-positive weight is replaced by DefaultWeightKg.
func ComputeBodyComposition(weightKg float64, sex Sex, bodyType BodyType) BodyComposition {
	if weightKg <= 0 {
		log.Printf("hydration: invalid weight %.1fkg, substituting default %.0fkg", weightKg, DefaultWeightKg)
		weightKg = DefaultWeightKg
	}

	table, ok := bodyFatTable[sex]
	if !ok {
		table = bodyFatTable[Male]
		sex = Male
	}

	fat, ok := table[bodyType]
	if !ok {
		fat = defaultBodyFat[sex]
	}

	return BodyComposition{
		BodyFatPercentage: fat,
		LeanBodyMass:      weightKg * (1 - fat),
	}
}

// EventType classifies a logged intake/activity event.
type EventType string

const (
	EventWater       EventType = "water"
	EventElectrolyte EventType = "electrolyte"
	EventProtein     EventType = "protein"
	EventWorkout     EventType = "workout"
	EventFood        EventType = "food"
)

// Event is one logged occurrence affecting hydration state. Amount is ml
// for water/electrolyte and g for protein/food.
type Event struct {
	Type       EventType
	At         time.Time
	Amount     float64
	FoodID     string
	Mood       string
	Activity   string
	PreWeight  float64
	PostWeight float64
	Duration   int
	Intensity  ActivityIntensity
}

// SweatLoss derives fluid loss in ml from pre/post workout weights.
// Negative differences are anomalous scale data and clamp to zero.
func (e Event) SweatLoss() float64 {
	if e.Type != EventWorkout || e.PreWeight <= 0 || e.PostWeight <= 0 {
		return 0
	}
	loss := (e.PreWeight - e.PostWeight) * 1000
	if loss < 0 {
		return 0
	}
	return loss
}

// FoodItem is a food event reduced to what the gap engine needs.
type FoodItem struct {
	FoodID string
	Grams  float64
}

// Activity is the period's latest workout context (or the synthesized
// desk-work default).
type Activity struct {
	Type        string
	DurationMin int
	Intensity   ActivityIntensity
	SweatLoss   float64
}

// IntakeSummary is the aggregate of a period's events.
type IntakeSummary struct {
	TotalWaterIntake float64
	Foods            []FoodItem
	LatestActivity   Activity
}

// AggregateIntake folds a period's events into the inputs the gap engine
// consumes. Water and electrolyte amounts sum into the water total; food
// events collect into a list (their water equivalent is a separate addend,
// resolved later); the most recent workout becomes the activity context.
func AggregateIntake(events []Event) IntakeSummary {
	summary := IntakeSummary{
		LatestActivity: Activity{
			Type:        DefaultActivity,
			DurationMin: DefaultActivityDurationMin,
			Intensity:   IntensityLight,
		},
	}

	var latest *Event
	for i := range events {
		e := events[i]
		switch e.Type {
		case EventWater, EventElectrolyte:
			if e.Amount > 0 {
				summary.TotalWaterIntake += e.Amount
			}
		case EventFood:
			summary.Foods = append(summary.Foods, FoodItem{FoodID: e.FoodID, Grams: e.Amount})
		case EventWorkout:
			if latest == nil || e.At.After(latest.At) {
				latest = &events[i]
			}
		}
	}

	if latest != nil {
		act := Activity{
			Type:        latest.Activity,
			DurationMin: latest.Duration,
			Intensity:   latest.Intensity,
			SweatLoss:   latest.SweatLoss(),
		}
		if act.Intensity == "" {
			act.Intensity = inferIntensity(act.SweatLoss)
		}
		summary.LatestActivity = act
	}

	return summary
}

// inferIntensity grades a workout by sweat loss when the user didn't log
// an explicit intensity.
func inferIntensity(sweatLossML float64) ActivityIntensity {
	switch {
	case sweatLossML > 800:
		return IntensityIntense
	case sweatLossML > 400:
		return IntensityModerate
	default:
		return IntensityLight
	}
}

// waterLossPerHour is the fractional bump on the base loss per workout
// hour at each intensity.
var waterLossPerHour = map[ActivityIntensity]float64{
	IntensityLight:    0.10,
	IntensityModerate: 0.20,
	IntensityIntense:  0.35,
}

// ComputeWaterLoss estimates the period's water loss in ml. The base term
// is 3% of lean body mass (30 ml/kg). Desk work adds nothing on top of the
// base; workouts scale it up by duration and intensity, monotonically.
func ComputeWaterLoss(leanBodyMass float64, activity string, durationMin int, intensity ActivityIntensity) float64 {
	base := leanBodyMass * 30

	if activity == DefaultActivity || activity == "" {
		return base
	}

	perHour, ok := waterLossPerHour[intensity]
	if !ok {
		perHour = waterLossPerHour[IntensityLight]
	}
	if durationMin < 0 {
		durationMin = 0
	}
	hours := float64(durationMin) / 60

	return base * (1 + perHour*hours)
}
