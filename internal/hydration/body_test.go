package hydration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeBodyCompositionKnownTypes(t *testing.T) {
	comp := ComputeBodyComposition(70, Male, BodyAthletic)
	assert.Equal(t, 0.15, comp.BodyFatPercentage)
	assert.InDelta(t, 59.5, comp.LeanBodyMass, 0.001)

	comp = ComputeBodyComposition(60, Female, BodyCurvy)
	assert.Equal(t, 0.30, comp.BodyFatPercentage)
	assert.InDelta(t, 42.0, comp.LeanBodyMass, 0.001)
}

func TestComputeBodyCompositionBounds(t *testing.T) {
	for _, sex := range []Sex{Male, Female} {
		for bodyType := range bodyFatTable[sex] {
			comp := ComputeBodyComposition(80, sex, bodyType)
			assert.Greater(t, comp.LeanBodyMass, 0.0)
			assert.Less(t, comp.LeanBodyMass, 80.0)
		}
	}
}

func TestComputeBodyCompositionUnknownTypeFallsBack(t *testing.T) {
	unknown := ComputeBodyComposition(70, Male, "unknown_type")
	athletic := ComputeBodyComposition(70, Male, BodyAthletic)
	assert.Equal(t, athletic, unknown)

	unknownF := ComputeBodyComposition(70, Female, "unknown_type")
	athleticF := ComputeBodyComposition(70, Female, BodyAthletic)
	assert.Equal(t, athleticF, unknownF)
}

func TestComputeBodyCompositionLegacyAliases(t *testing.T) {
	assert.Equal(t,
		ComputeBodyComposition(70, Male, BodyMuscular),
		ComputeBodyComposition(70, Male, BodyLow))
	assert.Equal(t,
		ComputeBodyComposition(70, Female, BodyCurvy),
		ComputeBodyComposition(70, Female, BodyHigh))
}

func TestComputeBodyCompositionInvalidWeightUsesDefault(t *testing.T) {
	comp := ComputeBodyComposition(0, Male, BodyAthletic)
	assert.InDelta(t, DefaultWeightKg*0.85, comp.LeanBodyMass, 0.001)

	comp = ComputeBodyComposition(-12, Male, BodyAthletic)
	assert.InDelta(t, DefaultWeightKg*0.85, comp.LeanBodyMass, 0.001)
}

func TestSweatLoss(t *testing.T) {
	e := Event{Type: EventWorkout, PreWeight: 81.2, PostWeight: 80.5}
	assert.InDelta(t, 700, e.SweatLoss(), 0.001)

	// scale gain during a workout is anomalous, clamp to zero
	e = Event{Type: EventWorkout, PreWeight: 80.0, PostWeight: 80.4}
	assert.Equal(t, 0.0, e.SweatLoss())

	// missing either weight means no derived loss
	e = Event{Type: EventWorkout, PreWeight: 80.0}
	assert.Equal(t, 0.0, e.SweatLoss())

	e = Event{Type: EventWater, PreWeight: 81, PostWeight: 80}
	assert.Equal(t, 0.0, e.SweatLoss())
}

func TestAggregateIntakeSumsWaterAndElectrolyte(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []Event{
		{Type: EventWater, At: now, Amount: 250},
		{Type: EventElectrolyte, At: now, Amount: 500},
		{Type: EventWater, At: now, Amount: 330},
		{Type: EventProtein, At: now, Amount: 30},
		{Type: EventFood, At: now, Amount: 200, FoodID: "soup"},
	}

	s := AggregateIntake(events)
	assert.InDelta(t, 1080, s.TotalWaterIntake, 0.001)
	assert.Len(t, s.Foods, 1)
	assert.Equal(t, "soup", s.Foods[0].FoodID)
}

func TestAggregateIntakeDefaultActivity(t *testing.T) {
	s := AggregateIntake(nil)
	assert.Equal(t, DefaultActivity, s.LatestActivity.Type)
	assert.Equal(t, DefaultActivityDurationMin, s.LatestActivity.DurationMin)
	assert.Equal(t, IntensityLight, s.LatestActivity.Intensity)
}

func TestAggregateIntakePicksLatestWorkout(t *testing.T) {
	morning := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	evening := morning.Add(11 * time.Hour)
	events := []Event{
		{Type: EventWorkout, At: evening, Activity: "run", Duration: 45, Intensity: IntensityIntense},
		{Type: EventWorkout, At: morning, Activity: "hiit", Duration: 30, Intensity: IntensityModerate},
	}

	s := AggregateIntake(events)
	assert.Equal(t, "run", s.LatestActivity.Type)
	assert.Equal(t, 45, s.LatestActivity.DurationMin)
	assert.Equal(t, IntensityIntense, s.LatestActivity.Intensity)
}

func TestAggregateIntakeInfersIntensityFromSweatLoss(t *testing.T) {
	now := time.Now()
	cases := []struct {
		pre, post float64
		want      ActivityIntensity
	}{
		{81.0, 80.0, IntensityIntense},  // 1000 ml
		{80.5, 80.0, IntensityModerate}, // 500 ml
		{80.2, 80.0, IntensityLight},    // 200 ml
	}
	for _, c := range cases {
		s := AggregateIntake([]Event{{
			Type: EventWorkout, At: now, Activity: "run",
			PreWeight: c.pre, PostWeight: c.post, Duration: 60,
		}})
		assert.Equal(t, c.want, s.LatestActivity.Intensity)
	}
}

func TestComputeWaterLossDeskBase(t *testing.T) {
	loss := ComputeWaterLoss(59.5, DefaultActivity, DefaultActivityDurationMin, IntensityLight)
	assert.InDelta(t, 1785, loss, 0.001)
}

func TestComputeWaterLossMonotone(t *testing.T) {
	lbm := 59.5
	desk := ComputeWaterLoss(lbm, DefaultActivity, 240, IntensityLight)
	lightRun := ComputeWaterLoss(lbm, "run", 30, IntensityLight)
	moderateRun := ComputeWaterLoss(lbm, "run", 30, IntensityModerate)
	intenseRun := ComputeWaterLoss(lbm, "run", 30, IntensityIntense)
	longIntense := ComputeWaterLoss(lbm, "run", 90, IntensityIntense)

	assert.Greater(t, lightRun, desk)
	assert.Greater(t, moderateRun, lightRun)
	assert.Greater(t, intenseRun, moderateRun)
	assert.Greater(t, longIntense, intenseRun)
}
