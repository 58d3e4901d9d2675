package hydration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGapBoundaries(t *testing.T) {
	cases := []struct {
		gap  float64
		want GapContext
	}{
		{1500, ContextSevere},
		{1000.01, ContextSevere},
		{1000, ContextModerate}, // strict >, 1000 itself is moderate
		{700, ContextModerate},
		{500, ContextMild}, // strict >, 500 itself is mild
		{300, ContextMild},
		{200, ContextOptimal},
		{0, ContextOptimal},
		{-200, ContextOptimal}, // strict <, -200 itself is optimal
		{-200.01, ContextExcess},
		{-900, ContextExcess},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyGap(c.gap), "gap=%v", c.gap)
	}
}

func TestComputeTargets(t *testing.T) {
	targets := ComputeTargets(59.5, 0)
	assert.InDelta(t, 1785, targets.WaterML, 0.001)
	assert.InDelta(t, 95.2, targets.ProteinG, 0.001)
	assert.InDelta(t, 1487.5, targets.SodiumMG, 0.001)
	assert.InDelta(t, 3391.5, targets.PotassiumMG, 0.001)
}

func TestComputeTargetsProteinOverride(t *testing.T) {
	targets := ComputeTargets(50, 1.2)
	assert.InDelta(t, 60, targets.ProteinG, 0.001)
}

func TestFoodWaterEquivalentFallback(t *testing.T) {
	assert.Equal(t, 300.0, FoodWaterEquivalent("soup"))
	assert.Equal(t, float64(defaultFoodWaterML), FoodWaterEquivalent("mystery_snack"))
}

func TestCalculateHydrationGapDefaultDeskScenario(t *testing.T) {
	// 70kg male athletic: fat 0.15, LBM 59.5, desk-work loss 1785ml.
	// 500ml drunk, nothing eaten: gap 1285ml, which reads as severe.
	res := CalculateHydrationGap(70, Male, BodyAthletic, DefaultActivity, DefaultActivityDurationMin, IntensityLight, 500, nil)

	assert.InDelta(t, 59.5, res.LeanBodyMass, 0.001)
	assert.InDelta(t, 1785, res.WaterLossML, 0.001)
	assert.Equal(t, 0.0, res.WaterFromFoodML)
	assert.InDelta(t, 1785, res.RecommendedML, 0.001)
	assert.InDelta(t, 1285, res.HydrationGapML, 0.001)
	assert.Equal(t, ContextSevere, res.Context)
	assert.InDelta(t, 1785, res.Targets.WaterML, 0.001)
}

func TestCalculateHydrationGapWithFoodAndSurplus(t *testing.T) {
	foods := []FoodItem{{FoodID: "soup"}, {FoodID: "fruit"}}
	res := CalculateHydrationGap(70, Male, BodyAthletic, DefaultActivity, 240, IntensityLight, 2600, foods)

	assert.InDelta(t, 420, res.WaterFromFoodML, 0.001)
	assert.InDelta(t, 2205, res.RecommendedML, 0.001)
	assert.InDelta(t, -395, res.HydrationGapML, 0.001)
	assert.Equal(t, ContextExcess, res.Context)
}

func TestCalculateHydrationGapIdempotent(t *testing.T) {
	foods := []FoodItem{{FoodID: "salad"}}
	first := CalculateHydrationGap(82, Female, BodyToned, "run", 40, IntensityModerate, 900, foods)
	second := CalculateHydrationGap(82, Female, BodyToned, "run", 40, IntensityModerate, 900, foods)
	assert.Equal(t, first, second)
}

func TestCalculateHydrationGapNegativeIntakeClamped(t *testing.T) {
	res := CalculateHydrationGap(70, Male, BodyAthletic, DefaultActivity, 240, IntensityLight, -300, nil)
	assert.Equal(t, 0.0, res.TotalWaterInputML)
	assert.InDelta(t, 1785, res.HydrationGapML, 0.001)
}
