package hydration

// Canonical per-kg-LBM target rates. The product has shipped with a couple
// of competing constant sets (potassium 80, protein 1.2 in older builds);
// these are the ones the current formula sheet uses.
const (
	WaterRateMLPerKg     = 30
	ProteinRateGPerKg    = 1.6
	SodiumRateMGPerKg    = 25
	PotassiumRateMGPerKg = 57
)

// GapContext is the qualitative hydration label derived from the gap.
type GapContext string

const (
	ContextSevere   GapContext = "severe"
	ContextModerate GapContext = "moderate"
	ContextMild     GapContext = "mild"
	ContextOptimal  GapContext = "optimal"
	ContextExcess   GapContext = "excess"
)

// Targets are the per-day nutrient goals for a given lean body mass.
type Targets struct {
	WaterML     float64 `json:"water_ml"`
	ProteinG    float64 `json:"protein_g"`
	SodiumMG    float64 `json:"sodium_mg"`
	PotassiumMG float64 `json:"potassium_mg"`
}

// ComputeTargets derives the daily nutrient targets. A session-level
// protein rate override may be supplied; zero means the default.
func ComputeTargets(leanBodyMass, proteinRateOverride float64) Targets {
	proteinRate := ProteinRateGPerKg
	if proteinRateOverride > 0 {
		proteinRate = proteinRateOverride
	}
	return Targets{
		WaterML:     leanBodyMass * WaterRateMLPerKg,
		ProteinG:    leanBodyMass * proteinRate,
		SodiumMG:    leanBodyMass * SodiumRateMGPerKg,
		PotassiumMG: leanBodyMass * PotassiumRateMGPerKg,
	}
}

// foodWaterTable maps a food identifier to its water-equivalent in ml.
// Unlisted foods contribute the default value.
var foodWaterTable = map[string]float64{
	"soup":       300,
	"smoothie":   200,
	"watermelon": 250,
	"fruit":      120,
	"salad":      150,
	"yogurt":     80,
	"oatmeal":    100,
	"broth":      280,
}

const defaultFoodWaterML = 50

// FoodWaterEquivalent returns the ml of water credited for one food item.
func FoodWaterEquivalent(foodID string) float64 {
	if ml, ok := foodWaterTable[foodID]; ok {
		return ml
	}
	return defaultFoodWaterML
}

// GapResult is the full gap breakdown. Intermediate terms are returned so
// callers can render where the number came from.
type GapResult struct {
	LeanBodyMass      float64    `json:"lean_body_mass"`
	WaterLossML       float64    `json:"water_loss_ml"`
	WaterFromFoodML   float64    `json:"water_from_food_ml"`
	TotalWaterInputML float64    `json:"total_water_input_ml"`
	RecommendedML     float64    `json:"recommended_intake_ml"`
	HydrationGapML    float64    `json:"hydration_gap_ml"`
	Context           GapContext `json:"context"`
	Targets           Targets    `json:"targets"`
}

// CalculateHydrationGap combines body composition, activity water loss and
// food water into a gap against intake. recommended = loss + food water;
// there is deliberately no separate baseline term — the loss base already
// carries the 30 ml/kg resting demand.
func CalculateHydrationGap(weightKg float64, sex Sex, bodyType BodyType, activity string, durationMin int, intensity ActivityIntensity, totalWaterIntakeML float64, foods []FoodItem) GapResult {
	comp := ComputeBodyComposition(weightKg, sex, bodyType)

	loss := ComputeWaterLoss(comp.LeanBodyMass, activity, durationMin, intensity)

	var foodWater float64
	for _, f := range foods {
		foodWater += FoodWaterEquivalent(f.FoodID)
	}

	if totalWaterIntakeML < 0 {
		totalWaterIntakeML = 0
	}

	recommended := loss + foodWater
	gap := recommended - totalWaterIntakeML

	return GapResult{
		LeanBodyMass:      comp.LeanBodyMass,
		WaterLossML:       loss,
		WaterFromFoodML:   foodWater,
		TotalWaterInputML: totalWaterIntakeML,
		RecommendedML:     recommended,
		HydrationGapML:    gap,
		Context:           ClassifyGap(gap),
		Targets:           ComputeTargets(comp.LeanBodyMass, 0),
	}
}

// ClassifyGap maps a gap in ml onto its context label. Boundaries are
// strict: a gap of exactly 1000 is moderate, exactly -200 is optimal.
func ClassifyGap(gapML float64) GapContext {
	switch {
	case gapML > 1000:
		return ContextSevere
	case gapML > 500:
		return ContextModerate
	case gapML > 200:
		return ContextMild
	case gapML < -200:
		return ContextExcess
	default:
		return ContextOptimal
	}
}
