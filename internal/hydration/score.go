package hydration

import "time"

// DayPart is a coarse time-of-day bucket for kit affinity scoring.
type DayPart string

const (
	Morning   DayPart = "morning"
	Afternoon DayPart = "afternoon"
	Evening   DayPart = "evening"
	Night     DayPart = "night"
)

// DayPartOf buckets an hour: morning 6-11, afternoon 11-17, evening 17-22,
// night 22-6.
func DayPartOf(at time.Time) DayPart {
	h := at.Hour()
	switch {
	case h >= 6 && h < 11:
		return Morning
	case h >= 11 && h < 17:
		return Afternoon
	case h >= 17 && h < 22:
		return Evening
	default:
		return Night
	}
}

var dayPartKits = map[DayPart][]KitName{
	Morning:   {KitSkySalt, KitPaleFern},
	Afternoon: {KitSilverMirage, KitColdHalo},
	Evening:   {KitCopperWhisper, KitIronDrift},
	Night:     {KitGhostBloom, KitNightTide},
}

var moodKits = map[string][]KitName{
	"low":   {KitGhostBloom, KitSkySalt},
	"tight": {KitCopperWhisper, KitIronDrift},
	"foggy": {KitSilverMirage, KitColdHalo},
}

var gapFlagKits = []KitName{KitWhiteEmber, KitSilverMirage}

var sweatKits = []KitName{KitWhiteEmber, KitCopperWhisper}

func kitIn(kit KitName, kits []KitName) bool {
	for _, k := range kits {
		if k == kit {
			return true
		}
	}
	return false
}

// ScoreInput is one timeline event reduced to the signals the scorer reads.
type ScoreInput struct {
	Activity     string
	At           time.Time
	HydrationGap bool
	Mood         string
	SweatLossML  float64
}

// ScoreKit computes the additive 0-100 affinity of a kit for one event.
// The rules are independent; the final score clamps to [0,100].
func ScoreKit(kit KitName, in ScoreInput) float64 {
	var score float64

	primary := ArchetypeFor(in.Activity, in.At, in.HydrationGap, in.Mood)
	if kitIn(kit, archetypeKits[primary]) {
		score += 60
	}
	if kitIn(kit, dayPartKits[DayPartOf(in.At)]) {
		score += 10
	}
	if in.HydrationGap && kitIn(kit, gapFlagKits) {
		score += 10
	}
	if kitIn(kit, moodKits[in.Mood]) {
		score += 10
	}
	if in.SweatLossML > 500 && kitIn(kit, sweatKits) {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// KitScore pairs a kit with its averaged score.
type KitScore struct {
	Kit   KitName `json:"kit"`
	Score float64 `json:"score"`
}

// BestKit reconciles a timeline of events into one recommendation: each kit
// is scored per event, scores average across events, and the highest
// average wins. Ties break by AllKits order — the first kit to reach the
// max. An empty timeline falls back to Sky Salt at score zero.
func BestKit(events []ScoreInput) (KitScore, []KitScore) {
	if len(events) == 0 {
		return KitScore{Kit: KitSkySalt, Score: 0}, nil
	}

	scores := make([]KitScore, 0, len(AllKits))
	best := KitScore{Kit: AllKits[0], Score: -1}
	for _, kit := range AllKits {
		var sum float64
		for _, e := range events {
			sum += ScoreKit(kit, e)
		}
		ks := KitScore{Kit: kit, Score: sum / float64(len(events))}
		scores = append(scores, ks)
		if ks.Score > best.Score {
			best = ks
		}
	}
	return best, scores
}
