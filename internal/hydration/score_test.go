package hydration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2026, 3, 14, hour, 0, 0, 0, time.UTC)
}

func TestDayPartOf(t *testing.T) {
	assert.Equal(t, Morning, DayPartOf(at(6)))
	assert.Equal(t, Morning, DayPartOf(at(10)))
	assert.Equal(t, Afternoon, DayPartOf(at(11)))
	assert.Equal(t, Afternoon, DayPartOf(at(16)))
	assert.Equal(t, Evening, DayPartOf(at(17)))
	assert.Equal(t, Evening, DayPartOf(at(21)))
	assert.Equal(t, Night, DayPartOf(at(22)))
	assert.Equal(t, Night, DayPartOf(at(3)))
}

func TestScoreKitAdditiveRules(t *testing.T) {
	in := ScoreInput{
		Activity:     "hiit",
		At:           at(7), // morning
		HydrationGap: true,
		Mood:         "low",
		SweatLossML:  600,
	}

	// archetype 60 + gap flag 10 + sweat 10
	assert.Equal(t, 80.0, ScoreKit(KitWhiteEmber, in))
	// archetype 60 + sweat 10
	assert.Equal(t, 70.0, ScoreKit(KitCopperWhisper, in))
	// day part 10 + mood 10
	assert.Equal(t, 20.0, ScoreKit(KitSkySalt, in))
	// gap flag only
	assert.Equal(t, 10.0, ScoreKit(KitSilverMirage, in))
	// nothing matches
	assert.Equal(t, 0.0, ScoreKit(KitMossVeil, in))
}

func TestScoreKitClampedToHundred(t *testing.T) {
	for _, kit := range AllKits {
		score := ScoreKit(kit, ScoreInput{
			Activity:     "hiit",
			At:           at(18),
			HydrationGap: true,
			Mood:         "tight",
			SweatLossML:  900,
		})
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestBestKitDeterministicAndMaximal(t *testing.T) {
	events := []ScoreInput{
		{Activity: "hiit", At: at(7), HydrationGap: true, SweatLossML: 700},
		{Activity: "zoom", At: at(14), HydrationGap: true, Mood: "foggy"},
		{Activity: "sleep", At: at(23)},
	}

	first, scores := BestKit(events)
	second, _ := BestKit(events)
	assert.Equal(t, first, second)
	assert.Len(t, scores, len(AllKits))

	// returned kit carries the maximum averaged score
	for _, ks := range scores {
		assert.LessOrEqual(t, ks.Score, first.Score)
	}
}

func TestBestKitTieBreaksByEnumerationOrder(t *testing.T) {
	best, _ := BestKit([]ScoreInput{{Activity: "unknown", At: at(3)}})

	// clean_energy fallback gives Sky Salt and Pale Fern 60 each; Sky Salt
	// comes first in the enumeration
	assert.Equal(t, KitSkySalt, best.Kit)
	assert.Equal(t, 60.0, best.Score)
}

func TestBestKitEmptyTimeline(t *testing.T) {
	best, scores := BestKit(nil)
	assert.Equal(t, KitSkySalt, best.Kit)
	assert.Equal(t, 0.0, best.Score)
	assert.Nil(t, scores)
}
