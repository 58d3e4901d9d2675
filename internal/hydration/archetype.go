package hydration

import "time"

// Archetype is one of six contextual states a recommendation targets.
type Archetype string

const (
	PostSweatCool Archetype = "post_sweat_cool"
	MentalFog     Archetype = "mental_fog"
	GutRebalance  Archetype = "gut_rebalance"
	RestReset     Archetype = "rest_reset"
	CleanEnergy   Archetype = "clean_energy"
	DetoxGentle   Archetype = "detox_gentle"
)

// KitName identifies one of the fixed product kits.
type KitName string

const (
	KitSkySalt       KitName = "Sky Salt"
	KitWhiteEmber    KitName = "White Ember"
	KitSilverMirage  KitName = "Silver Mirage"
	KitGhostBloom    KitName = "Ghost Bloom"
	KitCopperWhisper KitName = "Copper Whisper"
	KitIronDrift     KitName = "Iron Drift"
	KitColdHalo      KitName = "Cold Halo"
	KitAmberStatic   KitName = "Amber Static"
	KitNightTide     KitName = "Night Tide"
	KitPaleFern      KitName = "Pale Fern"
	KitMossVeil      KitName = "Moss Veil"
)

// AllKits is the fixed kit enumeration. Order matters: the weighted scorer
// breaks ties by first-reached-max in this order.
var AllKits = []KitName{
	KitSkySalt,
	KitWhiteEmber,
	KitSilverMirage,
	KitGhostBloom,
	KitCopperWhisper,
	KitIronDrift,
	KitColdHalo,
	KitAmberStatic,
	KitNightTide,
	KitPaleFern,
	KitMossVeil,
}

// archetypeKits maps each archetype to its ordered kit list. The first kit
// is the primary recommendation.
var archetypeKits = map[Archetype][]KitName{
	PostSweatCool: {KitWhiteEmber, KitCopperWhisper},
	MentalFog:     {KitSilverMirage, KitColdHalo},
	GutRebalance:  {KitIronDrift, KitAmberStatic},
	RestReset:     {KitGhostBloom, KitNightTide},
	CleanEnergy:   {KitSkySalt, KitPaleFern},
	DetoxGentle:   {KitMossVeil},
}

// AllArchetypes lists every archetype, in table order.
var AllArchetypes = []Archetype{
	PostSweatCool, MentalFog, GutRebalance, RestReset, CleanEnergy, DetoxGentle,
}

// KitsFor returns the ordered kit list for an archetype.
func KitsFor(a Archetype) []KitName {
	return archetypeKits[a]
}

var (
	sweatActivities = map[string]bool{"hiit": true, "hot_yoga": true, "run": true}
	deskActivities  = map[string]bool{"work_laptop": true, "zoom": true, "desk": true, DefaultActivity: true}
	mealActivities  = map[string]bool{"brunch": true, "big_meal": true}
	restActivities  = map[string]bool{"sleep": true, "late_screen": true}
	calmActivities  = map[string]bool{"meditation": true, "fasting": true}
)

// ArchetypeFor maps an activity/mood pair onto an archetype. Rules evaluate
// in fixed priority order; the first match wins. The at and mood parameters
// are part of the call shape but unused by the base rule table — the
// weighted scorer is the variant that consumes them.
func ArchetypeFor(activity string, at time.Time, hydrationGap bool, mood string) Archetype {
	_ = at
	_ = mood

	switch {
	case sweatActivities[activity] && hydrationGap:
		return PostSweatCool
	case deskActivities[activity] && hydrationGap:
		return MentalFog
	case mealActivities[activity]:
		return GutRebalance
	case restActivities[activity]:
		return RestReset
	case calmActivities[activity]:
		return CleanEnergy
	default:
		return CleanEnergy
	}
}

// KitFor returns the primary kit for an activity/gap pair. Sky Salt is the
// defensive fallback for an empty kit list, which the table never produces.
func KitFor(activity string, at time.Time, hydrationGap bool, mood string) KitName {
	kits := archetypeKits[ArchetypeFor(activity, at, hydrationGap, mood)]
	if len(kits) == 0 {
		return KitSkySalt
	}
	return kits[0]
}
