package assessment

import "math"

// Crisis override tiers, used as metric labels and for log context.
const (
	TierCritical = "critical" // suicidal or self-harm >= 7, or emergency text
	TierSevere   = "severe"   // suicidal or self-harm >= 4
	TierElevated = "elevated" // any non-zero safety signal
)

// ApplyOverride applies the safety override to a fuzzy-computed score.
// This is pure domain logic - no I/O, no side effects.
//
// Tier priority (highest severity wins, no stacking):
//  1. suicidal >= 7, selfHarm >= 7, or emergency text: floor 9.5
//  2. suicidal >= 4 or selfHarm >= 4: floor 8.0
//  3. suicidal > 0 or selfHarm > 0: floor 6.0
//
// The floor is combined with the fuzzy score by max: the override can only
// raise the score, never lower it. An absent fuzzy score counts as 0 before
// the max, so a crisis tier always yields a usable score.
func ApplyOverride(score *float64, suicidal, selfHarm float64, textEmergency bool) (*float64, bool, string) {
	var floor float64
	var tier string

	switch {
	case suicidal >= 7 || selfHarm >= 7 || textEmergency:
		floor, tier = 9.5, TierCritical
	case suicidal >= 4 || selfHarm >= 4:
		floor, tier = 8.0, TierSevere
	case suicidal > 0 || selfHarm > 0:
		floor, tier = 6.0, TierElevated
	default:
		return score, false, ""
	}

	base := 0.0
	if score != nil {
		base = *score
	}
	final := math.Max(base, floor)
	return &final, true, tier
}
