package assessment

// DetectPatterns evaluates fixed thresholds over the raw crisp inputs,
// independently of the fuzzy score. Emission order is a contract: the
// recommendation generator appends contextual messages in this order.
func DetectPatterns(in Input) []Pattern {
	var patterns []Pattern

	if in.Appetite <= 3 || in.Appetite >= 8 {
		patterns = append(patterns, PatternAppetiteChange)
	}
	if in.SleepQuality <= 4 {
		patterns = append(patterns, PatternSleepIrregular)
	}
	if in.Motivation <= 3 {
		patterns = append(patterns, PatternLowMotivation)
	}
	if in.Anxiety >= 6 {
		patterns = append(patterns, PatternAnxiety)
	}
	if in.Social <= 2 {
		patterns = append(patterns, PatternSocialWithdrawal)
	}
	if in.Irritability >= 6 {
		patterns = append(patterns, PatternIrritability)
	}
	if in.Energy <= 3 {
		patterns = append(patterns, PatternLowEnergy)
	}
	if in.Suicidal > 0 {
		patterns = append(patterns, PatternSuicidalIdeation)
	}
	if in.SelfHarm > 0 {
		patterns = append(patterns, PatternSelfHarm)
	}

	return patterns
}
