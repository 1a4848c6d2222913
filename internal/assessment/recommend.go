package assessment

// Score-band messages. Text is fixed output surface, not configuration.
const (
	msgScoreUnavailable = "Unable to compute distress score."
	msgBandLow          = "Your distress level appears low. Maintain healthy routines such as consistent sleep, hydration, and regular movement."
	msgBandMild         = "Your distress is mild. A short self-care break, a walk, or light breathing exercises can help stabilize your emotional state."
	msgBandModerate     = "Your distress is moderate. Consider structured breaks, reducing workload temporarily, and practicing grounding techniques. Prioritize tasks and avoid overstimulation."
	msgBandHigh         = "Your distress is high. It may help to slow down, reduce commitments where possible, and talk to a trusted person or counselor. Mindfulness and relaxation exercises can help significantly."
	msgBandVeryHigh     = "Your distress is very high. Please seek emotional support immediately—reach out to a mental health professional or someone you trust. Avoid isolation and practice grounding exercises."

	msgCrisis   = "- You are showing signs of significant distress. If thoughts of harming yourself are present or intensifying, contact local emergency services or a crisis helpline right away. If possible, stay with someone you trust while you seek help."
	msgFallback = "No concerning patterns detected, but maintaining balanced sleep, hydration, nutrition, and movement is always beneficial."
)

// Contextual messages keyed by pattern tag.
var patternMessages = map[Pattern]string{
	PatternAppetiteChange:   "- Appetite changes detected. Try maintaining consistent meals and hydration. If this persists for more than a week, consider consulting a healthcare professional.",
	PatternSleepIrregular:   "- Sleep irregularities noted. Aim for a stable sleep-wake schedule and reduce late-night screen use.",
	PatternLowMotivation:    "- Low motivation observed. Break tasks into very small steps and acknowledge small achievements. Behavioral activation can help boost momentum.",
	PatternAnxiety:          "- Anxiety patterns detected. Try slow breathing exercises (4-4-6 method) or grounding techniques like the 5-4-3-2-1 sensory tool.",
	PatternSocialWithdrawal: "- Reduced social interaction detected. A short conversation with a familiar person can help stabilize emotional state.",
	PatternIrritability:     "- Increased irritability detected. Short pauses, hydration, and stepping outside briefly can reduce overstimulation.",
	PatternLowEnergy:        "- Low energy levels identified. Light stretching, hydration, and stepping outside for sunlight can boost alertness.",
	PatternSuicidalIdeation: "- Suicidal thoughts detected. You deserve immediate support. Consider reaching out to someone you trust, a crisis line, or local emergency services. If you are in immediate danger, call your local emergency number.",
	PatternSelfHarm:         "- Self-harm thoughts detected. Please prioritize immediate safety: avoid being alone if possible, remove access to means, and contact a trusted person or professional.",
}

// patternOrder fixes the order contextual messages are appended in,
// matching DetectPatterns emission order.
var patternOrder = []Pattern{
	PatternAppetiteChange,
	PatternSleepIrregular,
	PatternLowMotivation,
	PatternAnxiety,
	PatternSocialWithdrawal,
	PatternIrritability,
	PatternLowEnergy,
	PatternSuicidalIdeation,
	PatternSelfHarm,
}

// SafetyGuidance is the extra crisis-mode guidance block, returned alongside
// the recommendations when the crisis flag is set.
var SafetyGuidance = []string{
	"If you have immediate plans or intent to harm yourself, call your local emergency number right now.",
	"If you can, reach out to a trusted friend, family member, or colleague and let them know you need support.",
	"Use grounding techniques (e.g., hold a cold object, name 5 things you can see/hear/touch) and practice slow breathing.",
	"Consider contacting a crisis helpline or mental health professional in your area.",
}

// Recommendations produces the ordered guidance list: one score-band message,
// then one contextual message per detected pattern, then the crisis message
// when the override fired. An absent score short-circuits to the single
// "unable to compute" message.
func Recommendations(score *float64, patterns []Pattern, crisis bool) []string {
	if score == nil {
		return []string{msgScoreUnavailable}
	}

	recommendations := []string{bandMessage(*score)}

	present := make(map[Pattern]bool, len(patterns))
	for _, p := range patterns {
		present[p] = true
	}
	for _, p := range patternOrder {
		if present[p] {
			recommendations = append(recommendations, patternMessages[p])
		}
	}

	if crisis {
		recommendations = append(recommendations, msgCrisis)
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, msgFallback)
	}

	return recommendations
}

func bandMessage(score float64) string {
	switch {
	case score <= 2:
		return msgBandLow
	case score <= 4:
		return msgBandMild
	case score <= 6:
		return msgBandModerate
	case score <= 8:
		return msgBandHigh
	default:
		return msgBandVeryHigh
	}
}

// RiskLevelFor bands the final (post-override) score into the risk label.
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score <= 3:
		return RiskLow
	case score <= 7:
		return RiskModerate
	default:
		return RiskHigh
	}
}
