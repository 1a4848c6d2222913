package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Variable names fed to the fuzzy engine.
const (
	VarHappiness     = "happiness"
	VarAnxiety       = "anxiety"
	VarSadness       = "sadness"
	VarIrritability  = "irritability"
	VarCalmness      = "calmness"
	VarStress        = "stress"
	VarSleepQuality  = "sleep_quality"
	VarEnergy        = "energy"
	VarMotivation    = "motivation"
	VarConcentration = "concentration"
	VarAppetite      = "appetite"
	VarSocial        = "social"
	VarWorkload      = "workload"
)

// RiskLevel bands the final distress score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// Pattern tags a behavioral signal detected from the raw inputs,
// independently of the fuzzy score.
type Pattern string

const (
	PatternAppetiteChange   Pattern = "Appetite Change"
	PatternSleepIrregular   Pattern = "Sleep Irregularity"
	PatternLowMotivation    Pattern = "Low Motivation"
	PatternAnxiety          Pattern = "Anxiety Indicators"
	PatternSocialWithdrawal Pattern = "Social Withdrawal"
	PatternIrritability     Pattern = "Irritability Spike"
	PatternLowEnergy        Pattern = "Low Energy Pattern"
	PatternSuicidalIdeation Pattern = "Suicidal Ideation"
	PatternSelfHarm         Pattern = "Self-harm Thoughts"
)

// Input carries one assessment's crisp values. The thirteen mood and
// functioning scalars feed the fuzzy engine; the two safety scalars and the
// free text bypass it and drive the override, patterns, and keyword scan.
// All scalars are expected in [0, 10]; the transport layer validates the
// range, and out-of-range values here degrade gracefully rather than fail.
type Input struct {
	Happiness     float64
	Anxiety       float64
	Sadness       float64
	Irritability  float64
	Calmness      float64
	Stress        float64
	SleepQuality  float64
	Energy        float64
	Motivation    float64
	Concentration float64
	Appetite      float64
	Social        float64
	Workload      float64

	Suicidal float64
	SelfHarm float64

	Text string
}

// FuzzyInputs maps the thirteen engine-facing scalars by variable name.
func (in Input) FuzzyInputs() map[string]float64 {
	return map[string]float64{
		VarHappiness:     in.Happiness,
		VarAnxiety:       in.Anxiety,
		VarSadness:       in.Sadness,
		VarIrritability:  in.Irritability,
		VarCalmness:      in.Calmness,
		VarStress:        in.Stress,
		VarSleepQuality:  in.SleepQuality,
		VarEnergy:        in.Energy,
		VarMotivation:    in.Motivation,
		VarConcentration: in.Concentration,
		VarAppetite:      in.Appetite,
		VarSocial:        in.Social,
		VarWorkload:      in.Workload,
	}
}

// Result is the full output bundle for one assessment. Nothing here is
// persisted; the ID exists only so logs and the response can be correlated.
type Result struct {
	ID              uuid.UUID
	Score           *float64 // nil when the fuzzy stage failed and no override fired
	Risk            RiskLevel
	CrisisTriggered bool
	Patterns        []Pattern
	Recommendations []string
	Emergency       bool
	MatchedKeywords []string
	SafetyGuidance  []string
	EvaluatedAt     time.Time
}
