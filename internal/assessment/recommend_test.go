package assessment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationsBandSelection(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "appears low"},
		{2, "appears low"},
		{2.1, "is mild"},
		{4, "is mild"},
		{4.1, "is moderate"},
		{6, "is moderate"},
		{6.1, "is high"},
		{8, "is high"},
		{8.1, "is very high"},
		{10, "is very high"},
	}

	for _, tt := range tests {
		recs := Recommendations(floatPtr(tt.score), nil, false)
		require.Len(t, recs, 1, "score=%v", tt.score)
		assert.Contains(t, recs[0], tt.want, "score=%v", tt.score)
	}
}

func TestRecommendationsAbsentScore(t *testing.T) {
	// An absent score short-circuits: no band, pattern, or crisis messages.
	recs := Recommendations(nil, []Pattern{PatternLowEnergy}, true)
	assert.Equal(t, []string{"Unable to compute distress score."}, recs)
}

func TestRecommendationsPatternMessages(t *testing.T) {
	patterns := []Pattern{PatternSleepIrregular, PatternAnxiety, PatternSuicidalIdeation}
	recs := Recommendations(floatPtr(5), patterns, false)

	require.Len(t, recs, 4, "one band message plus one per pattern")
	assert.Contains(t, recs[0], "is moderate")
	assert.Contains(t, recs[1], "Sleep irregularities")
	assert.Contains(t, recs[2], "Anxiety patterns")
	assert.Contains(t, recs[3], "Suicidal thoughts")
}

func TestRecommendationsPatternOrderIsFixed(t *testing.T) {
	// Messages follow detector order even if the caller shuffles the tags.
	shuffled := []Pattern{PatternSelfHarm, PatternAppetiteChange, PatternLowMotivation}
	recs := Recommendations(floatPtr(1), shuffled, false)

	require.Len(t, recs, 4)
	assert.Contains(t, recs[1], "Appetite changes")
	assert.Contains(t, recs[2], "Low motivation")
	assert.Contains(t, recs[3], "Self-harm thoughts")
}

func TestRecommendationsCrisisMessageLast(t *testing.T) {
	recs := Recommendations(floatPtr(9), []Pattern{PatternSuicidalIdeation}, true)

	require.Len(t, recs, 3)
	assert.Contains(t, recs[0], "is very high")
	assert.Contains(t, recs[1], "Suicidal thoughts")
	assert.True(t, strings.Contains(recs[2], "crisis helpline"), "crisis message appended last")
}

func TestSafetyGuidance(t *testing.T) {
	require.Len(t, SafetyGuidance, 4)
	assert.Contains(t, SafetyGuidance[0], "local emergency number")
	assert.Contains(t, SafetyGuidance[3], "crisis helpline")
}

func TestRiskLevelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{3, RiskLow},
		{3.01, RiskModerate},
		{7, RiskModerate},
		{7.01, RiskHigh},
		{10, RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevelFor(tt.score), "score=%v", tt.score)
	}
}
