package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestApplyOverride(t *testing.T) {
	tests := []struct {
		name          string
		score         *float64
		suicidal      float64
		selfHarm      float64
		textEmergency bool
		wantScore     float64
		wantCrisis    bool
		wantTier      string
	}{
		{"no signals leave the score alone", floatPtr(4.2), 0, 0, false, 4.2, false, ""},
		{"suicidal at highest tier", floatPtr(3.0), 8, 0, false, 9.5, true, TierCritical},
		{"self-harm at highest tier", floatPtr(3.0), 0, 7, false, 9.5, true, TierCritical},
		{"emergency text alone reaches highest tier", floatPtr(1.0), 0, 0, true, 9.5, true, TierCritical},
		{"mid tier floors at 8", floatPtr(5.0), 5, 0, false, 8.0, true, TierSevere},
		{"mid tier from self-harm", floatPtr(5.0), 0, 4, false, 8.0, true, TierSevere},
		{"any non-zero signal floors at 6", floatPtr(2.0), 0.1, 0, false, 6.0, true, TierElevated},
		{"highest tier wins over lower ones", floatPtr(0.0), 7, 4, true, 9.5, true, TierCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, crisis, tier := ApplyOverride(tt.score, tt.suicidal, tt.selfHarm, tt.textEmergency)
			require.NotNil(t, score)
			assert.InDelta(t, tt.wantScore, *score, 1e-12)
			assert.Equal(t, tt.wantCrisis, crisis)
			assert.Equal(t, tt.wantTier, tier)
		})
	}
}

func TestApplyOverrideIsAFloorNotACeiling(t *testing.T) {
	// A fuzzy score already above the tier floor passes through untouched.
	score, crisis, tier := ApplyOverride(floatPtr(9.1), 5, 0, false)
	require.NotNil(t, score)
	assert.InDelta(t, 9.1, *score, 1e-12)
	assert.True(t, crisis)
	assert.Equal(t, TierSevere, tier)
}

func TestApplyOverrideAbsentScore(t *testing.T) {
	t.Run("crisis tier recovers a score from nil", func(t *testing.T) {
		score, crisis, _ := ApplyOverride(nil, 5, 0, false)
		require.NotNil(t, score)
		assert.InDelta(t, 8.0, *score, 1e-12)
		assert.True(t, crisis)
	})

	t.Run("no signals keep the score absent", func(t *testing.T) {
		score, crisis, tier := ApplyOverride(nil, 0, 0, false)
		assert.Nil(t, score)
		assert.False(t, crisis)
		assert.Empty(t, tier)
	})
}
