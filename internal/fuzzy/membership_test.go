package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimfEvaluate(t *testing.T) {
	tests := []struct {
		name string
		mf   Trimf
		x    float64
		want float64
	}{
		{"zero at left foot", NewTrimf(2, 5, 8), 2, 0},
		{"zero at right foot", NewTrimf(2, 5, 8), 8, 0},
		{"zero below support", NewTrimf(2, 5, 8), -3, 0},
		{"zero above support", NewTrimf(2, 5, 8), 11, 0},
		{"one at peak", NewTrimf(2, 5, 8), 5, 1},
		{"linear rising edge", NewTrimf(2, 5, 8), 3.5, 0.5},
		{"linear falling edge", NewTrimf(2, 5, 8), 6.5, 0.5},
		{"left shoulder peak", NewTrimf(0, 0, 4), 0, 1},
		{"left shoulder falling", NewTrimf(0, 0, 4), 2, 0.5},
		{"left shoulder foot", NewTrimf(0, 0, 4), 4, 0},
		{"right shoulder peak", NewTrimf(6, 10, 10), 10, 1},
		{"right shoulder rising", NewTrimf(6, 10, 10), 8, 0.5},
		{"right shoulder foot", NewTrimf(6, 10, 10), 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.mf.Evaluate(tt.x), 1e-12)
		})
	}
}

func TestTrimfEvaluateContinuity(t *testing.T) {
	// The edges are linear: halfway between two points on the same edge,
	// the degree is the average of the endpoints.
	mf := NewTrimf(2, 5, 8)
	for _, pair := range [][2]float64{{2.5, 3.5}, {5.5, 7.5}} {
		lo, hi := mf.Evaluate(pair[0]), mf.Evaluate(pair[1])
		mid := mf.Evaluate((pair[0] + pair[1]) / 2)
		assert.InDelta(t, (lo+hi)/2, mid, 1e-12)
	}
}

func TestTrimfEvaluateBounded(t *testing.T) {
	mf := NewTrimf(0, 0, 4)
	for x := -2.0; x <= 12.0; x += 0.1 {
		d := mf.Evaluate(x)
		assert.GreaterOrEqual(t, d, 0.0, "x=%v", x)
		assert.LessOrEqual(t, d, 1.0, "x=%v", x)
	}
}
