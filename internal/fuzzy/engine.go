package fuzzy

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoRuleFired reports a defuzzification with zero total membership mass.
// With baseline coverage over every variable this cannot happen for inputs in
// [0, 10], but the division is guarded rather than trusted.
var ErrNoRuleFired = errors.New("no rule produced output membership")

// Engine runs Mamdani-style inference: evaluate every rule's antecedent at
// the crisp input vector, clip each consequent set at its firing strength,
// aggregate by pointwise max, and defuzzify by centroid.
//
// An Engine is built once with an immutable rule set and is safe for
// concurrent use; evaluation allocates only the combined membership array.
type Engine struct {
	universe []float64
	rules    []Rule
}

// NewEngine constructs an engine over the shared universe.
func NewEngine(rules []Rule) (*Engine, error) {
	if len(rules) == 0 {
		return nil, errors.New("at least one rule is required")
	}
	return &Engine{
		universe: NewUniverse(),
		rules:    rules,
	}, nil
}

// Rules returns the rule set in construction order for diagnostic listings.
// Order has no effect on the aggregated output.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Evaluate computes the crisp output score for the given input vector.
// Inputs outside [0, 10] are not rejected; membership functions clamp their
// degrees, so evaluation degrades gracefully instead of failing.
func (e *Engine) Evaluate(inputs map[string]float64) (float64, error) {
	combined := make([]float64, len(e.universe))

	for _, r := range e.rules {
		strength := r.Antecedent.Degree(inputs)
		if strength <= 0 {
			continue
		}
		for i, u := range e.universe {
			clipped := math.Min(strength, r.Consequent.MF.Evaluate(u))
			if clipped > combined[i] {
				combined[i] = clipped
			}
		}
	}

	var numerator, denominator float64
	for i, u := range e.universe {
		numerator += u * combined[i]
		denominator += combined[i]
	}
	if denominator == 0 {
		return 0, fmt.Errorf("defuzzify: %w", ErrNoRuleFired)
	}
	return numerator / denominator, nil
}
