package handler

import (
	"math"
	"time"

	"serenity/internal/assessment"
)

// EvaluateResponse is the HTTP response for POST /assessment/evaluate.
// Score is null when the fuzzy stage failed and no override fired.
type EvaluateResponse struct {
	AssessmentID    string    `json:"assessment_id"`
	Score           *float64  `json:"score"`
	RiskLevel       string    `json:"risk_level,omitempty"`
	CrisisTriggered bool      `json:"crisis_triggered"`
	Patterns        []string  `json:"patterns"`
	Recommendations []string  `json:"recommendations"`
	Emergency       bool      `json:"emergency"`
	MatchedKeywords []string  `json:"matched_keywords"`
	SafetyGuidance  []string  `json:"safety_guidance,omitempty"`
	EvaluatedAt     time.Time `json:"evaluated_at"`
}

// FromResult converts a domain Result to an HTTP response. The score is
// rounded to two decimals here, at the boundary, so domain comparisons keep
// full precision.
func FromResult(result *assessment.Result) *EvaluateResponse {
	resp := &EvaluateResponse{
		AssessmentID:    result.ID.String(),
		RiskLevel:       string(result.Risk),
		CrisisTriggered: result.CrisisTriggered,
		Patterns:        make([]string, 0, len(result.Patterns)),
		Recommendations: result.Recommendations,
		Emergency:       result.Emergency,
		MatchedKeywords: result.MatchedKeywords,
		SafetyGuidance:  result.SafetyGuidance,
		EvaluatedAt:     result.EvaluatedAt,
	}
	if result.Score != nil {
		rounded := math.Round(*result.Score*100) / 100
		resp.Score = &rounded
	}
	for _, p := range result.Patterns {
		resp.Patterns = append(resp.Patterns, string(p))
	}
	if resp.MatchedKeywords == nil {
		resp.MatchedKeywords = []string{}
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []string{}
	}
	return resp
}
