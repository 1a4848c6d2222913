package assessment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"serenity/internal/assessment/metrics"
	"serenity/internal/fuzzy"
)

// Service runs the full assessment pipeline: keyword scan, fuzzy inference,
// safety override, pattern detection, and recommendation generation. The
// engine is shared and immutable, so a single Service is safe for concurrent
// requests; each evaluation is a pure in-memory computation.
type Service struct {
	engine  *fuzzy.Engine
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the assessment service.
func NewService(engine *fuzzy.Engine, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	if engine == nil {
		return nil, errors.New("fuzzy engine is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		engine:  engine,
		logger:  logger,
		metrics: m,
	}, nil
}

// Evaluate runs one assessment. It never fails the request: an uncomputable
// fuzzy score is a valid outcome (absent score, single "unable to compute"
// recommendation) unless the safety override recovers a crisis floor.
func (s *Service) Evaluate(ctx context.Context, in Input) (*Result, error) {
	start := time.Now()

	emergency, matched := ScanText(in.Text)
	if emergency {
		s.metrics.IncrementEmergencyFlag()
	}

	var score *float64
	if v, err := s.engine.Evaluate(in.FuzzyInputs()); err != nil {
		// Baseline coverage makes this unreachable for in-range inputs;
		// treat it as an absent score rather than a request failure.
		s.logger.WarnContext(ctx, "fuzzy inference failed",
			"error", err,
		)
	} else {
		score = &v
	}

	score, crisis, tier := ApplyOverride(score, in.Suicidal, in.SelfHarm, emergency)
	if crisis {
		s.metrics.IncrementCrisisOverride(tier)
	}

	result := &Result{
		ID:              uuid.New(),
		Score:           score,
		CrisisTriggered: crisis,
		Emergency:       emergency,
		MatchedKeywords: matched,
		EvaluatedAt:     time.Now(),
	}

	if score != nil {
		result.Risk = RiskLevelFor(*score)
		result.Patterns = DetectPatterns(in)
	}
	result.Recommendations = Recommendations(score, result.Patterns, crisis)
	if crisis {
		result.SafetyGuidance = SafetyGuidance
	}

	riskLabel := "none"
	if result.Risk != "" {
		riskLabel = string(result.Risk)
	}
	s.metrics.IncrementEvaluation(riskLabel)
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	s.logger.InfoContext(ctx, "assessment evaluated",
		"assessment_id", result.ID,
		"risk", riskLabel,
		"crisis", crisis,
		"crisis_tier", tier,
		"emergency_text", emergency,
		"patterns", len(result.Patterns),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}
