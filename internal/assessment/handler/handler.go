package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"serenity/internal/assessment"
	dErrors "serenity/pkg/domain-errors"
	"serenity/pkg/platform/httputil"
	"serenity/pkg/requestcontext"
)

// Service defines the interface for assessment operations.
type Service interface {
	Evaluate(ctx context.Context, in assessment.Input) (*assessment.Result, error)
}

// Handler wires assessment endpoints to the assessment service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an assessment handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts assessment endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/assessment/evaluate", h.HandleEvaluate)
}

// HandleEvaluate handles POST /assessment/evaluate requests.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Evaluate(ctx, req.ParsedInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "assessment evaluation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "assessment evaluation failed"))
		return
	}

	h.logger.InfoContext(ctx, "assessment handled",
		"request_id", requestID,
		"assessment_id", result.ID,
		"risk", result.Risk,
		"crisis", result.CrisisTriggered,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
