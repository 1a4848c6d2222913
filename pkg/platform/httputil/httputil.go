// Package httputil provides the JSON write/decode helpers every handler
// shares. Error rendering follows one rule: internal errors never expose
// their description to clients.
package httputil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "serenity/pkg/domain-errors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error to its HTTP status and JSON body. Internal
// errors omit the description; everything else includes it so clients can
// correct their request.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		if desc := dErrors.DescriptionOf(err); desc != "" {
			body["error_description"] = desc
		}
	}

	WriteJSON(w, statusFor(code), body)
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeValidation, dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Validatable is implemented by request types that parse and validate
// themselves after JSON decoding.
type Validatable interface {
	Validate() error
}

// DecodeAndPrepare decodes the request body into T, runs its Validate, and
// writes the error response itself on failure. The boolean reports whether
// the handler should continue.
func DecodeAndPrepare[T any, PT interface {
	Validatable
	*T
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (PT, bool) {
	var v T
	p := PT(&v)

	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		logger.WarnContext(ctx, "request decode failed",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body must be valid JSON"))
		return nil, false
	}

	if err := p.Validate(); err != nil {
		logger.WarnContext(ctx, "request validation failed",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, err)
		return nil, false
	}

	return p, true
}
