package http

import (
	"context"
	"errors"
	"net/http"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/schema"
	pkgErrors "gantt-chart-generator/pkg/errors"
	"gantt-chart-generator/pkg/llmprovider"
)

var (
	errEmptyInstructions = pkgErrors.NewHTTPError(http.StatusBadRequest, "Instructions are required")
	errInvalidFormat     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Format must be html or json")
	errMissingTimeline   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Timeline is required")
	errInvalidTimeline   = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Model output is not a valid timeline")
	errUnreadableOutput  = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Model output contains no JSON object")
	errNoProviders       = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "No language model provider is configured")
	errModelTimeout      = pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "Language model call timed out")
	errModelUnavailable  = pkgErrors.NewHTTPError(http.StatusBadGateway, "Language model call failed")
)

// errorDetail is the body of the errors field for validation failures.
type errorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
	Value  any    `json:"value,omitempty"`
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var schemaErr *schema.SchemaError
	var extractErr *schema.ExtractionError
	var transportErr *gantt.TransportError

	switch {
	case errors.Is(err, gantt.ErrEmptyInstructions):
		return errEmptyInstructions
	case errors.Is(err, gantt.ErrInvalidFormat):
		return errInvalidFormat
	case errors.Is(err, gantt.ErrMissingTimeline):
		return errMissingTimeline
	case errors.As(err, &schemaErr):
		return errInvalidTimeline.WithDetails(errorDetail{
			Field:  schemaErr.Path,
			Reason: schemaErr.Reason,
			Value:  schemaErr.Value,
		})
	case errors.As(err, &extractErr):
		return errUnreadableOutput.WithDetails(errorDetail{
			Field:  "response",
			Reason: extractErr.Reason,
			Value:  extractErr.Snippet,
		})
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return errNoProviders
	case errors.As(err, &transportErr) && errors.Is(err, context.DeadlineExceeded):
		return errModelTimeout
	case errors.As(err, &transportErr):
		return errModelUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}

var errBodyTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large")

// mapBindError reports request decoding failures and routes domain
// validation errors through mapError.
func (h *handler) mapBindError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errBodyTooLarge
	}
	if errors.Is(err, gantt.ErrEmptyInstructions) {
		return h.mapError(err)
	}
	return pkgErrors.ErrBadRequest.WithDetails(err.Error())
}
