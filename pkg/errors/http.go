package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is a delivery-layer error carrying the status and body the client
// should see. Domain errors are translated into it by each handler's mapError.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
	Details    any
}

// NewHTTPError returns an HTTPError whose application code equals the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WithDetails returns a copy of e with details attached to the response body.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
)
