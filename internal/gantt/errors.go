package gantt

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the gantt package.
var (
	ErrEmptyInstructions = errors.New("instructions are empty")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrMissingTimeline   = errors.New("timeline is missing")
)

// TransportError wraps a failed or cancelled language-model call.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("language model call failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
