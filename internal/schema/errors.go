package schema

import (
	"fmt"
)

const snippetLen = 120

// SchemaError reports the first field of an untrusted timeline document that
// could not be coerced into a valid Timeline.
type SchemaError struct {
	Path   string
	Reason string
	Value  any
}

func (e *SchemaError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid timeline: %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid timeline: %s: %s (got %v)", e.Path, e.Reason, e.Value)
}

// ExtractionError reports raw model output that holds no decodable JSON object.
type ExtractionError struct {
	Reason  string
	Snippet string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no timeline JSON in model response: %s (near %q)", e.Reason, e.Snippet)
}

func newExtractionError(reason, raw string) *ExtractionError {
	return &ExtractionError{Reason: reason, Snippet: snippet(raw)}
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) <= snippetLen {
		return s
	}
	return string(r[:snippetLen]) + "..."
}
