package schema

import (
	_ "embed"
)

//go:embed timeline.schema.json
var document []byte

// Document returns the JSON Schema describing the timeline object the model
// is asked to produce. The returned slice is a copy.
func Document() []byte {
	out := make([]byte, len(document))
	copy(out, document)
	return out
}
