package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// MIMETypeJSON asks the model to answer with a JSON document only.
	MIMETypeJSON = "application/json"

	apiKeyHeader = "x-goog-api-key"
	maxErrorBody = 2048
)
