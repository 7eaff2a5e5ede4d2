package main

import (
	"errors"
	"fmt"
	"os"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/schema"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Chart written
	ExitError       = 1 // Usage, configuration or I/O error
	ExitInvalid     = 2 // Model output or input timeline failed validation
	ExitUnavailable = 3 // Language model call failed
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var schemaErr *schema.SchemaError
	var extractErr *schema.ExtractionError
	var transportErr *gantt.TransportError

	switch {
	case errors.As(err, &schemaErr), errors.As(err, &extractErr):
		return ExitInvalid
	case errors.As(err, &transportErr):
		return ExitUnavailable
	default:
		return ExitError
	}
}
