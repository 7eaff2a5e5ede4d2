package gantt

import (
	"fmt"
	"strings"

	"gantt-chart-generator/internal/interval"
	"gantt-chart-generator/internal/model"
)

// Format selects what Generate hands back.
type Format string

const (
	// FormatHTML renders the timeline to chart markup.
	FormatHTML Format = "html"
	// FormatJSON returns the timeline without markup.
	FormatJSON Format = "json"
)

// ParseFormat normalizes a format name. Empty means FormatHTML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatHTML, nil
	case FormatHTML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// GenerateInput is the input for Generate.
type GenerateInput struct {
	Instructions string
	Documents    []string
	Format       Format
}

// GenerateOutput is the output of Generate. HTML is empty for FormatJSON.
type GenerateOutput struct {
	Timeline   model.Timeline
	Estimate   interval.Estimate
	Correction interval.Correction
	HTML       string
	Provider   string
	Model      string
}

// RenderInput carries an untrusted timeline document, typically decoded JSON or YAML.
type RenderInput struct {
	Timeline any
}

// RenderOutput is the output of Render.
type RenderOutput struct {
	Timeline model.Timeline
	HTML     string
}

// ClassifyInput is the input for Classify.
type ClassifyInput struct {
	Instructions string
	Documents    []string
}

// ClassifyOutput is the output of Classify.
type ClassifyOutput struct {
	Estimate interval.Estimate
	Hint     string
}
