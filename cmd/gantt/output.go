package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gantt-chart-generator/internal/model"
	"gantt-chart-generator/internal/render"
)

// Output formats accepted by --format.
const (
	formatHTML = "html"
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

var outputFormats = []string{formatHTML, formatJSON, formatYAML, formatText}

func parseOutputFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	for _, known := range outputFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(outputFormats, ", "))
}

// writeTimeline writes tl in format. markup is used for html and rendered on
// demand when empty.
func writeTimeline(w io.Writer, format string, tl model.Timeline, markup string) error {
	switch format {
	case formatHTML:
		if markup == "" {
			var err error
			if markup, err = render.HTML(tl); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, markup)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tl)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tl); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		return render.Table(w, tl)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// openOutput returns the --out file, or stdout when path is empty or "-".
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// decodeTimelineDocument parses a JSON or YAML timeline into generic values
// for the validator. JSON is read through the YAML decoder as a subset.
func decodeTimelineDocument(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("parse timeline: document is empty")
	}
	return doc, nil
}
