package schema

import (
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"
)

var errNotObject = errors.New("not a single JSON object")

var (
	reJSONFence = regexp.MustCompile("(?is)```json[ \\t]*\\r?\\n?(.*?)```")
	reAnyFence  = regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*[ \\t]*\\r?\\n?(.*?)```")
)

// Extract finds the timeline object in raw model output. It prefers a fenced
// json block, then any fenced block whose body is an object, then the first
// balanced top-level object literal in the text. Numbers decode as json.Number.
func Extract(raw string) (any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, newExtractionError("empty response", raw)
	}

	for _, m := range reJSONFence.FindAllStringSubmatch(raw, -1) {
		if v, err := decodeObject(m[1]); err == nil {
			return v, nil
		}
	}

	for _, m := range reAnyFence.FindAllStringSubmatch(raw, -1) {
		body := strings.TrimSpace(m[1])
		if !strings.HasPrefix(body, "{") {
			continue
		}
		if v, err := decodeObject(body); err == nil {
			return v, nil
		}
	}

	for start := strings.IndexByte(raw, '{'); start >= 0; {
		end := matchBrace(raw, start)
		if end < 0 {
			break
		}
		if v, err := decodeObject(raw[start : end+1]); err == nil {
			return v, nil
		}
		next := strings.IndexByte(raw[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	return nil, newExtractionError("no JSON object found", raw)
}

// decodeObject decodes s as exactly one JSON object.
func decodeObject(s string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v map[string]any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errNotObject
	}
	return v, nil
}

// matchBrace returns the index of the brace closing the one at open,
// skipping braces inside string literals. It returns -1 when unbalanced.
func matchBrace(s string, open int) int {
	depth := 0
	inString := false
	escaped := false

	for i := open; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
