package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gantt-chart-generator/internal/model"
)

// Older documents used week-centric names. Canonical names win when both appear.
var (
	aliasTotalIntervals = []string{"totalIntervals", "totalWeeks"}
	aliasUnit           = []string{"unit", "interval"}
	aliasColorKey       = []string{"colorKey", "colorClass", "color"}
	aliasStartIndex     = []string{"startIndex", "startWeek"}
	aliasEndIndex       = []string{"endIndex", "endWeek"}
)

// Parse extracts and validates a timeline from raw model output.
func Parse(raw string) (model.Timeline, error) {
	v, err := Extract(raw)
	if err != nil {
		return model.Timeline{}, err
	}
	return Validate(v)
}

// Validate coerces an untrusted decoded document into a Timeline. Checks run in
// a fixed order and stop at the first failure; nothing partial is returned.
func Validate(raw any) (model.Timeline, error) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return model.Timeline{}, &SchemaError{Path: "$", Reason: "must be an object"}
	}

	title, err := requireString(doc, "title", "title")
	if err != nil {
		return model.Timeline{}, err
	}

	total, present := lookup(doc, aliasTotalIntervals)
	if !present {
		return model.Timeline{}, &SchemaError{Path: "totalIntervals", Reason: "is required"}
	}
	totalIntervals, ok := toInt(total)
	if !ok || totalIntervals < 1 {
		return model.Timeline{}, &SchemaError{Path: "totalIntervals", Reason: "must be an integer >= 1", Value: total}
	}
	if totalIntervals > model.MaxIntervals {
		return model.Timeline{}, &SchemaError{Path: "totalIntervals", Reason: fmt.Sprintf("must be <= %d", model.MaxIntervals), Value: total}
	}

	unit := model.UnitWeek
	if v, present := lookup(doc, aliasUnit); present && v != nil {
		s, _ := v.(string)
		u, ok := model.ParseUnit(s)
		if !ok {
			return model.Timeline{}, &SchemaError{Path: "unit", Reason: "must be one of week, month, quarter, year", Value: v}
		}
		unit = u
	}

	rawPhases, err := requireList(doc, "phases", "phases")
	if err != nil {
		return model.Timeline{}, err
	}

	tl := model.Timeline{
		Title:          title,
		Unit:           unit,
		TotalIntervals: totalIntervals,
		Phases:         make([]model.Phase, 0, len(rawPhases)),
	}
	for i, rp := range rawPhases {
		phase, err := validatePhase(rp, fmt.Sprintf("phases[%d]", i), totalIntervals)
		if err != nil {
			return model.Timeline{}, err
		}
		tl.Phases = append(tl.Phases, phase)
	}

	return tl, nil
}

func validatePhase(raw any, path string, total int) (model.Phase, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return model.Phase{}, &SchemaError{Path: path, Reason: "must be an object"}
	}

	name, err := requireString(m, "name", path+".name")
	if err != nil {
		return model.Phase{}, err
	}

	colorKey, present := lookup(m, aliasColorKey)
	key, _ := colorKey.(string)
	if !present || strings.TrimSpace(key) == "" {
		return model.Phase{}, &SchemaError{Path: path + ".colorKey", Reason: "must be a non-empty string", Value: colorKey}
	}

	rawTasks, err := requireList(m, "tasks", path+".tasks")
	if err != nil {
		return model.Phase{}, err
	}

	phase := model.Phase{
		Name:     name,
		ColorKey: strings.TrimSpace(key),
		Tasks:    make([]model.Task, 0, len(rawTasks)),
	}
	if dc, ok := m["displayColor"].(string); ok {
		phase.DisplayColor = strings.TrimSpace(dc)
	}

	for i, rt := range rawTasks {
		task, err := validateTask(rt, fmt.Sprintf("%s.tasks[%d]", path, i), total)
		if err != nil {
			return model.Phase{}, err
		}
		phase.Tasks = append(phase.Tasks, task)
	}
	return phase, nil
}

func validateTask(raw any, path string, total int) (model.Task, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return model.Task{}, &SchemaError{Path: path, Reason: "must be an object"}
	}

	name, err := requireString(m, "name", path+".name")
	if err != nil {
		return model.Task{}, err
	}

	startRaw, _ := lookup(m, aliasStartIndex)
	start, ok := toInt(startRaw)
	switch {
	case !ok:
		return model.Task{}, &SchemaError{Path: path + ".startIndex", Reason: "must be an integer", Value: startRaw}
	case start < 1:
		return model.Task{}, &SchemaError{Path: path + ".startIndex", Reason: "must be >= 1", Value: start}
	case start > total:
		return model.Task{}, &SchemaError{Path: path + ".startIndex", Reason: fmt.Sprintf("must be <= totalIntervals (%d)", total), Value: start}
	}

	endRaw, _ := lookup(m, aliasEndIndex)
	end, ok := toInt(endRaw)
	switch {
	case !ok:
		return model.Task{}, &SchemaError{Path: path + ".endIndex", Reason: "must be an integer", Value: endRaw}
	case end < start:
		return model.Task{}, &SchemaError{Path: path + ".endIndex", Reason: fmt.Sprintf("must be >= startIndex (%d)", start), Value: end}
	case end > total:
		return model.Task{}, &SchemaError{Path: path + ".endIndex", Reason: fmt.Sprintf("must be <= totalIntervals (%d)", total), Value: end}
	}

	return model.Task{Name: name, StartIndex: start, EndIndex: end}, nil
}

// lookup returns the value of the first key in keys present in m.
func lookup(m map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func requireString(m map[string]any, key, path string) (string, error) {
	v, ok := m[key]
	s, isString := v.(string)
	if !ok || !isString || strings.TrimSpace(s) == "" {
		return "", &SchemaError{Path: path, Reason: "must be a non-empty string", Value: v}
	}
	return strings.TrimSpace(s), nil
}

func requireList(m map[string]any, key, path string) ([]any, error) {
	v, ok := m[key]
	list, isList := v.([]any)
	if !ok || !isList || len(list) == 0 {
		return nil, &SchemaError{Path: path, Reason: "must be a non-empty array", Value: v}
	}
	return list, nil
}

// toInt accepts JSON numbers (json.Number or float64) and the integer types
// produced by YAML decoding. Fractional values and anything outside the
// int32 range are rejected.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int64ToInt(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	case float32:
		return floatToInt(float64(n))
	case int:
		return int64ToInt(int64(n))
	case int64:
		return int64ToInt(n)
	case int32:
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func int64ToInt(i int64) (int, bool) {
	if i > math.MaxInt32 || i < math.MinInt32 {
		return 0, false
	}
	return int(i), true
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
