package model

import "strings"

// Unit is the granularity of the timeline's horizontal axis.
type Unit string

const (
	UnitWeek    Unit = "week"
	UnitMonth   Unit = "month"
	UnitQuarter Unit = "quarter"
	UnitYear    Unit = "year"
)

// MaxIntervals bounds TotalIntervals. Ten years of weeks.
const MaxIntervals = 520

// Units lists the supported units from finest to coarsest.
var Units = []Unit{UnitWeek, UnitMonth, UnitQuarter, UnitYear}

// ParseUnit resolves s (case-insensitive, surrounding space ignored) to a Unit.
func ParseUnit(s string) (Unit, bool) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	switch u {
	case UnitWeek, UnitMonth, UnitQuarter, UnitYear:
		return u, true
	}
	return "", false
}

// Prefix returns the header-cell prefix for the unit (W, M, Q, Y).
func (u Unit) Prefix() string {
	switch u {
	case UnitWeek:
		return "W"
	case UnitMonth:
		return "M"
	case UnitQuarter:
		return "Q"
	case UnitYear:
		return "Y"
	default:
		return "I"
	}
}

// Label returns the capitalized unit name.
func (u Unit) Label() string {
	switch u {
	case UnitWeek:
		return "Week"
	case UnitMonth:
		return "Month"
	case UnitQuarter:
		return "Quarter"
	case UnitYear:
		return "Year"
	default:
		return "Interval"
	}
}

// Task is a labeled span of 1-based, inclusive interval indices.
type Task struct {
	Name       string `json:"name" yaml:"name"`
	StartIndex int    `json:"startIndex" yaml:"startIndex"`
	EndIndex   int    `json:"endIndex" yaml:"endIndex"`
}

// Phase groups tasks that share a color category.
type Phase struct {
	Name         string `json:"name" yaml:"name"`
	ColorKey     string `json:"colorKey" yaml:"colorKey"`
	DisplayColor string `json:"displayColor,omitempty" yaml:"displayColor,omitempty"`
	Tasks        []Task `json:"tasks" yaml:"tasks"`
}

// Timeline is the validated project schedule handed to the renderer.
// Every task satisfies 1 <= StartIndex <= EndIndex <= TotalIntervals.
type Timeline struct {
	Title          string  `json:"title" yaml:"title"`
	Unit           Unit    `json:"unit" yaml:"unit"`
	TotalIntervals int     `json:"totalIntervals" yaml:"totalIntervals"`
	Phases         []Phase `json:"phases" yaml:"phases"`
}

// Clone returns a deep copy of t.
func (t Timeline) Clone() Timeline {
	out := t
	out.Phases = make([]Phase, len(t.Phases))
	for i, p := range t.Phases {
		out.Phases[i] = p
		out.Phases[i].Tasks = append([]Task(nil), p.Tasks...)
	}
	return out
}

// TaskCount returns the number of tasks across all phases.
func (t Timeline) TaskCount() int {
	n := 0
	for _, p := range t.Phases {
		n += len(p.Tasks)
	}
	return n
}
