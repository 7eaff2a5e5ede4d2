package interval

import (
	"fmt"
	"strings"

	"gantt-chart-generator/internal/model"
)

// Estimate is the classifier's best guess for the timeline axis.
type Estimate struct {
	Unit           model.Unit `json:"unit"`
	TotalIntervals int        `json:"totalIntervals"`
	Rule           string     `json:"rule"`
	Approximate    bool       `json:"approximate"`
}

// Classify picks a unit and interval count from free text. It never fails:
// text without any time cue yields 12 weeks.
func Classify(text string) Estimate {
	d, ok := Detect(text, false)
	if !ok {
		return Estimate{Unit: DefaultUnit, TotalIntervals: DefaultIntervals, Rule: RuleDefault}
	}
	return Estimate{
		Unit:           d.Unit,
		TotalIntervals: d.Count,
		Rule:           d.Rule,
		Approximate:    d.Approximate,
	}
}

// ClassifyInputs classifies the instructions together with any reference
// documents, joined the same way SourceText joins them.
func ClassifyInputs(instructions string, documents []string) Estimate {
	return Classify(SourceText(instructions, documents))
}

// SourceText joins instructions and documents into one case-folded text.
func SourceText(instructions string, documents []string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(instructions))
	sb.WriteString("\n")
	sb.WriteString(strings.ToLower(strings.Join(documents, "\n\n")))
	return sb.String()
}

// Hint renders the estimate as guidance for the language model.
func (e Estimate) Hint() string {
	plural := strings.ToLower(e.Unit.Label()) + "s"

	switch {
	case e.Rule == RuleDefault:
		return fmt.Sprintf("DETECTED TIME FRAME: none stated. Use unit=%q with about %d %s unless the documents clearly call for another scale.",
			e.Unit, e.TotalIntervals, plural)
	case e.Approximate:
		return fmt.Sprintf("DETECTED TIME FRAME: long-horizon language without an explicit duration. Prefer unit=%q and choose totalIntervals to fit the scope (around %d %s).",
			e.Unit, e.TotalIntervals, plural)
	default:
		return fmt.Sprintf("DETECTED TIME FRAME: you MUST set unit=%q and totalIntervals=%d (%d %s).",
			e.Unit, e.TotalIntervals, e.TotalIntervals, plural)
	}
}
