package render

import (
	"fmt"

	"gantt-chart-generator/internal/model"
)

// RenderError means a timeline reached the renderer without satisfying the
// invariants the validator guarantees. It indicates a bug upstream.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render timeline: %s", e.Reason)
}

func checkTimeline(tl model.Timeline) error {
	total := tl.TotalIntervals
	if total < 1 {
		return &RenderError{Reason: fmt.Sprintf("totalIntervals must be >= 1, got %d", total)}
	}
	if total > model.MaxIntervals {
		return &RenderError{Reason: fmt.Sprintf("totalIntervals must be <= %d, got %d", model.MaxIntervals, total)}
	}
	for pi, p := range tl.Phases {
		for ti, t := range p.Tasks {
			if t.StartIndex < 1 || t.EndIndex < t.StartIndex || t.EndIndex > total {
				return &RenderError{Reason: fmt.Sprintf("phases[%d].tasks[%d] spans %d-%d outside 1-%d",
					pi, ti, t.StartIndex, t.EndIndex, total)}
			}
		}
	}
	return nil
}
