package interval

import (
	"math"

	"gantt-chart-generator/internal/model"
)

// Correction describes what Reconcile changed, if anything.
type Correction struct {
	Applied   bool       `json:"applied"`
	Rule      string     `json:"rule,omitempty"`
	FromUnit  model.Unit `json:"fromUnit,omitempty"`
	FromTotal int        `json:"fromTotal,omitempty"`
	ToUnit    model.Unit `json:"toUnit,omitempty"`
	ToTotal   int        `json:"toTotal,omitempty"`
}

// Reconcile re-derives the axis from explicit cues in source and, when it
// disagrees with tl, returns a copy using the derived unit with every task
// rescaled by newTotal/oldTotal. Only explicit year ranges, year counts,
// month counts and quarterly year counts are considered. tl is not modified.
func Reconcile(tl model.Timeline, source string) (model.Timeline, Correction) {
	d, ok := Detect(source, true)
	if !ok {
		return tl, Correction{}
	}
	if d.Unit == tl.Unit && d.Count == tl.TotalIntervals {
		return tl, Correction{}
	}

	out := tl.Clone()
	out.Unit = d.Unit
	if d.Count != tl.TotalIntervals {
		rescale(&out, tl.TotalIntervals, d.Count)
	}

	return out, Correction{
		Applied:   true,
		Rule:      d.Rule,
		FromUnit:  tl.Unit,
		FromTotal: tl.TotalIntervals,
		ToUnit:    out.Unit,
		ToTotal:   out.TotalIntervals,
	}
}

func rescale(tl *model.Timeline, oldTotal, newTotal int) {
	newTotal = clampCount(newTotal)
	if oldTotal < 1 {
		oldTotal = 1
	}
	scale := float64(newTotal) / float64(oldTotal)

	for pi := range tl.Phases {
		tasks := tl.Phases[pi].Tasks
		for ti := range tasks {
			start := clamp(roundHalfUp(float64(tasks[ti].StartIndex)*scale), 1, newTotal)
			end := clamp(roundHalfUp(float64(tasks[ti].EndIndex)*scale), 1, newTotal)
			if end < start {
				end = start
			}
			tasks[ti].StartIndex = start
			tasks[ti].EndIndex = end
		}
	}
	tl.TotalIntervals = newTotal
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
