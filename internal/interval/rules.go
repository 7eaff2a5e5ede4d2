package interval

import (
	"cmp"
	"slices"

	"gantt-chart-generator/internal/model"
)

// Rule names, in classifier rank order.
const (
	RuleYearRange          = "year-range"
	RuleYearCountLong      = "year-count-long"
	RuleYearCountQuarterly = "year-count-quarterly"
	RuleYearCountMid       = "year-count-mid"
	RuleYearCountSingle    = "year-count-single"
	RuleMonthCount         = "month-count"
	RuleMonthCountShort    = "month-count-short"
	RuleQuarterOnly        = "quarter-only"
	RuleWeekCount          = "week-count"
	RuleSprint             = "sprint"
	RuleLongHorizon        = "long-horizon"
	RuleDefault            = "default"
)

const (
	// YearThreshold is the smallest span, in years, drawn on a yearly axis.
	// Shorter multi-year spans use quarters.
	YearThreshold = 6

	// MonthQuarterThreshold is the smallest month count drawn on a quarterly axis.
	MonthQuarterThreshold = 24

	// MinReconcileMonths is the smallest month count the corrector acts on.
	MinReconcileMonths = 6

	DefaultUnit      = model.UnitWeek
	DefaultIntervals = 12

	// longHorizonYears is used when the text only says "long-term" and the
	// like. It is never derived from the text.
	longHorizonYears = 5

	sprintWeeks = 2
)

// Detection is the outcome of the first rule that matched.
type Detection struct {
	Rule         string
	Unit         model.Unit
	Count        int
	Reconcilable bool
	Approximate  bool
}

// rule is one entry of the shared list. The list order is the classifier's
// rank. reconcileRank orders the rules Reconcile consults; zero marks a
// hint-only rule it skips.
type rule struct {
	name          string
	reconcileRank int
	approximate   bool
	match         func(s Signals) (model.Unit, int, bool)
}

// ranked is the single rule list shared by Classify and Reconcile.
// Literal numbers always outrank qualitative cues, and year counts outrank
// month counts when classifying.
var ranked = []rule{
	{name: RuleYearRange, reconcileRank: 1, match: func(s Signals) (model.Unit, int, bool) {
		if s.YearRange == nil {
			return "", 0, false
		}
		span := s.YearRange.Span()
		switch {
		case span >= YearThreshold:
			return model.UnitYear, span, true
		case span >= 2:
			return model.UnitQuarter, span * 4, true
		default:
			return model.UnitQuarter, 4, true
		}
	}},
	{name: RuleYearCountLong, reconcileRank: 2, match: func(s Signals) (model.Unit, int, bool) {
		if s.Years >= YearThreshold {
			return model.UnitYear, s.Years, true
		}
		return "", 0, false
	}},
	{name: RuleYearCountQuarterly, reconcileRank: 4, match: func(s Signals) (model.Unit, int, bool) {
		if s.QuarterPhrase && s.Years >= 2 && s.Years < YearThreshold {
			return model.UnitQuarter, s.Years * 4, true
		}
		return "", 0, false
	}},
	{name: RuleYearCountMid, match: func(s Signals) (model.Unit, int, bool) {
		if s.Years >= 2 && s.Years < YearThreshold {
			return model.UnitQuarter, s.Years * 4, true
		}
		return "", 0, false
	}},
	{name: RuleYearCountSingle, match: func(s Signals) (model.Unit, int, bool) {
		if s.Years == 1 {
			return model.UnitMonth, 12, true
		}
		return "", 0, false
	}},
	{name: RuleMonthCount, reconcileRank: 3, match: func(s Signals) (model.Unit, int, bool) {
		if s.Months >= MonthQuarterThreshold {
			return model.UnitQuarter, ceilDiv(s.Months, 3), true
		}
		if s.Months >= MinReconcileMonths {
			return model.UnitMonth, s.Months, true
		}
		return "", 0, false
	}},
	{name: RuleMonthCountShort, match: func(s Signals) (model.Unit, int, bool) {
		if s.Months > 0 {
			return model.UnitMonth, s.Months, true
		}
		return "", 0, false
	}},
	{name: RuleQuarterOnly, match: func(s Signals) (model.Unit, int, bool) {
		if s.QuarterPhrase || s.FiscalYear {
			return model.UnitQuarter, 4, true
		}
		return "", 0, false
	}},
	{name: RuleWeekCount, match: func(s Signals) (model.Unit, int, bool) {
		if s.Weeks > 0 {
			return model.UnitWeek, s.Weeks, true
		}
		return "", 0, false
	}},
	{name: RuleSprint, match: func(s Signals) (model.Unit, int, bool) {
		if s.Sprints > 0 {
			return model.UnitWeek, s.Sprints * sprintWeeks, true
		}
		if s.SprintLanguage {
			return model.UnitWeek, DefaultIntervals, true
		}
		return "", 0, false
	}},
	{name: RuleLongHorizon, approximate: true, match: func(s Signals) (model.Unit, int, bool) {
		if s.LongHorizon {
			return model.UnitYear, longHorizonYears, true
		}
		return "", 0, false
	}},
}

// reconcileOrder holds the reconcilable rules sorted by reconcileRank:
// year range, long year count, month count, quarterly year count.
var reconcileOrder = func() []rule {
	var rs []rule
	for _, r := range ranked {
		if r.reconcileRank > 0 {
			rs = append(rs, r)
		}
	}
	slices.SortStableFunc(rs, func(a, b rule) int {
		return cmp.Compare(a.reconcileRank, b.reconcileRank)
	})
	return rs
}()

// Detect runs the rules over text and returns the first match. By default the
// classifier order applies. When reconcilableOnly is set, only the rules the
// corrector acts on are consulted, in the corrector's order.
func Detect(text string, reconcilableOnly bool) (Detection, bool) {
	return detect(Scan(text), reconcilableOnly)
}

func detect(s Signals, reconcilableOnly bool) (Detection, bool) {
	rules := ranked
	if reconcilableOnly {
		rules = reconcileOrder
	}
	for _, r := range rules {
		unit, count, ok := r.match(s)
		if !ok {
			continue
		}
		return Detection{
			Rule:         r.name,
			Unit:         unit,
			Count:        clampCount(count),
			Reconcilable: r.reconcileRank > 0,
			Approximate:  r.approximate,
		}, true
	}
	return Detection{}, false
}

func clampCount(n int) int {
	return min(max(n, 1), model.MaxIntervals)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
