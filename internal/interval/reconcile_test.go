package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gantt-chart-generator/internal/model"
)

func timeline(unit model.Unit, total int, tasks ...model.Task) model.Timeline {
	return model.Timeline{
		Title:          "Plan",
		Unit:           unit,
		TotalIntervals: total,
		Phases:         []model.Phase{{Name: "Build", ColorKey: "development", Tasks: tasks}},
	}
}

func TestReconcileRescales(t *testing.T) {
	in := timeline(model.UnitWeek, 10, model.Task{Name: "A", StartIndex: 3, EndIndex: 5})

	out, corr := Reconcile(in, "a 20-month initiative")

	require.True(t, corr.Applied)
	assert.Equal(t, RuleMonthCount, corr.Rule)
	assert.Equal(t, model.UnitWeek, corr.FromUnit)
	assert.Equal(t, 10, corr.FromTotal)
	assert.Equal(t, model.UnitMonth, corr.ToUnit)
	assert.Equal(t, 20, corr.ToTotal)

	assert.Equal(t, model.UnitMonth, out.Unit)
	assert.Equal(t, 20, out.TotalIntervals)
	assert.Equal(t, 6, out.Phases[0].Tasks[0].StartIndex)
	assert.Equal(t, 10, out.Phases[0].Tasks[0].EndIndex)

	// input untouched
	assert.Equal(t, 3, in.Phases[0].Tasks[0].StartIndex)
	assert.Equal(t, model.UnitWeek, in.Unit)
}

func TestReconcileIdempotent(t *testing.T) {
	in := timeline(model.UnitWeek, 12,
		model.Task{Name: "A", StartIndex: 1, EndIndex: 4},
		model.Task{Name: "B", StartIndex: 5, EndIndex: 12},
	)
	source := "Roadmap from 2020 to 2030"

	once, corr := Reconcile(in, source)
	require.True(t, corr.Applied)

	twice, corr2 := Reconcile(once, source)
	assert.False(t, corr2.Applied)
	assert.Equal(t, once, twice)
}

func TestReconcileRoundsHalfUpAndClamps(t *testing.T) {
	in := timeline(model.UnitWeek, 4,
		model.Task{Name: "A", StartIndex: 1, EndIndex: 1},
		model.Task{Name: "B", StartIndex: 3, EndIndex: 4},
	)
	out, corr := Reconcile(in, "six month plan")
	require.True(t, corr.Applied)

	tasks := out.Phases[0].Tasks
	assert.Equal(t, 2, tasks[0].StartIndex)
	assert.Equal(t, 2, tasks[0].EndIndex)
	assert.Equal(t, 5, tasks[1].StartIndex)
	assert.Equal(t, 6, tasks[1].EndIndex)

	shrink := timeline(model.UnitYear, 12,
		model.Task{Name: "A", StartIndex: 1, EndIndex: 1},
		model.Task{Name: "B", StartIndex: 12, EndIndex: 12},
	)
	out, _ = Reconcile(shrink, "2020 through 2029")
	for _, task := range out.Phases[0].Tasks {
		assert.GreaterOrEqual(t, task.StartIndex, 1)
		assert.LessOrEqual(t, task.EndIndex, 10)
		assert.LessOrEqual(t, task.StartIndex, task.EndIndex)
	}
}

func TestReconcileUnitOnly(t *testing.T) {
	in := timeline(model.UnitWeek, 11, model.Task{Name: "A", StartIndex: 2, EndIndex: 7})
	out, corr := Reconcile(in, "2020 to 2030")
	require.True(t, corr.Applied)
	assert.Equal(t, model.UnitYear, out.Unit)
	assert.Equal(t, 2, out.Phases[0].Tasks[0].StartIndex)
	assert.Equal(t, 7, out.Phases[0].Tasks[0].EndIndex)
}

func TestReconcileIgnoresHintOnlyCues(t *testing.T) {
	in := timeline(model.UnitWeek, 12, model.Task{Name: "A", StartIndex: 1, EndIndex: 3})

	for _, source := range []string{
		"two-year plan",
		"a 3-month pilot",
		"long-term strategic vision",
		"Ship in Q3",
		"six weeks",
		"nothing at all",
	} {
		out, corr := Reconcile(in, source)
		assert.False(t, corr.Applied, source)
		assert.Equal(t, in, out, source)
	}
}

func TestReconcileLongMonthCount(t *testing.T) {
	in := timeline(model.UnitMonth, 30, model.Task{Name: "A", StartIndex: 1, EndIndex: 30})
	out, corr := Reconcile(in, "a 30-month program")
	require.True(t, corr.Applied)
	assert.Equal(t, model.UnitQuarter, out.Unit)
	assert.Equal(t, 10, out.TotalIntervals)
	assert.Equal(t, 1, out.Phases[0].Tasks[0].StartIndex)
	assert.Equal(t, 10, out.Phases[0].Tasks[0].EndIndex)
}

// The corrector ranks explicit month counts ahead of quarterly year counts,
// while the classifier ranks them the other way round.
func TestReconcileMonthCountOutranksQuarterlyYears(t *testing.T) {
	source := "3-year quarterly roadmap with an 18-month first stage"
	require.Equal(t, RuleYearCountQuarterly, Classify(source).Rule)

	in := timeline(model.UnitQuarter, 12, model.Task{Name: "A", StartIndex: 1, EndIndex: 6})
	out, corr := Reconcile(in, source)

	require.True(t, corr.Applied)
	assert.Equal(t, RuleMonthCount, corr.Rule)
	assert.Equal(t, model.UnitMonth, out.Unit)
	assert.Equal(t, 18, out.TotalIntervals)
	assert.Equal(t, 2, out.Phases[0].Tasks[0].StartIndex)
	assert.Equal(t, 9, out.Phases[0].Tasks[0].EndIndex)
}

func TestReconcileQuarterlyYearsWithoutMonths(t *testing.T) {
	in := timeline(model.UnitWeek, 12, model.Task{Name: "A", StartIndex: 1, EndIndex: 12})
	out, corr := Reconcile(in, "3-year roadmap with quarterly milestones")

	require.True(t, corr.Applied)
	assert.Equal(t, RuleYearCountQuarterly, corr.Rule)
	assert.Equal(t, model.UnitQuarter, out.Unit)
	assert.Equal(t, 12, out.TotalIntervals)
}
