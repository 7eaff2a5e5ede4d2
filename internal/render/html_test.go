package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gantt-chart-generator/internal/model"
)

func pilot() model.Timeline {
	return model.Timeline{
		Title:          "Pilot",
		Unit:           model.UnitWeek,
		TotalIntervals: 4,
		Phases: []model.Phase{{
			Name:     "Build",
			ColorKey: "development",
			Tasks:    []model.Task{{Name: "Code", StartIndex: 1, EndIndex: 3}},
		}},
	}
}

func TestHTMLPilot(t *testing.T) {
	out, err := HTML(pilot())
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, `<div class="header-cell">`))
	for _, label := range []string{"W1", "W2", "W3", "W4"} {
		assert.Contains(t, out, `<div class="header-cell">`+label+`</div>`)
	}
	assert.NotContains(t, out, "W5")

	assert.Contains(t, out, `<div class="phase-header development">BUILD</div>`)
	assert.Equal(t, 3, strings.Count(out, `class="interval-cell active"`))
	assert.Equal(t, 1, strings.Count(out, `<div class="interval-cell"></div>`))
	assert.Equal(t, 3, strings.Count(out, `<div class="bar development">`))
	assert.Contains(t, out, `title="Code (W1-W3)"`)

	// the bar occupies the first three cells of the row
	row := out[strings.Index(out, `<div class="task-cell">Code</div>`):]
	lastActive := strings.LastIndex(row, "interval-cell active")
	empty := strings.Index(row, `<div class="interval-cell"></div>`)
	assert.Less(t, lastActive, empty)
}

func TestHTMLDeterministic(t *testing.T) {
	a, err := HTML(pilot())
	require.NoError(t, err)
	b, err := HTML(pilot())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHTMLEscapesUserText(t *testing.T) {
	tl := pilot()
	tl.Title = `Q&A "launch"`
	tl.Phases[0].Name = "it's"
	tl.Phases[0].Tasks[0].Name = "<script>"

	out, err := HTML(tl)
	require.NoError(t, err)

	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Q&amp;A &#34;launch&#34;")
	assert.Contains(t, out, "IT&#39;S")
}

func TestHTMLUnknownColorFallsBack(t *testing.T) {
	tl := pilot()
	tl.Phases[0].ColorKey = "Mauve"

	out, err := HTML(tl)
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="bar planning">`)
	assert.NotContains(t, out, "Mauve")
}

func TestHTMLColorKeyIgnoresCase(t *testing.T) {
	tl := pilot()
	tl.Phases[0].ColorKey = "DESIGN"

	out, err := HTML(tl)
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="bar design">`)
}

func TestHTMLDisplayColor(t *testing.T) {
	tl := pilot()
	tl.Phases[0].DisplayColor = "#123abc"
	out, err := HTML(tl)
	require.NoError(t, err)
	assert.Contains(t, out, `style="background: #123abc;"`)

	tl.Phases[0].DisplayColor = "red;} body {display:none"
	out, err = HTML(tl)
	require.NoError(t, err)
	assert.NotContains(t, out, "display:none")
}

func TestHTMLUnitPrefixAndWidth(t *testing.T) {
	tl := pilot()
	tl.Unit = model.UnitYear
	tl.TotalIntervals = 20
	tl.Phases[0].Tasks[0].EndIndex = 20

	out, err := HTML(tl)
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="header-cell">Y20</div>`)
	assert.Contains(t, out, "max-width: 2250px")
	assert.Contains(t, out, "repeat(20, 1fr)")
	assert.Contains(t, out, "span 21")

	assert.Equal(t, 1400, ChartWidth(4))
	assert.Equal(t, 2250, ChartWidth(20))
}

func TestHTMLRenderError(t *testing.T) {
	tl := pilot()
	tl.Phases[0].Tasks[0].EndIndex = 9

	_, err := HTML(tl)
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Contains(t, renderErr.Reason, "phases[0].tasks[0]")

	_, err = HTML(model.Timeline{Title: "x"})
	require.ErrorAs(t, err, &renderErr)

	wide := pilot()
	wide.TotalIntervals = model.MaxIntervals + 1
	_, err = HTML(wide)
	require.ErrorAs(t, err, &renderErr)
	assert.Contains(t, renderErr.Reason, "must be <= 520")
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, "#9c27b0", ResolveColor(" Testing ").Bar)
	assert.Equal(t, DefaultColorKey, ResolveColor("").Key)
	assert.Equal(t, DefaultColorKey, ResolveColor("unknown").Key)
	assert.Len(t, ColorKeys(), 8)
}
