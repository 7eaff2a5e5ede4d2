package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gantt-chart-generator/internal/model"
)

const (
	minChartWidth = 1400
	labelWidth    = 250
	intervalWidth = 100
)

//go:embed templates/gantt.html.tmpl
var templateFS embed.FS

var chartTemplate = template.Must(template.ParseFS(templateFS, "templates/gantt.html.tmpl"))

type chartView struct {
	Title    string
	Total    int
	Span     int
	MaxWidth int
	Headers  []string
	Styles   []styleView
	Phases   []phaseView
}

type styleView struct {
	Key    string
	Bar    template.CSS
	Header template.CSS
}

type phaseView struct {
	Name  string
	Key   string
	Color template.CSS
	Tasks []taskView
}

type taskView struct {
	Name  string
	Cells []cellView
}

type cellView struct {
	Active  bool
	Tooltip string
}

// HTML renders tl as a self-contained HTML page. Output depends only on tl.
// All user text is escaped by html/template.
func HTML(tl model.Timeline) (string, error) {
	if err := checkTimeline(tl); err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := chartTemplate.Execute(&sb, newChartView(tl)); err != nil {
		return "", &RenderError{Reason: err.Error()}
	}
	return sb.String(), nil
}

// ChartWidth returns the container's maximum width in pixels.
func ChartWidth(totalIntervals int) int {
	return max(minChartWidth, labelWidth+totalIntervals*intervalWidth)
}

// HeaderLabels returns the axis labels W1, W2... for tl.
func HeaderLabels(tl model.Timeline) []string {
	prefix := tl.Unit.Prefix()
	labels := make([]string, tl.TotalIntervals)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return labels
}

func newChartView(tl model.Timeline) chartView {
	upper := cases.Upper(language.Und)
	prefix := tl.Unit.Prefix()

	v := chartView{
		Title:    tl.Title,
		Total:    tl.TotalIntervals,
		Span:     tl.TotalIntervals + 1,
		MaxWidth: ChartWidth(tl.TotalIntervals),
		Headers:  HeaderLabels(tl),
		Styles:   make([]styleView, 0, len(Palette)),
		Phases:   make([]phaseView, 0, len(tl.Phases)),
	}
	for _, c := range Palette {
		v.Styles = append(v.Styles, styleView{Key: c.Key, Bar: template.CSS(c.Bar), Header: template.CSS(c.Header)})
	}

	for _, p := range tl.Phases {
		pv := phaseView{
			Name:  upper.String(p.Name),
			Key:   ResolveColor(p.ColorKey).Key,
			Tasks: make([]taskView, 0, len(p.Tasks)),
		}
		if isHexColor(p.DisplayColor) {
			pv.Color = template.CSS(p.DisplayColor)
		}

		for _, t := range p.Tasks {
			tooltip := fmt.Sprintf("%s (%s%d-%s%d)", t.Name, prefix, t.StartIndex, prefix, t.EndIndex)
			tv := taskView{Name: t.Name, Cells: make([]cellView, tl.TotalIntervals)}
			for i := range tv.Cells {
				idx := i + 1
				if idx >= t.StartIndex && idx <= t.EndIndex {
					tv.Cells[i] = cellView{Active: true, Tooltip: tooltip}
				}
			}
			pv.Tasks = append(pv.Tasks, tv)
		}
		v.Phases = append(v.Phases, pv)
	}
	return v
}
