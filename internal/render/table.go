package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gantt-chart-generator/internal/model"
)

const activeCell = "█"

// Table writes tl to w as a terminal table using the same header labels and
// active-cell rule as HTML.
func Table(w io.Writer, tl model.Timeline) error {
	if err := checkTimeline(tl); err != nil {
		return err
	}

	upper := cases.Upper(language.Und)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s (%d %ss)", tl.Title, tl.TotalIntervals, strings.ToLower(tl.Unit.Label())))

	header := table.Row{"Task"}
	for _, label := range HeaderLabels(tl) {
		header = append(header, label)
	}
	t.AppendHeader(header)

	for i, p := range tl.Phases {
		if i > 0 {
			t.AppendSeparator()
		}
		t.AppendRow(table.Row{upper.String(p.Name)})
		for _, task := range p.Tasks {
			row := table.Row{"  " + task.Name}
			for idx := 1; idx <= tl.TotalIntervals; idx++ {
				if idx >= task.StartIndex && idx <= task.EndIndex {
					row = append(row, activeCell)
				} else {
					row = append(row, "")
				}
			}
			t.AppendRow(row)
		}
	}

	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
