package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Jabawaka/diary/pkg/entry"
	"github.com/Jabawaka/diary/pkg/graph"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Entry prints one day's record in full.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	d := color.New(color.Bold)
	m := color.New(color.FgHiCyan)
	_, _ = d.Printf("%s", e.Date.Format("Monday, 02 January 2006"))
	_, _ = m.Printf("  %s kg, %s cm\n", e.WeightString(), e.WaistString())
	if e.Content != "" {
		fmt.Println(e.Content)
	}
}

// Journal prints the whole store as a table, oldest first.
func (pp *PrettyPrint) Journal(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow("DATE", "WEIGHT", "WAIST", "CONTENT")
	for _, e := range entries {
		table.AddRow(e.Date.String(), e.WeightString(), e.WaistString(), e.Content)
	}
	fmt.Println(table)
}

// Series prints an aggregated measurement series, one bucket per row,
// with a bar proportional to the value.
func (pp *PrettyPrint) Series(field graph.Field, zoom graph.Zoom, pts []graph.Point) {
	pp.Title(fmt.Sprintf("%s [%s] by %s", field, field.Unit(), zoom))

	max := 0.0
	for _, p := range pts {
		if p.Y > max {
			max = p.Y
		}
	}

	bar := color.New(color.FgCyan)
	faint := color.New(color.Faint)
	for _, p := range pts {
		if p.Y == 0.0 {
			_, _ = faint.Printf("%2.0f │\n", p.X)
			continue
		}
		width := 1
		if max > 0 {
			width = int(p.Y / max * 40)
			if width < 1 {
				width = 1
			}
		}
		fmt.Printf("%2.0f │", p.X)
		_, _ = bar.Print(strings.Repeat("█", width))
		fmt.Printf(" %.1f\n", p.Y)
	}
}
