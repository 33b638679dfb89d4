// Package calendar renders the month pane of the journal UI.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Jabawaka/diary/pkg/dates"
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	HasEntry   bool
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// Render produces a multi-line calendar string for the month containing
// on.
func Render(on dates.Date, days []Day, opts Options) string {
	if on.IsZero() {
		return ""
	}

	first := on.MonthStart()
	daysInMonth := dates.DaysInMonth(on.Year(), on.Month())

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(on.Format("January 2006")))
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

// MonthDays builds the per-day metadata for Render from the dates that
// have entries.
func MonthDays(on, today dates.Date, entryDates []dates.Date) []Day {
	days := make([]Day, 0, dates.DaysInMonth(on.Year(), on.Month()))
	hasEntry := make(map[int]bool, len(entryDates))
	for _, d := range entryDates {
		if d.SameMonth(on) {
			hasEntry[d.Day()] = true
		}
	}
	for i := 1; i <= dates.DaysInMonth(on.Year(), on.Month()); i++ {
		d := dates.New(on.Year(), on.Month(), i)
		days = append(days, Day{
			Day:        i,
			HasEntry:   hasEntry[i],
			IsToday:    d.Equal(today),
			IsSelected: d.Equal(on),
		})
	}
	return days
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.HasEntry {
		style = opts.EntryStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
