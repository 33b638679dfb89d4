package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Jabawaka/diary/pkg/app"
	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/graph"
	"github.com/Jabawaka/diary/pkg/tui/components/calendar"
	"github.com/Jabawaka/diary/pkg/tui/components/chart"
)

const (
	calendarWidth = 24
	cursorMarker  = '█'
)

// View renders the full journal screen.
func (m Model) View() string {
	width := m.termWidth
	if width <= 0 {
		width = 96
	}

	header := m.viewHeader(width)
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewEntry(width-calendarWidth-1),
		" ",
		m.viewCalendar(),
	)
	graphs := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewChart("Weight [kg]", graph.Weight, width/2-1),
		" ",
		m.viewChart("Waist [cm]", graph.Waist, width/2-1),
	)
	footer := m.viewFooter(width)

	body := strings.Join([]string{header, main, graphs, footer}, "\n")

	if m.session.Screen() == app.ConfirmDiscard {
		body += "\n" + m.viewConfirm()
	}
	return body
}

func (m Model) viewHeader(width int) string {
	title := fmt.Sprintf("-- Diary %s --", m.session.Date().Format("02/01/2006"))
	return m.theme.Header.Frame.Width(width - 2).Render(
		lipgloss.PlaceHorizontal(width-4, lipgloss.Center, m.theme.Header.Title.Render(title)),
	)
}

func (m Model) viewEntry(width int) string {
	t := m.theme.Entry
	var body string

	switch m.session.Screen() {
	case app.Browsing:
		if e, ok := m.session.Entry(); ok {
			measurements := t.Measurements.Render(
				fmt.Sprintf("%s kg, %s cm", e.WeightString(), e.WaistString()),
			)
			body = measurements + "\n\n" + t.Body.Render(e.Content)
		} else {
			body = t.Hint.Render("Press 'e' to enter this day's entry")
		}
	default:
		body = m.viewEditFields()
	}

	return t.Frame.Width(width - 2).Height(8).Render(body)
}

// viewEditFields renders the three edit buffers, cursor marker on the
// active one.
func (m Model) viewEditFields() string {
	t := m.theme.Entry
	lines := make([]string, 0, 3)
	for _, f := range []app.Field{app.FieldContent, app.FieldWeight, app.FieldWaist} {
		label := fieldLabel(f)
		style := t.FieldLabel
		text := m.session.Buffer(f).Text()
		if f == m.session.ActiveField() {
			style = t.ActiveField
			text = m.session.Buffer(f).Display(cursorMarker)
		}
		lines = append(lines, style.Render(label)+" "+text)
	}
	return strings.Join(lines, "\n")
}

func fieldLabel(f app.Field) string {
	switch f {
	case app.FieldContent:
		return "Content:    "
	case app.FieldWeight:
		return "Weight [kg]:"
	case app.FieldWaist:
		return "Waist [cm]: "
	}
	return ""
}

func (m Model) viewCalendar() string {
	t := m.theme.Calendar
	on := m.session.Date()

	entryDates := make([]dates.Date, 0, m.session.Store().Len())
	for _, e := range m.session.Store().All() {
		entryDates = append(entryDates, e.Date)
	}

	days := calendar.MonthDays(on, app.SystemClock{}.Today(), entryDates)
	return calendar.Render(on, days, calendar.Options{
		HeaderStyle:   t.Header,
		EmptyStyle:    t.Empty,
		EntryStyle:    t.Entry,
		TodayStyle:    t.Today,
		SelectedStyle: t.Selected,
		ShowHeader:    true,
	})
}

func (m Model) viewChart(title string, field graph.Field, width int) string {
	t := m.theme.Chart
	label := fmt.Sprintf("%s · %s zoom", title, m.session.Zoom())
	rendered := chart.Render(label, m.session.Series(field), chart.Options{
		TitleStyle: t.Title,
		BarStyle:   t.Bar,
		EmptyStyle: t.Empty,
		LabelStyle: t.Label,
		Height:     6,
	})
	return t.Frame.Width(width - 2).Render(rendered)
}

func (m Model) viewFooter(width int) string {
	t := m.theme.Footer

	var help string
	switch m.session.Screen() {
	case app.Browsing:
		help = browseHelp(m.keys)
	case app.Editing:
		help = "tab next field  |  enter save  |  esc cancel"
	case app.ConfirmDiscard:
		help = "y discard  |  n keep editing"
	}

	status := m.status
	style := t.Status
	if m.lastErr != nil {
		status = "ERR: " + m.lastErr.Error()
		style = t.Error
	}

	line := t.Help.Render(help)
	if status != "" {
		line += "  " + style.Render("["+status+"]")
	}
	return lipgloss.NewStyle().Width(width).Render(line)
}

func browseHelp(k keyMap) string {
	parts := make([]string, 0, 6)
	for _, b := range []key.Binding{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.Edit, k.ZoomIn, k.ZoomOut, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  |  ")
}

func (m Model) viewConfirm() string {
	t := m.theme.Modal
	return t.Frame.Render(
		t.Title.Render("Discard changes?") + "\n\n" +
			t.Body.Render("y: discard and return to browsing\nn: keep editing"),
	)
}
