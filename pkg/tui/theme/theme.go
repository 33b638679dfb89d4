package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   HeaderTheme
	Entry    EntryTheme
	Chart    ChartTheme
	Calendar CalendarTheme
	Footer   FooterTheme
	Modal    ModalTheme
}

// HeaderTheme styles the date banner.
type HeaderTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

// EntryTheme styles the entry pane in both browse and edit mode.
type EntryTheme struct {
	Frame        lipgloss.Style
	Measurements lipgloss.Style
	Body         lipgloss.Style
	Hint         lipgloss.Style
	FieldLabel   lipgloss.Style
	ActiveField  lipgloss.Style
	Cursor       lipgloss.Style
}

// ChartTheme styles the measurement graphs.
type ChartTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Bar   lipgloss.Style
	Empty lipgloss.Style
	Label lipgloss.Style
}

// CalendarTheme styles the month pane.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// FooterTheme styles the status/keybinding bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles the discard-confirm overlay.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			Frame: frame,
			Title: lipgloss.NewStyle().Bold(true),
		},
		Entry: EntryTheme{
			Frame:        frame,
			Measurements: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
			Body:         lipgloss.NewStyle(),
			Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Italic(true),
			FieldLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			ActiveField:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Cursor:       lipgloss.NewStyle().Reverse(true),
		},
		Chart: ChartTheme{
			Frame: frame,
			Title: lipgloss.NewStyle().Bold(true),
			Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
			Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
			Today:    lipgloss.NewStyle().Bold(true).Underline(true),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
