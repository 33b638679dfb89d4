// Package tui is the interactive journal screen: browse entries by
// date, edit the current day, and watch the measurement graphs move.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/Jabawaka/diary/pkg/app"
	"github.com/Jabawaka/diary/pkg/store"
	"github.com/Jabawaka/diary/pkg/tui/theme"
)

// keyMap groups the browse-mode bindings for dispatch and footer help.
type keyMap struct {
	PrevDay  key.Binding
	NextDay  key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Edit     key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "prev day")),
		NextDay:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "next day")),
		PrevWeek: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "prev week")),
		NextWeek: key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "next week")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit entry")),
		ZoomIn:   key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "zoom out")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model contains the UI state around the session core.
type Model struct {
	session *app.Session
	ctx     context.Context

	keys     keyMap
	theme    theme.Theme
	autosave time.Duration
	events   <-chan store.Event

	termWidth  int
	termHeight int

	status  string
	lastErr error
}

// New creates a UI model around the session. events may be nil when no
// persistence watch is configured.
func New(session *app.Session, events <-chan store.Event, autosave time.Duration) Model {
	return Model{
		session:  session,
		ctx:      context.Background(),
		keys:     defaultKeyMap(),
		theme:    theme.Default(),
		autosave: autosave,
		events:   events,
		status:   "browsing",
	}
}

// messages
type autosaveTickMsg time.Time
type storeChangedMsg struct{}
type watchClosedMsg struct{}

// Init arms the autosave timer and the storage watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.armAutosave(), m.waitForChange())
}

func (m Model) armAutosave() tea.Cmd {
	if m.autosave <= 0 {
		return nil
	}
	return tea.Tick(m.autosave, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}

func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg{}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case autosaveTickMsg:
		if m.session.Screen() == app.Browsing {
			if err := m.session.Persist(m.ctx); err != nil {
				m.lastErr = err
			} else {
				m.status = "autosaved"
				m.lastErr = nil
			}
		}
		return m, m.armAutosave()
	case storeChangedMsg:
		if err := m.session.Reload(m.ctx); err != nil {
			m.lastErr = err
		} else if m.session.Screen() == app.Browsing {
			m.status = "journal reloaded from disk"
		}
		return m, m.waitForChange()
	case watchClosedMsg:
		m.events = nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.session.Screen() {
	case app.Browsing:
		return m.handleBrowseKey(msg)
	case app.Editing:
		return m.handleEditKey(msg)
	case app.ConfirmDiscard:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.session.Persist(m.ctx); err != nil {
			m.lastErr = err
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevDay):
		m.session.PrevDay()
	case key.Matches(msg, m.keys.NextDay):
		m.session.NextDay()
	case key.Matches(msg, m.keys.PrevWeek):
		m.session.PrevWeek()
	case key.Matches(msg, m.keys.NextWeek):
		m.session.NextWeek()
	case key.Matches(msg, m.keys.Today):
		m.session.Today()
	case key.Matches(msg, m.keys.ZoomIn):
		m.session.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.session.ZoomOut()
	case key.Matches(msg, m.keys.Edit):
		m.session.BeginEdit()
		m.status = "editing " + m.session.Date().String()
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.Cancel()
		return m, nil
	case "enter":
		if err := m.session.Commit(m.ctx); err != nil {
			m.lastErr = err
		} else {
			m.status = "saved"
			m.lastErr = nil
		}
		return m, nil
	case "tab":
		m.session.NextField()
		return m, nil
	case "left":
		m.session.MoveCursorBackward()
		return m, nil
	case "right":
		m.session.MoveCursorForward()
		return m, nil
	case "backspace":
		m.session.DeleteBefore()
		return m, nil
	}

	if text := msg.Key().Text; text != "" {
		for _, r := range text {
			m.session.InsertRune(r)
		}
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.session.Discard()
		m.status = "changes discarded"
	case "n", "esc":
		m.session.Resume()
	}
	return m, nil
}

// Run launches the UI and blocks until it exits.
func Run(session *app.Session, p store.Persistence, autosave time.Duration) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var events <-chan store.Event
	if p != nil {
		ch, err := p.Watch(ctx)
		if err != nil {
			return err
		}
		events = ch
	}

	program := tea.NewProgram(New(session, events, autosave), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
