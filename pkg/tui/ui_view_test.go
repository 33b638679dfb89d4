package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"github.com/Jabawaka/diary/pkg/app"
	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/entry"
	"github.com/Jabawaka/diary/pkg/store"
)

type fixedClock struct{ d dates.Date }

func (c fixedClock) Today() dates.Date { return c.d }

var testDay = dates.New(2025, time.June, 18)

func newTestModel(entries ...*entry.Entry) Model {
	session := app.NewSession(store.New(entries...), nil, fixedClock{testDay})
	m := New(session, nil, 0)
	m.termWidth = 96
	m.termHeight = 32
	return m
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewBrowsingWithoutEntryShowsHint(t *testing.T) {
	m := newTestModel()
	view := stripANSI(m.View())
	if !strings.Contains(view, "-- Diary 18/06/2025 --") {
		t.Errorf("missing date header; view=%q", view)
	}
	if !strings.Contains(view, "Press 'e' to enter this day's entry") {
		t.Errorf("missing empty-day hint; view=%q", view)
	}
}

func TestViewBrowsingRendersEntry(t *testing.T) {
	e := entry.New(testDay, "long walk in the rain")
	e.WeightKg = entry.Float(79.5)
	m := newTestModel(e)

	view := stripANSI(m.View())
	if !strings.Contains(view, "79.5 kg, -- cm") {
		t.Errorf("missing measurement line; view=%q", view)
	}
	if !strings.Contains(view, "long walk in the rain") {
		t.Errorf("missing content; view=%q", view)
	}
}

func TestViewEditModeShowsFieldsAndCursor(t *testing.T) {
	m := newTestModel()
	m.session.BeginEdit()

	view := stripANSI(m.View())
	for _, label := range []string{"Content:", "Weight [kg]:", "Waist [cm]:"} {
		if !strings.Contains(view, label) {
			t.Errorf("missing field label %q; view=%q", label, view)
		}
	}
	if !strings.ContainsRune(view, cursorMarker) {
		t.Error("active field should show the cursor marker")
	}
}

func TestViewConfirmOverlay(t *testing.T) {
	m := newTestModel()
	m.session.BeginEdit()
	m.session.Cancel()

	view := stripANSI(m.View())
	if !strings.Contains(view, "Discard changes?") {
		t.Errorf("missing confirm overlay; view=%q", view)
	}
}

func TestViewShowsZoomLevel(t *testing.T) {
	m := newTestModel()
	m.session.ZoomOut()
	view := stripANSI(m.View())
	if !strings.Contains(view, "week zoom") {
		t.Errorf("missing zoom label; view=%q", view)
	}
}

func TestViewCalendarShowsMonth(t *testing.T) {
	m := newTestModel()
	view := stripANSI(m.View())
	if !strings.Contains(view, "June 2025") {
		t.Errorf("missing calendar header; view=%q", view)
	}
	if !strings.Contains(view, "Su Mo Tu We Th Fr Sa") {
		t.Errorf("missing weekday header; view=%q", view)
	}
}
