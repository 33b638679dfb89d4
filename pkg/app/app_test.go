package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/entry"
	"github.com/Jabawaka/diary/pkg/graph"
	"github.com/Jabawaka/diary/pkg/store"
)

type fixedClock struct{ d dates.Date }

func (c fixedClock) Today() dates.Date { return c.d }

type memoryPersistence struct {
	mu    sync.Mutex
	saved *store.EntryStore
	saves int
	fail  error
}

func (m *memoryPersistence) Load(_ context.Context) (*store.EntryStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return store.New(), nil
	}
	return store.New(m.saved.All()...), nil
}

func (m *memoryPersistence) Save(_ context.Context, s *store.EntryStore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.saved = store.New(s.All()...)
	m.saves++
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

var testDay = dates.New(2025, time.June, 18)

func newTestSession(entries ...*entry.Entry) (*Session, *memoryPersistence) {
	p := &memoryPersistence{}
	s := NewSession(store.New(entries...), p, fixedClock{testDay})
	return s, p
}

func typeString(s *Session, text string) {
	for _, r := range text {
		s.InsertRune(r)
	}
}

func TestNewSessionStartsBrowsingToday(t *testing.T) {
	s, _ := newTestSession()
	if s.Screen() != Browsing {
		t.Error("session should start browsing")
	}
	if !s.Date().Equal(testDay) {
		t.Errorf("date = %s, want clock's today", s.Date())
	}
	if s.Zoom() != graph.Day {
		t.Errorf("zoom = %s, want day", s.Zoom())
	}
}

func TestDateNavigation(t *testing.T) {
	s, _ := newTestSession()
	s.NextDay()
	s.NextWeek()
	if want := testDay.AddDays(8); !s.Date().Equal(want) {
		t.Errorf("date = %s, want %s", s.Date(), want)
	}
	s.PrevDay()
	s.PrevWeek()
	s.PrevDay()
	if want := testDay.Prev(); !s.Date().Equal(want) {
		t.Errorf("date = %s, want %s", s.Date(), want)
	}
	s.Today()
	if !s.Date().Equal(testDay) {
		t.Errorf("today jump failed: %s", s.Date())
	}
}

func TestNavigationLockedWhileEditing(t *testing.T) {
	s, _ := newTestSession()
	s.BeginEdit()
	s.NextDay()
	if !s.Date().Equal(testDay) {
		t.Error("date moved while editing")
	}
}

func TestBeginEditOnEmptyDateYieldsEmptyBuffers(t *testing.T) {
	s, _ := newTestSession()
	s.BeginEdit()
	if s.Screen() != Editing {
		t.Fatal("expected editing screen")
	}
	for _, f := range []Field{FieldContent, FieldWeight, FieldWaist} {
		if got := s.Buffer(f).Text(); got != "" {
			t.Errorf("%s buffer = %q, want empty", f, got)
		}
	}
	if s.ActiveField() != FieldContent {
		t.Errorf("active field = %s, want content", s.ActiveField())
	}
}

func TestBeginEditHydratesFromExistingEntry(t *testing.T) {
	e := entry.New(testDay, "lifted weights")
	e.WeightKg = entry.Float(80.5)
	s, _ := newTestSession(e)

	s.BeginEdit()
	if got := s.Buffer(FieldContent).Text(); got != "lifted weights" {
		t.Errorf("content = %q", got)
	}
	if got := s.Buffer(FieldWeight).Text(); got != "80.5" {
		t.Errorf("weight text = %q", got)
	}
	if got := s.Buffer(FieldWaist).Text(); got != "" {
		t.Errorf("waist text = %q, want empty", got)
	}
	// Cursor resumes at the end of the hydrated text.
	if c := s.Buffer(FieldContent).Cursor(); c != len("lifted weights") {
		t.Errorf("cursor = %d", c)
	}
}

func TestFieldCyclingAndRouting(t *testing.T) {
	s, _ := newTestSession()
	s.BeginEdit()

	typeString(s, "note")
	s.NextField()
	if s.ActiveField() != FieldWeight {
		t.Fatalf("active = %s", s.ActiveField())
	}
	typeString(s, "80")
	s.NextField()
	typeString(s, "85")
	s.NextField()
	if s.ActiveField() != FieldContent {
		t.Errorf("cycle should wrap to content, got %s", s.ActiveField())
	}
	if s.Buffer(FieldContent).Text() != "note" ||
		s.Buffer(FieldWeight).Text() != "80" ||
		s.Buffer(FieldWaist).Text() != "85" {
		t.Error("input routed to wrong buffers")
	}
}

func TestNumericFieldsFilterInput(t *testing.T) {
	s, _ := newTestSession()
	s.BeginEdit()
	s.NextField() // weight

	typeString(s, "8a0.b5.")
	if got := s.Buffer(FieldWeight).Text(); got != "80.5" {
		t.Errorf("numeric filter produced %q, want 80.5", got)
	}

	// Content accepts anything.
	s.NextField()
	s.NextField()
	typeString(s, "a1.2.3!")
	if got := s.Buffer(FieldContent).Text(); got != "a1.2.3!" {
		t.Errorf("content filtered input: %q", got)
	}
}

func TestCommitStoresAndPersists(t *testing.T) {
	s, p := newTestSession()
	s.BeginEdit()
	typeString(s, "good day")
	s.NextField()
	typeString(s, "79.5")

	if err := s.Commit(context.Background()); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if s.Screen() != Browsing {
		t.Error("commit should return to browsing")
	}
	e, ok := s.Store().Get(testDay)
	if !ok {
		t.Fatal("entry not stored")
	}
	if e.Content != "good day" || e.WeightKg == nil || *e.WeightKg != 79.5 || e.WaistCm != nil {
		t.Errorf("stored entry = %+v", e)
	}
	if p.saves != 1 {
		t.Errorf("expected one checkpoint, got %d", p.saves)
	}
}

func TestCommitAllEmptyStoresNothing(t *testing.T) {
	s, p := newTestSession()
	s.BeginEdit()
	if err := s.Commit(context.Background()); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if s.Store().Len() != 0 {
		t.Error("empty commit created an entry")
	}
	if p.saves != 0 {
		t.Error("empty commit should not checkpoint")
	}
}

func TestCommitMalformedNumberIsAbsence(t *testing.T) {
	s, _ := newTestSession()
	s.BeginEdit()
	typeString(s, "note")
	s.NextField()
	typeString(s, ".") // filter allows it, parser rejects it
	if err := s.Commit(context.Background()); err != nil {
		t.Fatalf("commit: %v", err)
	}
	e, ok := s.Store().Get(testDay)
	if !ok {
		t.Fatal("entry not stored")
	}
	if e.WeightKg != nil {
		t.Errorf("malformed weight should be absent, got %v", *e.WeightKg)
	}
}

func TestCommitOutsideEditModeIsError(t *testing.T) {
	s, _ := newTestSession()
	if err := s.Commit(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestCancelConfirmFlow(t *testing.T) {
	s, _ := newTestSession()
	s.BeginEdit()
	typeString(s, "draft")

	s.Cancel()
	if s.Screen() != ConfirmDiscard {
		t.Fatalf("screen = %v, want confirm", s.Screen())
	}

	// Decline: buffers survive.
	s.Resume()
	if s.Screen() != Editing {
		t.Fatal("resume should return to editing")
	}
	if got := s.Buffer(FieldContent).Text(); got != "draft" {
		t.Errorf("buffer lost on resume: %q", got)
	}

	// Confirm: nothing is stored.
	s.Cancel()
	s.Discard()
	if s.Screen() != Browsing {
		t.Error("discard should return to browsing")
	}
	if s.Store().Len() != 0 {
		t.Error("discarded edit reached the store")
	}
}

func TestCommitPersistFailureSurfaces(t *testing.T) {
	s, p := newTestSession()
	p.fail = errors.New("disk full")
	s.BeginEdit()
	typeString(s, "x")
	if err := s.Commit(context.Background()); err == nil {
		t.Error("expected persist error to surface")
	}
	// The in-memory store still holds the entry; data is not lost.
	if s.Store().Len() != 1 {
		t.Error("entry should remain in memory after failed persist")
	}
}

func TestReloadSkippedWhileEditing(t *testing.T) {
	s, p := newTestSession()
	p.saved = store.New(entry.New(testDay, "external"))

	s.BeginEdit()
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if s.Store().Len() != 0 {
		t.Error("reload should be a no-op while editing")
	}

	s.Cancel()
	s.Discard()
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if s.Store().Len() != 1 {
		t.Error("reload while browsing should replace the store")
	}
}

func TestZoomRequests(t *testing.T) {
	s, _ := newTestSession()
	s.ZoomOut()
	s.ZoomOut()
	s.ZoomOut() // saturates at month
	if s.Zoom() != graph.Month {
		t.Errorf("zoom = %s", s.Zoom())
	}
	s.ZoomIn()
	if s.Zoom() != graph.Week {
		t.Errorf("zoom = %s", s.Zoom())
	}
}

func TestSeriesUsesSessionState(t *testing.T) {
	e := entry.New(testDay, "")
	e.WeightKg = entry.Float(80)
	s, _ := newTestSession(e)

	pts := s.Series(graph.Weight)
	if len(pts) != graph.DayPoints {
		t.Fatalf("expected day series, got %d points", len(pts))
	}
	if pts[len(pts)-1].Y != 80 {
		t.Errorf("expected today's sample at the last offset, got %v", pts[len(pts)-1].Y)
	}
}
