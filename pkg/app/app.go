// Package app orchestrates the journal session: the current date and
// zoom, the browse/edit/confirm state machine, and the edit buffers
// for the entry being composed.
package app

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/editbuf"
	"github.com/Jabawaka/diary/pkg/entry"
	"github.com/Jabawaka/diary/pkg/graph"
	"github.com/Jabawaka/diary/pkg/store"
)

// Screen is the session's top-level state.
type Screen int

const (
	Browsing Screen = iota
	Editing
	ConfirmDiscard
)

// Field identifies which edit buffer receives input while editing.
type Field int

const (
	FieldContent Field = iota
	FieldWeight
	FieldWaist
)

func (f Field) String() string {
	switch f {
	case FieldContent:
		return "content"
	case FieldWeight:
		return "weight"
	case FieldWaist:
		return "waist"
	}
	return "unknown"
}

// Clock supplies "today" so tests can pin the session to a fixed date.
type Clock interface {
	Today() dates.Date
}

// SystemClock reads the local calendar.
type SystemClock struct{}

func (SystemClock) Today() dates.Date { return dates.FromTime(time.Now()) }

// Session owns the entry store and mediates every mutation of it. It
// is single-threaded by construction: callers drive it from one
// goroutine in response to discrete requests.
type Session struct {
	store       *store.EntryStore
	persistence store.Persistence
	clock       Clock

	date   dates.Date
	zoom   graph.Zoom
	screen Screen

	field   Field
	content *editbuf.Buffer
	weight  *editbuf.Buffer
	waist   *editbuf.Buffer
}

// NewSession starts a browsing session on today's date at day zoom.
// persistence may be nil for an in-memory session.
func NewSession(s *store.EntryStore, p store.Persistence, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	if s == nil {
		s = store.New()
	}
	return &Session{
		store:       s,
		persistence: p,
		clock:       clock,
		date:        clock.Today(),
		zoom:        graph.Day,
		screen:      Browsing,
	}
}

func (s *Session) Screen() Screen           { return s.screen }
func (s *Session) Date() dates.Date         { return s.date }
func (s *Session) Zoom() graph.Zoom         { return s.zoom }
func (s *Session) Store() *store.EntryStore { return s.store }
func (s *Session) ActiveField() Field       { return s.field }

// Entry returns the stored entry for the current date, if any.
func (s *Session) Entry() (*entry.Entry, bool) {
	return s.store.Get(s.date)
}

// Buffer exposes the edit buffer for a field; nil outside edit mode.
func (s *Session) Buffer(f Field) *editbuf.Buffer {
	switch f {
	case FieldContent:
		return s.content
	case FieldWeight:
		return s.weight
	case FieldWaist:
		return s.waist
	}
	return nil
}

// ActiveBuffer returns the buffer input currently routes to.
func (s *Session) ActiveBuffer() *editbuf.Buffer {
	return s.Buffer(s.field)
}

// GoTo moves browsing to the given date. Ignored while editing.
func (s *Session) GoTo(d dates.Date) {
	if s.screen == Browsing {
		s.date = d
	}
}

func (s *Session) NextDay()  { s.GoTo(s.date.Next()) }
func (s *Session) PrevDay()  { s.GoTo(s.date.Prev()) }
func (s *Session) NextWeek() { s.GoTo(s.date.AddDays(7)) }
func (s *Session) PrevWeek() { s.GoTo(s.date.AddDays(-7)) }

// Today jumps back to the clock's current date.
func (s *Session) Today() { s.GoTo(s.clock.Today()) }

// ZoomIn moves toward day granularity, ZoomOut toward month.
func (s *Session) ZoomIn()  { s.zoom = s.zoom.In() }
func (s *Session) ZoomOut() { s.zoom = s.zoom.Out() }

// Series aggregates the field over the current date and zoom.
func (s *Session) Series(f graph.Field) []graph.Point {
	return graph.Series(s.store, s.date, s.zoom, f)
}

// BeginEdit enters edit mode on the current date, hydrating the three
// buffers from the stored entry if one exists. Content is the active
// field and every buffer resumes with its cursor at the end.
func (s *Session) BeginEdit() {
	if s.screen != Browsing {
		return
	}
	content, weight, waist := "", "", ""
	if e, ok := s.store.Get(s.date); ok {
		content = e.Content
		weight = optText(e.WeightKg)
		waist = optText(e.WaistCm)
	}
	s.content = editbuf.NewFrom(content, 0)
	s.weight = editbuf.NewFrom(weight, 0)
	s.waist = editbuf.NewFrom(waist, 0)
	s.field = FieldContent
	s.screen = Editing
}

// NextField cycles content -> weight -> waist -> content.
func (s *Session) NextField() {
	if s.screen != Editing {
		return
	}
	s.field = (s.field + 1) % 3
}

// InsertRune routes a typed character to the active buffer. The
// numeric fields silently drop anything but digits and a single
// decimal separator.
func (s *Session) InsertRune(r rune) {
	if s.screen != Editing {
		return
	}
	b := s.ActiveBuffer()
	if s.field != FieldContent && !numericRune(b, r) {
		return
	}
	b.InsertRune(r)
}

func numericRune(b *editbuf.Buffer, r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	return r == '.' && !strings.ContainsRune(b.Text(), '.')
}

// DeleteBefore removes the character before the cursor in the active
// buffer.
func (s *Session) DeleteBefore() {
	if s.screen == Editing {
		s.ActiveBuffer().DeleteBefore()
	}
}

// MoveCursorForward and MoveCursorBackward move within the active
// buffer.
func (s *Session) MoveCursorForward() {
	if s.screen == Editing {
		s.ActiveBuffer().MoveForward()
	}
}

func (s *Session) MoveCursorBackward() {
	if s.screen == Editing {
		s.ActiveBuffer().MoveBackward()
	}
}

// Commit converts the buffers to an entry and upserts it, then returns
// to browsing. An entry with no content and no parseable measurement
// is not stored. Malformed numeric text counts as absence, never as an
// error. The store is checkpointed when persistence is configured.
func (s *Session) Commit(ctx context.Context) error {
	if s.screen != Editing {
		return errors.New("app: commit outside edit mode")
	}
	e := entry.New(s.date, s.content.Text())
	e.WeightKg = parseMeasurement(s.weight.Text())
	e.WaistCm = parseMeasurement(s.waist.Text())

	s.dropBuffers()
	s.screen = Browsing

	if e.Empty() {
		return nil
	}
	s.store.Upsert(e)
	return s.Persist(ctx)
}

// Cancel asks to leave edit mode; the session waits for the caller to
// confirm or resume so typed text is never dropped silently.
func (s *Session) Cancel() {
	if s.screen == Editing {
		s.screen = ConfirmDiscard
	}
}

// Discard confirms the cancel: buffers are dropped uncommitted.
func (s *Session) Discard() {
	if s.screen == ConfirmDiscard {
		s.dropBuffers()
		s.screen = Browsing
	}
}

// Resume declines the cancel and returns to editing with the buffers
// intact.
func (s *Session) Resume() {
	if s.screen == ConfirmDiscard {
		s.screen = Editing
	}
}

// Persist checkpoints the store to the configured backend.
func (s *Session) Persist(ctx context.Context) error {
	if s.persistence == nil {
		return nil
	}
	return s.persistence.Save(ctx, s.store)
}

// Reload replaces the store from the backend, e.g. after a watch
// event. Ignored while an edit is in progress so typed text survives.
func (s *Session) Reload(ctx context.Context) error {
	if s.persistence == nil || s.screen != Browsing {
		return nil
	}
	loaded, err := s.persistence.Load(ctx)
	if err != nil {
		return err
	}
	s.store = loaded
	return nil
}

func (s *Session) dropBuffers() {
	s.content, s.weight, s.waist = nil, nil, nil
	s.field = FieldContent
}

func optText(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// parseMeasurement turns edited text into an optional value. Anything
// that does not parse as a decimal number is absence.
func parseMeasurement(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &v
}
