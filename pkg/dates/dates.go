// Package dates provides the calendar day value type the journal is
// keyed by. A Date identifies a single local calendar day; it has no
// time-of-day or zone component.
package dates

import (
	"encoding/json"
	"fmt"
	"time"
)

// LayoutISO is the wire form of a Date.
const LayoutISO = "2006-01-02"

// Date is an immutable calendar day. The zero Date is not a valid day;
// use IsZero to detect it.
type Date struct {
	t time.Time
}

// New builds a Date from year, month and day. Out-of-range values are
// normalized the way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a point in time to the calendar day it falls on,
// in the time's own location.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Parse reads a Date from its ISO form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(LayoutISO, s)
	if err != nil {
		return Date{}, fmt.Errorf("dates: parse %q: %w", s, err)
	}
	return FromTime(t), nil
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return FromTime(d.t.AddDate(0, 0, n))
}

// Next returns the following day.
func (d Date) Next() Date { return d.AddDays(1) }

// Prev returns the preceding day.
func (d Date) Prev() Date { return d.AddDays(-1) }

// AddMonths returns the date n calendar months after d, clamped to the
// last day of the target month when d's day does not exist in it.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := d.Day()
	if max := DaysInMonth(first.Year(), first.Month()); day > max {
		day = max
	}
	return New(first.Year(), first.Month(), day)
}

// MonthStart returns the first day of d's month.
func (d Date) MonthStart() Date { return New(d.Year(), d.Month(), 1) }

// PrevOccurrence returns the most recent date strictly before d that
// falls on the given weekday. Asking for d's own weekday yields the
// same day one week earlier.
func (d Date) PrevOccurrence(w time.Weekday) Date {
	diff := int(d.Weekday()) - int(w)
	if diff <= 0 {
		diff += 7
	}
	return d.AddDays(-diff)
}

// NthPrevOccurrence returns the nth previous occurrence of the given
// weekday, so NthPrevOccurrence(w, 1) == PrevOccurrence(w).
func (d Date) NthPrevOccurrence(w time.Weekday, n int) Date {
	if n < 1 {
		return d
	}
	return d.PrevOccurrence(w).AddDays(-7 * (n - 1))
}

// Compare orders two dates: -1 if d is earlier, +1 if later, 0 if equal.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }

// SameMonth reports whether both dates fall in the same calendar month.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

// Time exposes the day as a time.Time at midnight UTC.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	return d.t.Format(LayoutISO)
}

// Format renders the date with an arbitrary time layout.
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
