// Package graph buckets raw per-day measurements into plot-ready
// point series at day, week, or month granularity.
package graph

import (
	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/entry"
	"github.com/Jabawaka/diary/pkg/store"
)

// Field selects which measurement a series is built from.
type Field int

const (
	Weight Field = iota
	Waist
)

func (f Field) String() string {
	switch f {
	case Weight:
		return "weight"
	case Waist:
		return "waist"
	}
	return "unknown"
}

// Unit returns the display unit for the field.
func (f Field) Unit() string {
	switch f {
	case Weight:
		return "kg"
	case Waist:
		return "cm"
	}
	return ""
}

// ParseField maps a measurement name to its field.
func ParseField(s string) (Field, bool) {
	switch s {
	case "weight":
		return Weight, true
	case "waist":
		return Waist, true
	}
	return Weight, false
}

// Zoom is the bucketing granularity. Day < Week < Month; In moves
// toward Day, Out toward Month, both saturating.
type Zoom int

const (
	Day Zoom = iota
	Week
	Month
)

func (z Zoom) String() string {
	switch z {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	}
	return "unknown"
}

// In returns the next finer zoom level.
func (z Zoom) In() Zoom {
	if z > Day {
		return z - 1
	}
	return z
}

// Out returns the next coarser zoom level.
func (z Zoom) Out() Zoom {
	if z < Month {
		return z + 1
	}
	return z
}

// ParseZoom maps a zoom name to its level.
func ParseZoom(s string) (Zoom, bool) {
	switch s {
	case "day":
		return Day, true
	case "week":
		return Week, true
	case "month":
		return Month, true
	}
	return Day, false
}

// Buckets per zoom level. Day covers the calendar week ending on the
// reference date, end inclusive, so it spans eight days.
const (
	DayPoints   = 8
	WeekPoints  = 8
	MonthPoints = 12
)

// Point is one plottable sample. X is the zero-based offset of the
// bucket within the window, oldest first. Y is the aggregated value;
// 0.0 means "no sample in this bucket" (measurements are never a
// realistic 0.0, so the sentinel is unambiguous for callers).
type Point struct {
	X float64
	Y float64
}

// Series aggregates the field's samples from the store into one point
// per bucket of the window ending on ref.
//
//   - Day: one point per day for the week ending on ref (8 points).
//   - Week: 8 trailing calendar weeks, arithmetic mean per week.
//   - Month: 12 trailing calendar months, arithmetic mean per month.
func Series(s *store.EntryStore, ref dates.Date, zoom Zoom, field Field) []Point {
	switch zoom {
	case Day:
		return daySeries(s, ref, field)
	case Week:
		return weekSeries(s, ref, field)
	case Month:
		return monthSeries(s, ref, field)
	}
	return nil
}

func daySeries(s *store.EntryStore, ref dates.Date, field Field) []Point {
	points := make([]Point, 0, DayPoints)
	day := ref.PrevOccurrence(ref.Weekday())
	for x := 0; x < DayPoints; x++ {
		y := 0.0
		if v := sampleAt(s, day, field); v != nil {
			y = *v
		}
		points = append(points, Point{X: float64(x), Y: y})
		day = day.Next()
	}
	return points
}

func weekSeries(s *store.EntryStore, ref dates.Date, field Field) []Point {
	points := make([]Point, 0, WeekPoints)
	for week := WeekPoints; week > 0; week-- {
		// The bucket is the 7 days ending on the (week-1)th previous
		// occurrence of the reference weekday; the newest bucket ends
		// on the reference date itself.
		last := ref.NthPrevOccurrence(ref.Weekday(), week-1)
		first := last.AddDays(-6)
		points = append(points, Point{
			X: float64(WeekPoints - week),
			Y: meanOver(s, first, last, field),
		})
	}
	return points
}

func monthSeries(s *store.EntryStore, ref dates.Date, field Field) []Point {
	points := make([]Point, 0, MonthPoints)
	for x := 0; x < MonthPoints; x++ {
		first := ref.MonthStart().AddMonths(x - MonthPoints + 1)
		last := first.AddMonths(1).Prev()
		points = append(points, Point{
			X: float64(x),
			Y: meanOver(s, first, last, field),
		})
	}
	return points
}

// meanOver averages the present samples in [first, last], or 0.0 when
// the range holds none.
func meanOver(s *store.EntryStore, first, last dates.Date, field Field) float64 {
	sum := 0.0
	n := 0
	for d := first; !d.After(last); d = d.Next() {
		if v := sampleAt(s, d, field); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

func sampleAt(s *store.EntryStore, d dates.Date, field Field) *float64 {
	e, ok := s.Get(d)
	if !ok {
		return nil
	}
	return sample(e, field)
}

func sample(e *entry.Entry, field Field) *float64 {
	switch field {
	case Weight:
		return e.WeightKg
	case Waist:
		return e.WaistCm
	}
	return nil
}
