package graph

import (
	"testing"
	"time"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/entry"
	"github.com/Jabawaka/diary/pkg/store"
)

func weighted(d dates.Date, kg float64) *entry.Entry {
	e := entry.New(d, "")
	e.WeightKg = entry.Float(kg)
	return e
}

func TestZoomTransitionsSaturate(t *testing.T) {
	if Day.In() != Day {
		t.Error("day is the finest zoom")
	}
	if Day.Out() != Week || Week.Out() != Month {
		t.Error("out should coarsen day->week->month")
	}
	if Month.Out() != Month {
		t.Error("month has no further zoom out")
	}
	if Month.In() != Week || Week.In() != Day {
		t.Error("in should refine month->week->day")
	}
}

func TestDaySeriesSingleSampleOnLastDay(t *testing.T) {
	ref := dates.New(2025, time.June, 18)
	s := store.New(weighted(ref, 80.0))

	pts := Series(s, ref, Day, Weight)
	if len(pts) != DayPoints {
		t.Fatalf("expected %d points, got %d", DayPoints, len(pts))
	}
	for _, p := range pts {
		want := 0.0
		if p.X == float64(DayPoints-1) {
			want = 80.0
		}
		if p.Y != want {
			t.Errorf("x=%v: y=%v want %v", p.X, p.Y, want)
		}
	}
}

func TestDaySeriesWindowBoundaries(t *testing.T) {
	ref := dates.New(2025, time.June, 18)
	windowStart := ref.AddDays(-7)

	s := store.New(
		weighted(windowStart.Prev(), 70.0), // one day too early
		weighted(windowStart, 71.0),        // first bucket
		weighted(ref.Next(), 99.0),         // one day too late
	)

	pts := Series(s, ref, Day, Weight)
	if pts[0].Y != 71.0 {
		t.Errorf("window start sample missing: %v", pts[0].Y)
	}
	for _, p := range pts[1:] {
		if p.Y != 0.0 {
			t.Errorf("x=%v: out-of-window sample leaked in, y=%v", p.X, p.Y)
		}
	}
}

func TestWeekSeriesMeansAndEmptyBuckets(t *testing.T) {
	ref := dates.New(2025, time.June, 18)

	// Three samples inside the newest week bucket (ref-6 .. ref).
	s := store.New(
		weighted(ref, 90.0),
		weighted(ref.AddDays(-1), 80.0),
		weighted(ref.AddDays(-2), 70.0),
	)

	pts := Series(s, ref, Week, Weight)
	if len(pts) != WeekPoints {
		t.Fatalf("expected %d buckets, got %d", WeekPoints, len(pts))
	}
	last := pts[len(pts)-1]
	if last.Y != 80.0 {
		t.Errorf("newest bucket mean = %v, want 80", last.Y)
	}
	for _, p := range pts[:len(pts)-1] {
		if p.Y != 0.0 {
			t.Errorf("empty bucket x=%v has y=%v", p.X, p.Y)
		}
	}
}

func TestWeekSeriesBucketAlignment(t *testing.T) {
	ref := dates.New(2025, time.June, 18)

	// ref-7 belongs to the second-newest bucket, not the newest one.
	s := store.New(weighted(ref.AddDays(-7), 75.0))

	pts := Series(s, ref, Week, Weight)
	if got := pts[len(pts)-1].Y; got != 0.0 {
		t.Errorf("newest bucket should be empty, got %v", got)
	}
	if got := pts[len(pts)-2].Y; got != 75.0 {
		t.Errorf("second-newest bucket should hold the sample, got %v", got)
	}
}

func TestMonthSeries(t *testing.T) {
	ref := dates.New(2025, time.June, 18)

	s := store.New(
		weighted(dates.New(2025, time.June, 2), 70.0),
		weighted(dates.New(2025, time.June, 20), 90.0), // after ref but same month: still bucketed
		weighted(dates.New(2025, time.May, 10), 85.0),
		weighted(dates.New(2024, time.June, 1), 60.0), // 12 months before: out of window
	)

	pts := Series(s, ref, Month, Weight)
	if len(pts) != MonthPoints {
		t.Fatalf("expected %d buckets, got %d", MonthPoints, len(pts))
	}
	if got := pts[len(pts)-1].Y; got != 80.0 {
		t.Errorf("june mean = %v, want 80", got)
	}
	if got := pts[len(pts)-2].Y; got != 85.0 {
		t.Errorf("may mean = %v, want 85", got)
	}
	for _, p := range pts[:len(pts)-2] {
		if p.Y != 0.0 {
			t.Errorf("bucket x=%v should be empty, got %v", p.X, p.Y)
		}
	}
}

func TestFieldsAreIndependent(t *testing.T) {
	ref := dates.New(2025, time.June, 18)
	e := entry.New(ref, "")
	e.WeightKg = entry.Float(80)
	s := store.New(e)

	weight := Series(s, ref, Day, Weight)
	waist := Series(s, ref, Day, Waist)
	if weight[DayPoints-1].Y != 80 {
		t.Error("weight sample missing")
	}
	for _, p := range waist {
		if p.Y != 0.0 {
			t.Errorf("waist series should be empty, x=%v y=%v", p.X, p.Y)
		}
	}
}

func TestSeriesOnEmptyStore(t *testing.T) {
	ref := dates.New(2025, time.June, 18)
	s := store.New()
	for _, z := range []Zoom{Day, Week, Month} {
		pts := Series(s, ref, z, Waist)
		if len(pts) == 0 {
			t.Errorf("%s: expected full window of sentinel points", z)
		}
		for _, p := range pts {
			if p.Y != 0.0 {
				t.Errorf("%s: empty store produced y=%v", z, p.Y)
			}
		}
	}
}

func TestParseZoom(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Zoom
		ok   bool
	}{
		{"day", Day, true},
		{"week", Week, true},
		{"month", Month, true},
		{"year", Day, false},
	} {
		got, ok := ParseZoom(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseZoom(%q) = %v,%v", tc.in, got, ok)
		}
	}
}
