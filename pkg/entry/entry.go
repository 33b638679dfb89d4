package entry

import (
	"fmt"
	"strconv"

	"github.com/Jabawaka/diary/pkg/dates"
)

// New creates an entry for the given day.
func New(date dates.Date, content string) *Entry {
	return &Entry{
		Date:    date,
		Content: content,
	}
}

// Entry is one day's record: free text plus optional body measurements.
// A nil measurement means "not recorded", which marshals as an explicit
// null so absence survives the wire.
type Entry struct {
	Date     dates.Date `json:"date"`
	Content  string     `json:"content"`
	WeightKg *float64   `json:"weight_kg"`
	WaistCm  *float64   `json:"waist_cm"`
}

// Empty reports whether the entry carries no data at all. Empty entries
// are never persisted.
func (e *Entry) Empty() bool {
	return e.Content == "" && e.WeightKg == nil && e.WaistCm == nil
}

// Clone returns a copy sharing nothing with the receiver.
func (e *Entry) Clone() *Entry {
	cp := *e
	if e.WeightKg != nil {
		w := *e.WeightKg
		cp.WeightKg = &w
	}
	if e.WaistCm != nil {
		w := *e.WaistCm
		cp.WaistCm = &w
	}
	return &cp
}

// Equal compares all fields, treating measurements by value.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Date.Equal(other.Date) &&
		e.Content == other.Content &&
		floatEqual(e.WeightKg, other.WeightKg) &&
		floatEqual(e.WaistCm, other.WaistCm)
}

func floatEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// WeightString renders the weight for display, "--" when absent.
func (e *Entry) WeightString() string {
	return measurement(e.WeightKg)
}

// WaistString renders the waist for display, "--" when absent.
func (e *Entry) WaistString() string {
	return measurement(e.WaistCm)
}

func measurement(v *float64) string {
	if v == nil {
		return "--"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s  %s kg, %s cm  %s", e.Date, e.WeightString(), e.WaistString(), e.Content)
}

// Float is a convenience for building optional measurements in place.
func Float(v float64) *float64 {
	return &v
}
