// Package store holds the ordered, date-keyed collection of journal
// entries and its persistence backends.
package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/entry"
)

// EntryStore is an ordered sequence of entries, strictly increasing by
// date with no duplicates. It is owned by a single caller; lookups hand
// out clones so the invariant cannot be broken from outside.
type EntryStore struct {
	entries []*entry.Entry
}

// New builds a store from the given entries. Input order is irrelevant:
// entries are sorted by date and later duplicates of a date win.
func New(entries ...*entry.Entry) *EntryStore {
	s := &EntryStore{}
	for _, e := range entries {
		if e == nil {
			continue
		}
		s.Upsert(e)
	}
	return s
}

// Len returns the number of entries.
func (s *EntryStore) Len() int { return len(s.entries) }

// Get returns a copy of the entry for the exact date, if present.
func (s *EntryStore) Get(d dates.Date) (*entry.Entry, bool) {
	i, ok := s.search(d)
	if !ok {
		return nil, false
	}
	return s.entries[i].Clone(), true
}

// Upsert inserts the entry at its sorted position, replacing any
// existing entry for the same date. Upserting the same entry twice
// leaves the store unchanged.
func (s *EntryStore) Upsert(e *entry.Entry) {
	cp := e.Clone()
	i, ok := s.search(cp.Date)
	if ok {
		s.entries[i] = cp
		return
	}
	s.entries = append(s.entries, nil)
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = cp
}

// Delete removes the entry for the date, reporting whether one existed.
func (s *EntryStore) Delete(d dates.Date) bool {
	i, ok := s.search(d)
	if !ok {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// All returns the entries in date order, cloned.
func (s *EntryStore) All() []*entry.Entry {
	out := make([]*entry.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// First returns the earliest entry, if any.
func (s *EntryStore) First() (*entry.Entry, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[0].Clone(), true
}

// Last returns the latest entry, if any.
func (s *EntryStore) Last() (*entry.Entry, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1].Clone(), true
}

// Equal compares two stores entry by entry.
func (s *EntryStore) Equal(other *EntryStore) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := range s.entries {
		if !s.entries[i].Equal(other.entries[i]) {
			return false
		}
	}
	return true
}

// search finds the index of d, or the insertion point keeping the
// entries sorted when d is absent.
func (s *EntryStore) search(d dates.Date) (int, bool) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Date.Compare(d) >= 0
	})
	if i < len(s.entries) && s.entries[i].Date.Equal(d) {
		return i, true
	}
	return i, false
}

// Marshal renders the store as a pretty-printed JSON array, one object
// per entry, in date order.
func Marshal(s *EntryStore) ([]byte, error) {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: encode: %w", err)
	}
	return data, nil
}

// Unmarshal parses a store document. Entries are re-sorted and
// duplicate dates collapsed (last one wins) so a hand-edited file
// cannot violate the store invariant.
func Unmarshal(data []byte) (*EntryStore, error) {
	if len(data) == 0 {
		return New(), nil
	}
	var list []*entry.Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("store: decode: %w", err)
	}
	return New(list...), nil
}
