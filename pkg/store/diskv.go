package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/entry"
)

// NewDiskvPersistence stores one JSON record per entry under basePath,
// keyed by the entry's ISO date. Keys sort lexically in date order, so
// directory listings read chronologically.
func NewDiskvPersistence(basePath string) Persistence {
	return &diskvPersistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

type diskvPersistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads every record into a store. Records that fail to parse are
// skipped with a diagnostic rather than poisoning the whole journal.
func (p *diskvPersistence) Load(ctx context.Context) (*EntryStore, error) {
	s := New()
	for key := range p.d.Keys(ctx.Done()) {
		val, err := p.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("store: read %s: %w", key, err)
		}
		e := &entry.Entry{}
		if err := json.Unmarshal(val, e); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		if e.Date.IsZero() {
			// Key is the authority when the record body predates the
			// date field.
			d, err := dates.Parse(key)
			if err != nil {
				fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
				continue
			}
			e.Date = d
		}
		s.Upsert(e)
	}
	return s, nil
}

// Save writes every entry to its date key and erases records for dates
// no longer in the store.
func (p *diskvPersistence) Save(ctx context.Context, s *EntryStore) error {
	keep := make(map[string]bool, s.Len())
	for _, e := range s.All() {
		key := e.Date.String()
		keep[key] = true
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("store: encode %s: %w", key, err)
		}
		if err := p.d.Write(key, data); err != nil {
			return fmt.Errorf("store: write %s: %w", key, err)
		}
	}
	for key := range p.d.Keys(ctx.Done()) {
		if keep[key] {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	return nil
}

// Watch streams change events for entry records under the base path.
func (p *diskvPersistence) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure %s: %w", p.basePath, err)
	}
	return watchDir(ctx, p.basePath, func(changed string) bool {
		return !strings.HasSuffix(changed, ".tmp")
	})
}
