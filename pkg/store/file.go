package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Persistence is the durable-storage contract: whole-store load and
// replace, plus change notification for externally modified storage.
// Implementations never terminate the process; every failure is
// surfaced as an error the caller decides about.
type Persistence interface {
	Load(ctx context.Context) (*EntryStore, error)
	Save(ctx context.Context, s *EntryStore) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// NewFilePersistence stores the whole journal as one pretty-printed
// JSON document at path.
func NewFilePersistence(path string) Persistence {
	return &filePersistence{path: path}
}

type filePersistence struct {
	path string
}

// Load reads the journal document. A missing file is an empty store; a
// present but unreadable or malformed file is an error.
func (p *filePersistence) Load(_ context.Context) (*EntryStore, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("store: read %s: %w", p.path, err)
	}
	s, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", p.path, err)
	}
	return s, nil
}

// Save replaces the journal document atomically (write to a sibling
// temp file, then rename).
func (p *filePersistence) Save(_ context.Context, s *EntryStore) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: ensure %s: %w", dir, err)
		}
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("store: replace %s: %w", p.path, err)
	}
	return nil
}

// Watch streams change events for the journal document.
func (p *filePersistence) Watch(ctx context.Context) (<-chan Event, error) {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure %s: %w", dir, err)
	}
	name := filepath.Base(p.path)
	return watchDir(ctx, dir, func(changed string) bool {
		return filepath.Base(changed) == name
	})
}
