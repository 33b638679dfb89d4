// Package transfer moves a journal between the configured backend and
// a plain JSON document, for backups and backend migrations.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Jabawaka/diary/pkg/store"
)

type Export struct {
	Persistence store.Persistence
	Path        string
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	s, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	data, err := store.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.WriteFile(n.Path, data, 0644); err != nil {
		return err
	}

	fmt.Printf("exported %d entries to %s\n", s.Len(), n.Path)
	return nil
}

type Import struct {
	Persistence store.Persistence
	Path        string

	// Merge folds the document into the existing journal instead of
	// replacing it. Imported dates win on conflict.
	Merge bool
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return err
	}

	in, err := store.Unmarshal(data)
	if err != nil {
		return err
	}

	out := in
	if n.Merge {
		out, err = n.Persistence.Load(ctx)
		if err != nil {
			return err
		}
		for _, e := range in.All() {
			out.Upsert(e)
		}
	}

	if err := n.Persistence.Save(ctx, out); err != nil {
		return err
	}

	fmt.Printf("imported %d entries from %s\n", in.Len(), n.Path)
	return nil
}
