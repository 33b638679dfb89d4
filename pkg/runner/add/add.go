package add

import (
	"context"
	"errors"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/entry"
	"github.com/Jabawaka/diary/pkg/printers"
	"github.com/Jabawaka/diary/pkg/store"
)

type Add struct {
	Persistence store.Persistence
	On          dates.Date
	Content     string
	WeightKg    *float64
	WaistCm     *float64
}

// Do folds the given fields into the day's entry. Fields left unset
// keep whatever the entry already holds.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	s, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	e, ok := s.Get(n.On)
	if !ok {
		e = &entry.Entry{Date: n.On}
	}
	if n.Content != "" {
		e.Content = n.Content
	}
	if n.WeightKg != nil {
		e.WeightKg = n.WeightKg
	}
	if n.WaistCm != nil {
		e.WaistCm = n.WaistCm
	}

	if e.Empty() {
		return errors.New("nothing to add")
	}

	s.Upsert(e)
	if err := n.Persistence.Save(ctx, s); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Entry(e)
	return nil
}
