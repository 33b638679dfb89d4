package log

import (
	"context"
	"errors"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/entry"
	"github.com/Jabawaka/diary/pkg/printers"
	"github.com/Jabawaka/diary/pkg/store"
)

type Log struct {
	Persistence store.Persistence
	On          dates.Date
	Month       bool
	All         bool
}

func (n *Log) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not log, no persistence")
	}

	s, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()

	if n.Month {
		pp.Month(n.On, s.All()...)
		return nil
	}

	entries := s.All()
	title := "journal"
	if !n.All {
		entries = monthOf(entries, n.On)
		title = n.On.Format("January, 2006")
	}

	pp.Title(title)
	pp.Journal(entries...)
	return nil
}

func monthOf(entries []*entry.Entry, on dates.Date) []*entry.Entry {
	c := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date.SameMonth(on) {
			c = append(c, e)
		}
	}
	return c
}
