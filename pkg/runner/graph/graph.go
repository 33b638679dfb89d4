package graph

import (
	"context"
	"errors"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/graph"
	"github.com/Jabawaka/diary/pkg/printers"
	"github.com/Jabawaka/diary/pkg/store"
)

type Graph struct {
	Persistence store.Persistence
	On          dates.Date
	Field       graph.Field
	Zoom        graph.Zoom
}

func (n *Graph) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not graph, no persistence")
	}

	s, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	pts := graph.Series(s, n.On, n.Zoom, n.Field)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Series(n.Field, n.Zoom, pts)
	return nil
}
