package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/Jabawaka/diary/pkg/dates"
	"github.com/Jabawaka/diary/pkg/printers"
	"github.com/Jabawaka/diary/pkg/store"
)

type Get struct {
	Persistence store.Persistence
	On          dates.Date
	JSON        bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	s, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	e, ok := s.Get(n.On)
	if !ok {
		return fmt.Errorf("no entry on %s", n.On)
	}

	if n.JSON {
		b, err := json.MarshalIndent(e, "", "    ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Entry(e)
	return nil
}
