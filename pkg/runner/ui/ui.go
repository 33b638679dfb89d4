package ui

import (
	"context"
	"errors"
	"time"

	"github.com/Jabawaka/diary/pkg/app"
	"github.com/Jabawaka/diary/pkg/store"
	"github.com/Jabawaka/diary/pkg/tui"
)

type UI struct {
	Persistence store.Persistence
	Autosave    time.Duration
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open the ui, no persistence")
	}

	s, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	session := app.NewSession(s, n.Persistence, app.SystemClock{})
	return tui.Run(session, n.Persistence, n.Autosave)
}
