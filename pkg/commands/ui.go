package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jabawaka/diary/pkg/runner/ui"
	"github.com/Jabawaka/diary/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
diary ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			i := ui.UI{Persistence: p, Autosave: cfg.Autosave}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
