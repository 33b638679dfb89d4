package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jabawaka/diary/pkg/commands/options"
	"github.com/Jabawaka/diary/pkg/runner/log"
	"github.com/Jabawaka/diary/pkg/store"
)

func addLog(topLevel *cobra.Command) {
	lo := &options.LogOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "list journal entries",
		Example: `
diary log
diary log --all
diary log --month --on="2025-06-01"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := log.Log{
				Persistence: p,
				On:          on,
				Month:       lo.Month,
				All:         lo.All,
			}
			return s.Do(context.Background())
		},
	}

	options.AddLogArgs(cmd, lo)
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
