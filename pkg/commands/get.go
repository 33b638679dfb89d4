package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jabawaka/diary/pkg/commands/options"
	"github.com/Jabawaka/diary/pkg/runner/get"
	"github.com/Jabawaka/diary/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "show one day's entry",
		Example: `
diary get
diary get --on="2025-06-18"
diary get --on="18/06/2025" --json
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

			s := get.Get{
				Persistence: p,
				On:          on,
				JSON:        po.JSON,
			}
			err = s.Do(context.Background())
			return po.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
