package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jabawaka/diary/pkg/commands/options"
	"github.com/Jabawaka/diary/pkg/entry"
	"github.com/Jabawaka/diary/pkg/runner/add"
	"github.com/Jabawaka/diary/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	weight := 0.0
	waist := 0.0

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "record a day's entry without the ui",
		Example: `
diary add "ran 5k, legs sore"
diary add --weight 79.5 --waist 92
diary add "rest day" --on="2025-06-18" --weight 80.1
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

			s := add.Add{
				Persistence: p,
				On:          on,
				Content:     strings.Join(args, " "),
			}
			if cmd.Flags().Changed("weight") {
				s.WeightKg = entry.Float(weight)
			}
			if cmd.Flags().Changed("waist") {
				s.WaistCm = entry.Float(waist)
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kilograms.")
	cmd.Flags().Float64Var(&waist, "waist", 0, "Waist in centimeters.")
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
