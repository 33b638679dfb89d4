package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jabawaka/diary/pkg/commands/options"
	gr "github.com/Jabawaka/diary/pkg/runner/graph"
	"github.com/Jabawaka/diary/pkg/store"
)

func addGraph(topLevel *cobra.Command) {
	gro := &options.GraphOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "plot a measurement series",
		Example: `
diary graph
diary graph --field waist --zoom week
diary graph --zoom month --on="2025-06-18"
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
			field, err := gro.GetField()
			if err != nil {
				return err
			}
			zoom, err := gro.GetZoom()
			if err != nil {
				return err
			}

			s := gr.Graph{
				Persistence: p,
				On:          on,
				Field:       field,
				Zoom:        zoom,
			}
			return s.Do(context.Background())
		},
	}

	options.AddGraphArgs(cmd, gro)
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
