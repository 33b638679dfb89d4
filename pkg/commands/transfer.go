package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Jabawaka/diary/pkg/runner/transfer"
	"github.com/Jabawaka/diary/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "write the journal to a JSON document",
		Example: `
diary export backup.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected one file argument")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := transfer.Export{
				Persistence: p,
				Path:        args[0],
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	merge := false

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "load the journal from a JSON document",
		Example: `
diary import backup.json
diary import --merge other.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected one file argument")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := transfer.Import{
				Persistence: p,
				Path:        args[0],
				Merge:       merge,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false,
		"Fold the document into the existing journal instead of replacing it.")

	topLevel.AddCommand(cmd)
}
