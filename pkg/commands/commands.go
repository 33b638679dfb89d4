package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "diary",
		Short: base.Wrap80("A daily log of notes and body measurements on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addLog(topLevel)
	addGraph(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addVersion(topLevel)
}
