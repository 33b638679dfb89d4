package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Month bool
	All   bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().BoolVarP(&o.Month, "month", "m", false,
		"Show a month calendar of logged days.")
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"Show every entry in the journal.")
}
