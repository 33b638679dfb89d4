package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Jabawaka/diary/pkg/dates"
)

const layoutSlash = "02/01/2006"

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-02-28" or --on="28/02/2020".`)
}

// GetOn resolves the flag to a date, defaulting to today.
func (o *OnOptions) GetOn() (dates.Date, error) {
	if o.OnString == "" {
		return dates.FromTime(time.Now()), nil
	}
	d, err := dates.Parse(o.OnString)
	if err == nil {
		return d, nil
	}
	t, err := time.Parse(layoutSlash, o.OnString)
	if err != nil {
		return dates.Date{}, err
	}
	return dates.FromTime(t), nil
}
