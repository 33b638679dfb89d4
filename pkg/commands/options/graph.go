package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jabawaka/diary/pkg/graph"
)

// GraphOptions
type GraphOptions struct {
	FieldString string
	ZoomString  string
}

func AddGraphArgs(cmd *cobra.Command, o *GraphOptions) {
	cmd.Flags().StringVarP(&o.FieldString, "field", "f", "weight",
		"Measurement to plot. One of 'weight' or 'waist'.")
	cmd.Flags().StringVarP(&o.ZoomString, "zoom", "z", "day",
		"Bucket granularity. One of 'day', 'week' or 'month'.")
}

func (o *GraphOptions) GetField() (graph.Field, error) {
	f, ok := graph.ParseField(o.FieldString)
	if !ok {
		return f, fmt.Errorf("unknown field %q", o.FieldString)
	}
	return f, nil
}

func (o *GraphOptions) GetZoom() (graph.Zoom, error) {
	z, ok := graph.ParseZoom(o.ZoomString)
	if !ok {
		return z, fmt.Errorf("unknown zoom %q", o.ZoomString)
	}
	return z, nil
}
