// Package chart renders an aggregated measurement series as a column
// chart made of terminal cells.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Jabawaka/diary/pkg/graph"
)

// Options controls chart styling and size.
type Options struct {
	TitleStyle lipgloss.Style
	BarStyle   lipgloss.Style
	EmptyStyle lipgloss.Style
	LabelStyle lipgloss.Style

	// Height is the number of rows used for the columns.
	Height int
}

const defaultHeight = 8

// Render draws the series as one column per bucket, scaled between the
// smallest and largest non-sentinel values. Buckets without data show
// as a faint dot on the baseline.
func Render(title string, pts []graph.Point, opts Options) string {
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}

	min, max, any := bounds(pts)

	var lines []string
	lines = append(lines, opts.TitleStyle.Render(title))

	if !any {
		for row := 0; row < height-1; row++ {
			lines = append(lines, "")
		}
		lines = append(lines, opts.EmptyStyle.Render(strings.Repeat(" · ", len(pts))))
		lines = append(lines, opts.LabelStyle.Render("no data"))
		return strings.Join(lines, "\n")
	}

	levels := columnLevels(pts, min, max, height)

	for row := height; row >= 1; row-- {
		var b strings.Builder
		for i, level := range levels {
			if i > 0 {
				b.WriteString(" ")
			}
			switch {
			case pts[i].Y == 0.0 && row == 1:
				b.WriteString(opts.EmptyStyle.Render("··"))
			case level >= row:
				b.WriteString(opts.BarStyle.Render("██"))
			default:
				b.WriteString("  ")
			}
		}
		lines = append(lines, b.String())
	}

	lines = append(lines, opts.LabelStyle.Render(fmt.Sprintf("%.1f .. %.1f", min, max)))
	return strings.Join(lines, "\n")
}

// bounds finds the value range over the non-sentinel points.
func bounds(pts []graph.Point) (min, max float64, any bool) {
	for _, p := range pts {
		if p.Y == 0.0 {
			continue
		}
		if !any || p.Y < min {
			min = p.Y
		}
		if !any || p.Y > max {
			max = p.Y
		}
		any = true
	}
	return min, max, any
}

// columnLevels maps each point to a column height in [1, height].
// Sentinel points map to zero.
func columnLevels(pts []graph.Point, min, max float64, height int) []int {
	levels := make([]int, len(pts))
	span := max - min
	for i, p := range pts {
		if p.Y == 0.0 {
			continue
		}
		if span == 0 {
			levels[i] = height
			continue
		}
		level := 1 + int((p.Y-min)/span*float64(height-1)+0.5)
		if level > height {
			level = height
		}
		levels[i] = level
	}
	return levels
}
