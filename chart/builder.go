package chart

import (
	"image/color"

	"github.com/cinelens-org/cinelens/stats"
)

// ============================================================================
// CHART BUILDER — aggregate groups → render-ready chart config
// ============================================================================
// Building and rendering are separate steps: the builder fixes what the
// chart says, the renderer only decides how it looks on disk.
// ============================================================================

// Chart types understood by Render.
const (
	TypeBar  = "bar"
	TypeLine = "line"
)

// Config describes one chart.
type Config struct {
	Type   string
	Title  string
	XLabel string
	YLabel string
	Points []Point
}

// Point is a single labeled value along the X axis.
type Point struct {
	Label string
	Value float64
}

// Series color palette, first entry for bars, second for lines.
var palette = []color.RGBA{
	{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF},
	{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
}

// FromGroups builds a chart config from aggregate groups, keeping their
// order. Returns nil when there is nothing to plot.
func FromGroups(chartType, title, xLabel, yLabel string, groups []stats.Group) *Config {
	if len(groups) == 0 {
		return nil
	}

	points := make([]Point, 0, len(groups))
	for _, g := range groups {
		points = append(points, Point{
			Label: g.Label,
			Value: stats.RoundTo2(g.Value),
		})
	}

	return &Config{
		Type:   chartType,
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Points: points,
	}
}
