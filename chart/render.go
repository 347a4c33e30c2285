package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ============================================================================
// PNG RENDERER
// ============================================================================

// Canvas size for all charts.
const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// Render draws a chart config to a PNG file at path, replacing any
// existing file.
func Render(cfg *Config, path string) error {
	if cfg == nil || len(cfg.Points) == 0 {
		return fmt.Errorf("nothing to render for %s", path)
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel

	// Angle the X labels so long genre names stay readable.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	labels := make([]string, len(cfg.Points))
	values := make(plotter.Values, len(cfg.Points))
	for i, pt := range cfg.Points {
		labels[i] = pt.Label
		values[i] = pt.Value
	}

	switch cfg.Type {
	case TypeLine:
		xys := make(plotter.XYs, len(values))
		for i, v := range values {
			xys[i].X = float64(i)
			xys[i].Y = v
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("failed to build line chart: %w", err)
		}
		line.Color = palette[1]
		points.Color = palette[1]
		p.Add(line, points)
	case TypeBar:
		bars, err := plotter.NewBarChart(values, vg.Points(24))
		if err != nil {
			return fmt.Errorf("failed to build bar chart: %w", err)
		}
		bars.LineStyle.Width = 0
		bars.Color = palette[0]
		p.Add(bars)
	default:
		return fmt.Errorf("unknown chart type %q", cfg.Type)
	}

	p.NominalX(labels...)

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}
