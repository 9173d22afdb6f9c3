// Package gochart renders charts as PNG or SVG images with go-chart.
//
// go-chart scales every stacked bar to the full canvas height, so stacked
// output shows each district's composition rather than absolute counts.
package gochart

import (
	"bytes"
	"context"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"caseboard/internal/dataset"
	"caseboard/internal/render"
	"caseboard/internal/selection"
	dErrors "caseboard/pkg/domain-errors"
)

const (
	barWidth   = 40
	barSpacing = 20
	// room for the y axis and padding around the bars
	chartMargin = 160
)

// Renderer draws stacked bars and pies.
type Renderer struct {
	format render.Format
	width  int
	height int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize sets the minimum canvas size in pixels. Stacked charts widen to fit their bars.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// New returns a renderer for png or svg output.
func New(format render.Format, opts ...Option) (*Renderer, error) {
	if format != render.FormatPNG && format != render.FormatSVG {
		return nil, fmt.Errorf("gochart: unsupported format %q", format)
	}
	r := &Renderer{format: format, width: 1024, height: 512}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, c *selection.Chart) (*render.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := render.Drawable(c); err != nil {
		return nil, err
	}

	var (
		buf bytes.Buffer
		err error
	)
	switch c.Kind {
	case selection.ChartStacked:
		err = r.stacked(c).Render(r.provider(), &buf)
	case selection.ChartProportion:
		err = r.pie(c).Render(r.provider(), &buf)
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "render chart")
	}
	return &render.Payload{ContentType: r.format.ContentType(), Body: buf.Bytes()}, nil
}

func (r *Renderer) provider() chart.RendererProvider {
	if r.format == render.FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

func (r *Renderer) stacked(c *selection.Chart) chart.StackedBarChart {
	s := c.Stacked
	bars := make([]chart.StackedBar, len(s.Regions))
	for i, region := range s.Regions {
		values := make([]chart.Value, 0, len(s.Series))
		for _, series := range s.Series {
			values = append(values, chart.Value{
				Label: series.Status.Label(),
				Value: float64(series.Points[i].Value),
				Style: fill(series.Status),
			})
		}
		bars[i] = chart.StackedBar{Name: region, Width: barWidth, Values: values}
	}

	return chart.StackedBarChart{
		Title:      render.Title(c),
		Width:      max(r.width, len(bars)*(barWidth+barSpacing)+chartMargin),
		Height:     r.height,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Bars:       bars,
	}
}

func (r *Renderer) pie(c *selection.Chart) chart.PieChart {
	p := c.Proportion
	pct := p.Percentages()
	values := make([]chart.Value, len(p.Parts))
	for i, part := range p.Parts {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", part.Status.Label(), pct[i]),
			Value: float64(part.Value),
			Style: fill(part.Status),
		}
	}

	size := min(r.width, r.height)
	return chart.PieChart{
		Title:  render.Title(c),
		Width:  size,
		Height: size,
		Values: values,
	}
}

func fill(s dataset.Status) chart.Style {
	c := render.StatusColor(s)
	col := drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	return chart.Style{FillColor: col, StrokeColor: col}
}
