// Package gonumplot renders charts with gonum/plot.
//
// Stacked series become bar layers joined with StackOn. A proportion is drawn
// as a single bar split into percentage layers, since gonum/plot has no pie.
package gonumplot

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"caseboard/internal/render"
	"caseboard/internal/selection"
	dErrors "caseboard/pkg/domain-errors"
)

// Renderer draws charts as png or svg.
type Renderer struct {
	format render.Format
	width  vg.Length
	height vg.Length
}

// New returns a renderer for png or svg output. Sizes are in points; zero keeps the default.
func New(format render.Format, width, height int) (*Renderer, error) {
	if format != render.FormatPNG && format != render.FormatSVG {
		return nil, fmt.Errorf("gonumplot: unsupported format %q", format)
	}
	r := &Renderer{format: format, width: 8 * vg.Inch, height: 4 * vg.Inch}
	if width > 0 {
		r.width = vg.Points(float64(width))
	}
	if height > 0 {
		r.height = vg.Points(float64(height))
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

	p, err := r.plot(c)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build plot")
	}

	wt, err := p.WriterTo(r.width, r.height, string(r.format))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "render plot")
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode plot")
	}
	return &render.Payload{ContentType: r.format.ContentType(), Body: buf.Bytes()}, nil
}

func (r *Renderer) plot(c *selection.Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = render.Title(c)
	p.Legend.Top = true

	var layers []layer
	switch c.Kind {
	case selection.ChartStacked:
		p.Y.Label.Text = "Cases"
		p.NominalX(c.Stacked.Regions...)
		for _, series := range c.Stacked.Series {
			values := make(plotter.Values, len(series.Points))
			for i, pt := range series.Points {
				values[i] = float64(pt.Value)
			}
			layers = append(layers, layer{label: series.Status.Label(), color: render.StatusColor(series.Status), values: values})
		}
	case selection.ChartProportion:
		p.Y.Label.Text = "Percent"
		p.Y.Max = 100
		p.NominalX(c.Proportion.Region)
		pct := c.Proportion.Percentages()
		for i, part := range c.Proportion.Parts {
			layers = append(layers, layer{
				label:  fmt.Sprintf("%s %.1f%%", part.Status.Label(), pct[i]),
				color:  render.StatusColor(part.Status),
				values: plotter.Values{pct[i]},
			})
		}
	}

	var below *plotter.BarChart
	for _, l := range layers {
		bars, err := plotter.NewBarChart(l.values, vg.Points(20))
		if err != nil {
			return nil, err
		}
		bars.Color = l.color
		bars.LineStyle.Width = vg.Length(0)
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(l.label, bars)
		below = bars
	}
	return p, nil
}

type layer struct {
	label  string
	color  color.Color
	values plotter.Values
}
