// Package figure renders charts as JSON chart-description documents.
//
// The document follows the Plotly figure layout (data traces plus a layout
// block) so browser clients can hand it straight to a charting library.
package figure

import (
	"context"

	"github.com/goccy/go-json"

	"caseboard/internal/render"
	"caseboard/internal/selection"
	dErrors "caseboard/pkg/domain-errors"
)

// Document is a chart description.
type Document struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one bar series or one pie.
type Trace struct {
	Type   string   `json:"type"`
	Name   string   `json:"name,omitempty"`
	X      []string `json:"x,omitempty"`
	Y      []int64  `json:"y,omitempty"`
	Labels []string `json:"labels,omitempty"`
	Values []int64  `json:"values,omitempty"`
	Marker Marker   `json:"marker"`
}

// Marker carries trace colours: Color for bars, Colors for pie slices.
type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

// Layout is the figure-level configuration.
type Layout struct {
	Title   Title  `json:"title"`
	BarMode string `json:"barmode,omitempty"`
}

// Title is the figure heading.
type Title struct {
	Text string `json:"text"`
}

// Renderer produces Documents. Unlike image renderers it accepts empty charts.
type Renderer struct{}

// New returns a figure renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, c *selection.Chart) (*render.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := Build(c)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode figure")
	}
	return &render.Payload{ContentType: render.FormatJSON.ContentType(), Body: body}, nil
}

// Build converts a chart into a Document.
func Build(c *selection.Chart) (*Document, error) {
	doc := &Document{Layout: Layout{Title: Title{Text: render.Title(c)}}}

	switch c.Kind {
	case selection.ChartStacked:
		doc.Layout.BarMode = "stack"
		doc.Data = make([]Trace, 0, len(c.Stacked.Series))
		for _, series := range c.Stacked.Series {
			y := make([]int64, len(series.Points))
			for i, p := range series.Points {
				y[i] = p.Value
			}
			doc.Data = append(doc.Data, Trace{
				Type:   "bar",
				Name:   series.Status.Label(),
				X:      append([]string{}, c.Stacked.Regions...),
				Y:      y,
				Marker: Marker{Color: render.StatusColorName(series.Status)},
			})
		}
	case selection.ChartProportion:
		pie := Trace{Type: "pie"}
		for _, part := range c.Proportion.Parts {
			pie.Labels = append(pie.Labels, part.Status.Label())
			pie.Values = append(pie.Values, part.Value)
			pie.Marker.Colors = append(pie.Marker.Colors, render.StatusColorName(part.Status))
		}
		doc.Data = []Trace{pie}
	default:
		return nil, dErrors.New(dErrors.CodeInternal, "unknown chart kind")
	}
	return doc, nil
}
