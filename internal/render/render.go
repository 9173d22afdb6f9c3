// Package render turns selection charts into payloads a client can display.
//
// A Renderer is a swappable capability: the selection engine produces a
// render-agnostic Chart and a Renderer converts it into an image or a chart
// description document. Registry dispatches on the requested Format.
package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"caseboard/internal/dataset"
	"caseboard/internal/selection"
	dErrors "caseboard/pkg/domain-errors"
)

// Format is a chart output format.
type Format string

const (
	FormatJSON   Format = "json"
	FormatPNG    Format = "png"
	FormatSVG    Format = "svg"
	FormatBase64 Format = "base64"
)

// ContentType returns the MIME type of the format's payload.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "application/json"
	}
}

// ParseFormat validates a format name; empty selects def.
func ParseFormat(s string, def Format) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	f := Format(s)
	switch f {
	case FormatJSON, FormatPNG, FormatSVG, FormatBase64:
		return f, nil
	default:
		return "", dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unsupported chart format %q", s))
	}
}

// Payload is a rendered chart.
type Payload struct {
	ContentType string
	Body        []byte
}

// Renderer renders a chart into a payload.
type Renderer interface {
	Render(ctx context.Context, chart *selection.Chart) (*Payload, error)
}

// ErrNothingToDraw is returned by image renderers for charts without visible data.
var ErrNothingToDraw = dErrors.New(dErrors.CodeUnprocessable, "selection has no case counts to draw")

// Drawable reports ErrNothingToDraw when an image of chart would be blank.
func Drawable(chart *selection.Chart) error {
	switch chart.Kind {
	case selection.ChartStacked:
		if chart.Stacked == nil || chart.Stacked.Empty() {
			return ErrNothingToDraw
		}
		for _, series := range chart.Stacked.Series {
			for _, p := range series.Points {
				if p.Value > 0 {
					return nil
				}
			}
		}
		return ErrNothingToDraw
	case selection.ChartProportion:
		if chart.Proportion == nil || chart.Proportion.Total() == 0 {
			return ErrNothingToDraw
		}
		return nil
	default:
		return dErrors.New(dErrors.CodeInternal, fmt.Sprintf("unknown chart kind %q", chart.Kind))
	}
}

// Title is the heading shown on every rendering of chart.
func Title(chart *selection.Chart) string {
	switch chart.Scope {
	case selection.ScopeAll:
		return "COVID-19 Cases by District (All Districts)"
	case selection.ScopeSelected:
		return "COVID-19 Cases by District (Selected Districts)"
	default:
		return "COVID-19 Cases"
	}
}

// StatusColor is the fill used for a status in every renderer.
func StatusColor(s dataset.Status) color.RGBA {
	switch s {
	case dataset.StatusActive:
		return color.RGBA{R: 255, A: 255}
	case dataset.StatusDeceased:
		return color.RGBA{B: 255, A: 255}
	case dataset.StatusRecovered:
		return color.RGBA{G: 128, A: 255}
	default:
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
}

// StatusColorName is the CSS colour name matching StatusColor.
func StatusColorName(s dataset.Status) string {
	switch s {
	case dataset.StatusActive:
		return "red"
	case dataset.StatusDeceased:
		return "blue"
	case dataset.StatusRecovered:
		return "green"
	default:
		return "gray"
	}
}

// Registry maps formats to renderers. Base64 is derived from the PNG renderer.
type Registry struct {
	renderers map[Format]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[Format]Renderer)}
}

// Register binds r to f, replacing any previous binding.
func (reg *Registry) Register(f Format, r Renderer) *Registry {
	reg.renderers[f] = r
	return reg
}

// Formats lists the formats the registry can serve.
func (reg *Registry) Formats() []Format {
	out := make([]Format, 0, len(reg.renderers)+1)
	for f := range reg.renderers {
		out = append(out, f)
	}
	if _, ok := reg.renderers[FormatPNG]; ok {
		out = append(out, FormatBase64)
	}
	slices.Sort(out)
	return out
}

// ByKind routes a chart to a renderer by chart kind.
type ByKind struct {
	Stacked    Renderer
	Proportion Renderer
}

// Render implements Renderer.
func (b ByKind) Render(ctx context.Context, chart *selection.Chart) (*Payload, error) {
	var r Renderer
	switch chart.Kind {
	case selection.ChartStacked:
		r = b.Stacked
	case selection.ChartProportion:
		r = b.Proportion
	}
	if r == nil {
		return nil, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("no renderer for %s charts", chart.Kind))
	}
	return r.Render(ctx, chart)
}

// Base64Image is the JSON envelope of a base64 encoded PNG.
type Base64Image struct {
	ContentType string `json:"content_type"`
	Encoding    string `json:"encoding"`
	Data        string `json:"data"`
}

// Render renders chart in format f.
func (reg *Registry) Render(ctx context.Context, f Format, chart *selection.Chart) (*Payload, error) {
	if chart == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "chart is required")
	}

	target := f
	if f == FormatBase64 {
		target = FormatPNG
	}
	r, ok := reg.renderers[target]
	if !ok {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("chart format %q is not available", f))
	}

	payload, err := r.Render(ctx, chart)
	if err != nil || f != FormatBase64 {
		return payload, err
	}

	body, err := json.Marshal(Base64Image{
		ContentType: payload.ContentType,
		Encoding:    "base64",
		Data:        base64.StdEncoding.EncodeToString(payload.Body),
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode image")
	}
	return &Payload{ContentType: FormatBase64.ContentType(), Body: body}, nil
}
