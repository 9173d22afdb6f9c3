package gonumplot

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseboard/internal/dataset"
	"caseboard/internal/render"
	"caseboard/internal/selection"
)

var records = []dataset.Record{
	{Region: "Pune", Active: 120, Deceased: 4, Recovered: 300},
	{Region: "Nagpur", Active: 40, Deceased: 2, Recovered: 95},
}

func TestNew(t *testing.T) {
	_, err := New(render.FormatBase64, 0, 0)
	assert.Error(t, err)

	r, err := New(render.FormatPNG, 0, 0)
	require.NoError(t, err)
	assert.Greater(t, float64(r.width), 0.0)
}

func TestRender(t *testing.T) {
	png, err := New(render.FormatPNG, 400, 200)
	require.NoError(t, err)
	svg, err := New(render.FormatSVG, 0, 0)
	require.NoError(t, err)
	ctx := context.Background()

	got, err := png.Render(ctx, selection.BuildStacked(records, selection.ScopeSelected))
	require.NoError(t, err)
	assert.Equal(t, "image/png", got.ContentType)
	assert.True(t, bytes.HasPrefix(got.Body, []byte("\x89PNG")))

	got, err = png.Render(ctx, selection.BuildProportion(records[1]))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got.Body, []byte("\x89PNG")))

	got, err = svg.Render(ctx, selection.BuildStacked(records, selection.ScopeAll))
	require.NoError(t, err)
	assert.Contains(t, string(got.Body), "<svg")
}

func TestRenderNothingToDraw(t *testing.T) {
	r, err := New(render.FormatPNG, 0, 0)
	require.NoError(t, err)

	_, err = r.Render(context.Background(), selection.BuildStacked([]dataset.Record{{Region: "Zero"}}, selection.ScopeAll))
	assert.ErrorIs(t, err, render.ErrNothingToDraw)
}

func TestPlotTitle(t *testing.T) {
	r, err := New(render.FormatPNG, 0, 0)
	require.NoError(t, err)

	p, err := r.plot(selection.BuildStacked(records, selection.ScopeAll))
	require.NoError(t, err)
	assert.Equal(t, "COVID-19 Cases by District (All Districts)", p.Title.Text)

	p, err = r.plot(selection.BuildProportion(records[0]))
	require.NoError(t, err)
	assert.Equal(t, "COVID-19 Cases", p.Title.Text)
	assert.Equal(t, 100.0, p.Y.Max)
}
