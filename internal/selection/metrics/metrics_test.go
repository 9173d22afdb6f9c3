package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementResolution("records", "single")
	m.IncrementResolution("records", "single")
	m.IncrementResolution("chart", "all")
	m.IncrementRejection("chart", "invalid_selection")
	m.ObserveRenderLatency("png", 20*time.Millisecond)
	m.SetDatasetRecords(36)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("records", "single")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("chart", "all")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("chart", "invalid_selection")))
	assert.Equal(t, 36.0, testutil.ToFloat64(m.DatasetRecords))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "caseboard_render_duration_seconds")
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementResolution("records", "all")
		m.IncrementRejection("records", "not_found")
		m.ObserveRenderLatency("svg", time.Second)
		m.SetDatasetRecords(1)
	})
}
