package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the selection module.
type Metrics struct {
	// Resolved selections by operation and shape (all, single, multi)
	Resolutions *prometheus.CounterVec

	// Rejected selections by operation and error code
	Rejections *prometheus.CounterVec

	RenderLatency *prometheus.HistogramVec

	DatasetRecords prometheus.Gauge
}

// New creates the selection metrics on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "caseboard_selection_resolutions_total",
			Help: "Total resolved district selections by operation and shape",
		}, []string{"operation", "shape"}),

		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "caseboard_selection_rejections_total",
			Help: "Total rejected district selections by operation and error code",
		}, []string{"operation", "code"}),

		RenderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "caseboard_render_duration_seconds",
			Help:    "Duration of chart rendering by output format",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"format"}),

		DatasetRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "caseboard_dataset_records",
			Help: "Number of records in the loaded dataset",
		}),
	}
}

// IncrementResolution records a successful resolution.
func (m *Metrics) IncrementResolution(operation, shape string) {
	if m != nil {
		m.Resolutions.WithLabelValues(operation, shape).Inc()
	}
}

// IncrementRejection records a selection that resolved to an error.
func (m *Metrics) IncrementRejection(operation, code string) {
	if m != nil {
		m.Rejections.WithLabelValues(operation, code).Inc()
	}
}

// ObserveRenderLatency records how long a chart took to render.
func (m *Metrics) ObserveRenderLatency(format string, d time.Duration) {
	if m != nil {
		m.RenderLatency.WithLabelValues(format).Observe(d.Seconds())
	}
}

// SetDatasetRecords publishes the dataset size.
func (m *Metrics) SetDatasetRecords(n int) {
	if m != nil {
		m.DatasetRecords.Set(float64(n))
	}
}
