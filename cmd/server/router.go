package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"caseboard/internal/platform/config"
	"caseboard/internal/platform/metrics"
	"caseboard/internal/platform/middleware"
	"caseboard/internal/render"
	"caseboard/internal/render/figure"
	"caseboard/internal/render/gochart"
	"caseboard/internal/render/gonumplot"
	"caseboard/internal/selection/handler"
	selectionMetrics "caseboard/internal/selection/metrics"
	"caseboard/pkg/platform/middleware/metadata"
	"caseboard/pkg/platform/middleware/requesttime"
)

func newRouter(cfg *config.Config, log *slog.Logger, svc handler.Service, reg *prometheus.Registry) (http.Handler, error) {
	renderers, err := newRenderers(cfg.Render)
	if err != nil {
		return nil, err
	}

	httpMetrics := metrics.New(reg)
	selMetrics := selectionMetrics.New(reg)
	selMetrics.SetDatasetRecords(svc.DatasetSize())

	h := handler.New(svc, renderers, log, selMetrics, handler.Options{
		DefaultFormat: render.Format(cfg.Render.DefaultFormat),
		ExportColumns: columns(cfg.Dataset),
		Limits: handler.Limits{
			MaxSelection:  cfg.Limits.MaxSelection,
			MaxNameLength: cfg.Limits.MaxNameLength,
		},
		MaxBodyBytes: cfg.Limits.MaxBodyBytes,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(log))
	r.Use(httpMetrics.Middleware)
	r.Use(middleware.CORS(cfg.Security.CORSOrigins))
	r.Use(middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled))

	h.Register(r)
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, metrics.Handler(reg))
	}
	return r, nil
}

// newRenderers registers the chart document renderer and the image renderers
// of the configured engine.
func newRenderers(cfg config.Render) (*render.Registry, error) {
	reg := render.NewRegistry().Register(render.FormatJSON, figure.New())
	for _, format := range []render.Format{render.FormatPNG, render.FormatSVG} {
		r, err := imageRenderer(cfg, format)
		if err != nil {
			return nil, err
		}
		reg.Register(format, r)
	}
	return reg, nil
}

func imageRenderer(cfg config.Render, format render.Format) (render.Renderer, error) {
	goChart, err := gochart.New(format, gochart.WithSize(cfg.Width, cfg.Height))
	if err != nil {
		return nil, err
	}
	gonum, err := gonumplot.New(format, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	switch cfg.ImageEngine {
	case "gochart":
		return goChart, nil
	case "gonum":
		return gonum, nil
	case "mixed", "":
		// go-chart has the pie; gonum keeps absolute bar heights
		return render.ByKind{Stacked: gonum, Proportion: goChart}, nil
	default:
		return nil, fmt.Errorf("unknown image engine %q", cfg.ImageEngine)
	}
}
