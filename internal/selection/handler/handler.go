package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caseboard/internal/dataset"
	"caseboard/internal/render"
	"caseboard/internal/selection"
	"caseboard/internal/selection/metrics"
	dErrors "caseboard/pkg/domain-errors"
	"caseboard/pkg/platform/httputil"
	"caseboard/pkg/requestcontext"
)

const (
	opRecords = "records"
	opChart   = "chart"
	opExport  = "export"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Service defines the selection operations the handler exposes.
type Service interface {
	ListRegions() []string
	ResolveRecords(names []string) (*selection.RecordSet, error)
	ResolveChart(names []string) (*selection.Chart, error)
	DatasetSize() int
}

// ChartRenderer renders a resolved chart in the requested format.
type ChartRenderer interface {
	Render(ctx context.Context, format render.Format, chart *selection.Chart) (*render.Payload, error)
}

// Options tunes request handling.
type Options struct {
	// DefaultFormat applies when a chart request has no format query parameter.
	DefaultFormat render.Format
	// ExportColumns names the header cells of exported workbooks.
	ExportColumns dataset.Columns
	Limits        Limits
	MaxBodyBytes  int64
}

// Handler wires the district endpoints to the selection engine.
type Handler struct {
	service  Service
	renderer ChartRenderer
	logger   *slog.Logger
	metrics  *metrics.Metrics
	opts     Options
}

// New constructs a selection handler with its dependencies.
func New(service Service, renderer ChartRenderer, logger *slog.Logger, metrics *metrics.Metrics, opts Options) *Handler {
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = render.FormatJSON
	}
	if opts.ExportColumns == (dataset.Columns{}) {
		opts.ExportColumns = dataset.DefaultColumns()
	}
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
		metrics:  metrics,
		opts:     opts,
	}
}

// Register mounts the district endpoints on the router. Every route also
// answers with a trailing slash.
func (h *Handler) Register(r chi.Router) {
	routes := []struct {
		method  string
		path    string
		handler http.HandlerFunc
	}{
		{http.MethodGet, "/districts", h.HandleListRegions},
		{http.MethodPost, "/district", h.HandleResolveRecords},
		{http.MethodPost, "/district/chart", h.HandleResolveChart},
		{http.MethodPost, "/district/export", h.HandleExport},
		{http.MethodGet, "/healthz", h.HandleHealth},
	}
	for _, rt := range routes {
		r.Method(rt.method, rt.path, rt.handler)
		r.Method(rt.method, rt.path+"/", rt.handler)
	}
}

// HandleListRegions handles GET /districts requests.
func (h *Handler) HandleListRegions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.ListRegions())
}

// HandleResolveRecords handles POST /district requests. A single named
// district is returned as an object, every other selection as an array.
func (h *Handler) HandleResolveRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := h.decodeSelection(w, r)
	if !ok {
		return
	}

	set, err := h.service.ResolveRecords(req.Districts)
	if err != nil {
		h.reject(ctx, w, opRecords, err)
		return
	}
	h.metrics.IncrementResolution(opRecords, string(set.Shape))

	h.logger.InfoContext(ctx, "districts resolved",
		"request_id", requestID,
		"shape", set.Shape,
		"records", len(set.Records),
	)

	if rec, ok := set.Single(); ok {
		httputil.WriteJSON(w, http.StatusOK, FromRecord(rec))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRecords(set.Records))
}

// HandleResolveChart handles POST /district/chart requests.
func (h *Handler) HandleResolveChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	format, err := render.ParseFormat(r.URL.Query().Get("format"), h.opts.DefaultFormat)
	if err != nil {
		h.reject(ctx, w, opChart, err)
		return
	}

	req, ok := h.decodeSelection(w, r)
	if !ok {
		return
	}

	chart, err := h.service.ResolveChart(req.Districts)
	if err != nil {
		h.reject(ctx, w, opChart, err)
		return
	}

	start := time.Now()
	payload, err := h.renderer.Render(ctx, format, chart)
	h.metrics.ObserveRenderLatency(string(format), time.Since(start))
	if err != nil {
		h.reject(ctx, w, opChart, err)
		return
	}
	h.metrics.IncrementResolution(opChart, string(chartShape(chart)))

	h.logger.InfoContext(ctx, "chart rendered",
		"request_id", requestID,
		"kind", chart.Kind,
		"format", format,
		"bytes", len(payload.Body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteBytes(w, http.StatusOK, payload.ContentType, payload.Body)
}

// HandleExport handles POST /district/export requests with an XLSX workbook
// of the selected records.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := h.decodeSelection(w, r)
	if !ok {
		return
	}

	set, err := h.service.ResolveRecords(req.Districts)
	if err != nil {
		h.reject(ctx, w, opExport, err)
		return
	}

	var buf bytes.Buffer
	if err := dataset.WriteXLSX(&buf, set.Records, h.opts.ExportColumns); err != nil {
		h.reject(ctx, w, opExport, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build workbook"))
		return
	}
	h.metrics.IncrementResolution(opExport, string(set.Shape))

	h.logger.InfoContext(ctx, "districts exported",
		"request_id", requestID,
		"shape", set.Shape,
		"records", len(set.Records),
	)

	filename := "districts-" + requestcontext.Now(ctx).UTC().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	httputil.WriteBytes(w, http.StatusOK, xlsxContentType, buf.Bytes())
}

// HandleHealth handles GET /healthz requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Records: h.service.DatasetSize()})
}

func (h *Handler) decodeSelection(w http.ResponseWriter, r *http.Request) (*SelectionRequest, bool) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if h.opts.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	}
	req, ok := httputil.DecodeAndPrepare[SelectionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return nil, false
	}
	if err := req.CheckLimits(h.opts.Limits); err != nil {
		h.logger.WarnContext(ctx, "selection exceeds limits",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return nil, false
	}
	return req, true
}

// reject logs and writes err. Client errors are logged at warn level.
func (h *Handler) reject(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	code := dErrors.CodeOf(err)
	h.metrics.IncrementRejection(operation, string(code))

	if code == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "selection failed",
			"request_id", requestcontext.RequestID(ctx),
			"operation", operation,
			"error", err,
		)
	} else {
		h.logger.WarnContext(ctx, "selection rejected",
			"request_id", requestcontext.RequestID(ctx),
			"operation", operation,
			"code", code,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

func chartShape(c *selection.Chart) selection.Shape {
	switch c.Scope {
	case selection.ScopeAll:
		return selection.ShapeAll
	case selection.ScopeSingle:
		return selection.ShapeSingle
	default:
		return selection.ShapeMulti
	}
}
