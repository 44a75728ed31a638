package handler

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"runway-engine/internal/compare"
	"runway-engine/internal/engine"
	"runway-engine/internal/export"
	"runway-engine/internal/logging"
	"runway-engine/internal/model"
)

// CompareResponse is the body of a successful /compare call.
type CompareResponse struct {
	Ops []compare.Op `json:"ops"`
}

type Handler struct {
	compute     engine.ComputeFunc
	maxParallel int
	baseCtx     context.Context
	log         *slog.Logger
}

// New returns a handler computing through compute (engine.Compute when nil),
// running at most maxParallel batch scenarios at once.
func New(compute engine.ComputeFunc, maxParallel int) *Handler {
	if compute == nil {
		compute = engine.Compute
	}
	return &Handler{
		compute:     compute,
		maxParallel: maxParallel,
		baseCtx:     context.Background(),
		log:         logging.New("handler"),
	}
}

// WithBaseContext makes in-flight batches stop when ctx is cancelled, e.g. on shutdown.
func (h *Handler) WithBaseContext(ctx context.Context) *Handler {
	h.baseCtx = ctx
	return h
}

// Serve routes a request. It has the fasthttp.RequestHandler signature.
func (h *Handler) Serve(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch path {
	case "/calculate":
		h.requireMethod(ctx, fasthttp.MethodPost, h.handleCalculate)
	case "/batch":
		h.requireMethod(ctx, fasthttp.MethodPost, h.handleBatch)
	case "/compare":
		h.requireMethod(ctx, fasthttp.MethodPost, h.handleCompare)
	case "/defaults":
		h.requireMethod(ctx, fasthttp.MethodGet, h.handleDefaults)
	case "/healthz":
		h.requireMethod(ctx, fasthttp.MethodGet, func(ctx *fasthttp.RequestCtx) {
			ctx.SetContentType("text/plain; charset=utf-8")
			ctx.SetBodyString("ok")
		})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
	}

	h.log.Info("request",
		"method", string(ctx.Method()),
		"path", path,
		"status", ctx.Response.StatusCode(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (h *Handler) requireMethod(ctx *fasthttp.RequestCtx, method string, next fasthttp.RequestHandler) {
	if !bytes.Equal(ctx.Method(), []byte(method)) {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := engine.ProcessWith(&req, h.compute)
	p := resp.CalculationResult.Projection
	if p == nil {
		h.log.Warn("calculation failed", "tenant_id", req.TenantID, "messages", len(resp.CalculationResult.Messages))
	}

	switch format := string(ctx.QueryArgs().Peek("format")); format {
	case "", "json":
		writeJSON(ctx, fasthttp.StatusOK, resp)
	case "csv":
		if p == nil {
			writeJSON(ctx, fasthttp.StatusOK, resp)
			return
		}
		ctx.SetContentType("text/csv; charset=utf-8")
		if err := export.WriteCSV(ctx, p.Rows); err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		}
	case "text", "markdown":
		if p == nil {
			writeJSON(ctx, fasthttp.StatusOK, resp)
			return
		}
		mode := export.ASCII
		if format == "markdown" {
			mode = export.Markdown
		}
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString(export.Report(p, mode))
	default:
		writeError(ctx, fasthttp.StatusBadRequest, "Unknown format: "+format)
	}
}

func (h *Handler) handleBatch(ctx *fasthttp.RequestCtx) {
	var req model.BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Scenarios) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one scenario is required")
		return
	}

	resp, err := engine.ProcessBatch(h.baseCtx, &req, h.maxParallel, h.compute)
	if err != nil {
		writeError(ctx, fasthttp.StatusServiceUnavailable, "Batch interrupted: "+err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	var req model.CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	base, msgs, err := h.compute(req.Base)
	if err != nil {
		writeJSON(ctx, fasthttp.StatusOK, engine.Envelope(req.TenantID, start, nil, msgs, err))
		return
	}
	start = time.Now()
	alt, msgs, err := h.compute(req.Alt)
	if err != nil {
		writeJSON(ctx, fasthttp.StatusOK, engine.Envelope(req.TenantID, start, nil, msgs, err))
		return
	}

	ops, err := compare.Projections(base, alt)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, CompareResponse{Ops: ops})
}

func (h *Handler) handleDefaults(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, model.DefaultInputs())
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
