package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gogpu/gg"
	"github.com/google/uuid"

	"github.com/matzehuels/stackchart/pkg/buildinfo"
	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/chartio"
	"github.com/matzehuels/stackchart/pkg/core/curve"
	"github.com/matzehuels/stackchart/pkg/core/layout"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/observability"
	"github.com/matzehuels/stackchart/pkg/pipeline"
)

// LayoutRequest is the body of POST /v1/layout. Chart uses the JSON chart
// file format without data_file.
type LayoutRequest struct {
	Chart        json.RawMessage `json:"chart"`
	Width        float64         `json:"width,omitempty"`
	Height       float64         `json:"height,omitempty"`
	TickInterval float64         `json:"tick_interval,omitempty"`
}

// HitRequest is the body of POST /v1/hit.
type HitRequest struct {
	LayoutRequest
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HitResponse lists the shapes under the pointer in drawing order.
type HitResponse struct {
	ID   string `json:"id"`
	Hits []Hit  `json:"hits"`
}

// Hit is one matched shape. Index, X and Value describe the data point of
// marker and bar shapes.
type Hit struct {
	Kind   string        `json:"kind"`
	Series string        `json:"series"`
	Index  *int          `json:"index,omitempty"`
	X      *chart.XValue `json:"x,omitempty"`
	Value  *float64      `json:"value,omitempty"`
}

// Catalog is the body of GET /v1/interpolations.
type Catalog struct {
	Interpolations []string          `json:"interpolations"`
	StepTypes      []string          `json:"step_types"`
	Types          []chart.ShapeType `json:"types"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Current()})
}

func (s *Server) handleInterpolations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Catalog{
		Interpolations: curve.Names(),
		StepTypes:      chart.StepTypes(),
		Types:          chart.ShapeTypes,
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	c, err := req.chart()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), req.options(c))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set(HeaderLayoutID, res.ID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Output)
}

func (s *Server) handleHit(w http.ResponseWriter, r *http.Request) {
	var req HitRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	c, err := req.chart()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l, err := s.layout(r.Context(), c, req.options(c))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := HitResponse{ID: uuid.NewString(), Hits: []Hit{}}
	for _, sh := range l.Hits(gg.Pt(req.X, req.Y)) {
		h := Hit{Kind: sh.Kind.String(), Series: sh.ID}
		if sh.Datum.ID != "" {
			d := sh.Datum
			h.Index, h.X, h.Value = &d.Index, &d.X, &d.Value
		}
		resp.Hits = append(resp.Hits, h)
	}

	w.Header().Set(HeaderLayoutID, resp.ID)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) layout(ctx context.Context, c *chart.Chart, opts pipeline.Options) (layout.Layout, error) {
	if _, err := s.runner.Load(ctx, opts); err != nil {
		return layout.Layout{}, err
	}
	return s.runner.Layout(ctx, c, opts)
}

func (req LayoutRequest) chart() (*chart.Chart, error) {
	if len(bytes.TrimSpace(req.Chart)) == 0 || string(req.Chart) == "null" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "chart is required")
	}
	return chartio.ReadChart(bytes.NewReader(req.Chart), chartio.FormatJSON)
}

func (req LayoutRequest) options(c *chart.Chart) pipeline.Options {
	return pipeline.Options{
		Chart:        c,
		Width:        req.Width,
		Height:       req.Height,
		TickInterval: req.TickInterval,
		Format:       pipeline.FormatJSON,
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request")
	}
	return nil
}

// statusOf maps error codes to HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		msg = "internal error"
	}
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
