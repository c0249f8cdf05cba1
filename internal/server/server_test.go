package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackchart/pkg/chartio"
	"github.com/matzehuels/stackchart/pkg/core/curve"
	"github.com/matzehuels/stackchart/pkg/observability"
)

const barChart = `{
	"config": {"type": "bar", "groups": [["a", "b"]]},
	"series": [
		{"id": "a", "values": [1, 2, 3]},
		{"id": "b", "values": [3, 2, 1]}
	]
}`

func newTestServer() *Server {
	return New(log.NewWithOptions(io.Discard, log.Options{}))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer().Handler(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

func TestInterpolations(t *testing.T) {
	rec := do(t, newTestServer().Handler(), http.MethodGet, "/v1/interpolations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cat Catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cat))
	assert.Equal(t, curve.Names(), cat.Interpolations)
	assert.Contains(t, cat.StepTypes, "step-after")
	assert.NotEmpty(t, cat.Types)
}

func TestLayout(t *testing.T) {
	req := LayoutRequest{Chart: json.RawMessage(barChart), Width: 400, Height: 300}
	rec := do(t, newTestServer().Handler(), http.MethodPost, "/v1/layout", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	id := rec.Header().Get(HeaderLayoutID)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	doc, err := chartio.UnmarshalLayout(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, 400.0, doc.Width)
	require.Len(t, doc.Series, 2)
	assert.Len(t, doc.Series[0].Bars, 3)
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"malformed", `{"chart": `, http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown field", `{"chart": {}, "colour": "red"}`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"missing chart", `{"width": 100}`, http.StatusBadRequest, "INVALID_INPUT"},
		{
			"bad interpolation",
			LayoutRequest{Chart: json.RawMessage(`{"config": {"type": "spline", "spline": {"interpolation": "wavy"}}, "series": [{"id": "a", "values": [1]}]}`)},
			http.StatusBadRequest, "INVALID_INTERPOLATION",
		},
		{
			"negative width",
			LayoutRequest{Chart: json.RawMessage(barChart), Width: -1},
			http.StatusBadRequest, "INVALID_INPUT",
		},
		{
			"data file",
			LayoutRequest{Chart: json.RawMessage(`{"config": {}, "data_file": "data.csv"}`)},
			http.StatusUnprocessableEntity, "UNSUPPORTED",
		},
	}

	h := newTestServer().Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/layout", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, string(decodeError(t, rec).Code))
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer().Handler(), http.MethodGet, "/v1/layout", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHit(t *testing.T) {
	h := newTestServer().Handler()

	rec := do(t, h, http.MethodPost, "/v1/layout", LayoutRequest{Chart: json.RawMessage(barChart)})
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := chartio.UnmarshalLayout(rec.Body.Bytes())
	require.NoError(t, err)
	bar := doc.Series[0].Bars[2]

	req := HitRequest{
		LayoutRequest: LayoutRequest{Chart: json.RawMessage(barChart)},
		X:             bar.X + bar.Width/2,
		Y:             bar.Y + bar.Height/2,
	}
	rec = do(t, h, http.MethodPost, "/v1/hit", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(HeaderLayoutID))

	var resp HitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Hits)
	first := resp.Hits[0]
	assert.Equal(t, "bar", first.Kind)
	assert.Equal(t, "a", first.Series)
	require.NotNil(t, first.Index)
	assert.Equal(t, 2, *first.Index)
	require.NotNil(t, first.Value)
	assert.Equal(t, 3.0, *first.Value)
}

func TestHitMiss(t *testing.T) {
	req := HitRequest{LayoutRequest: LayoutRequest{Chart: json.RawMessage(barChart)}, X: -500, Y: -500}
	rec := do(t, newTestServer().Handler(), http.MethodPost, "/v1/hit", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Hits)
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	statuses []int
	errors   int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}

func (h *recordingHTTPHooks) OnError(context.Context, string, string, error) { h.errors++ }

func TestInstrumentEmitsHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	rec := &recordingHTTPHooks{}
	observability.SetHTTPHooks(rec)

	h := newTestServer().Handler()
	do(t, h, http.MethodGet, "/healthz", nil)
	do(t, h, http.MethodPost, "/v1/layout", `{}`)

	assert.Equal(t, []int{http.StatusOK, http.StatusBadRequest}, rec.statuses)
	assert.Equal(t, 1, rec.errors)
}

func TestListenAndServeShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer().ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
