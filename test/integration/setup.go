// Package integration wires the full ranking stack for tests: a seeded
// SQLite store, the criteria catalog from disk, the use case, the HTTP
// handlers with their middleware, and the metrics endpoint.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	rankinghttp "github.com/wisata-ranking/destination-ranking/internal/adapter/http"
	"github.com/wisata-ranking/destination-ranking/internal/adapter/http/middleware"
	"github.com/wisata-ranking/destination-ranking/internal/adapter/http/response"
	"github.com/wisata-ranking/destination-ranking/internal/adapter/repository/sqlite"
	"github.com/wisata-ranking/destination-ranking/internal/criteria"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/metrics"
	"github.com/wisata-ranking/destination-ranking/internal/usecase"
	"github.com/wisata-ranking/destination-ranking/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Store   *sqlite.Store
	Metrics *metrics.Metrics
}

// NewTestServer builds the service the way cmd/server does, backed by a
// temporary SQLite database seeded from data/destinations.yaml.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	store, err := sqlite.Open(testutil.TempDBPath(t))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := store.SeedFromFile(context.Background(), testutil.DataFile(t, "destinations.yaml")); err != nil {
		t.Fatalf("seed sqlite store: %v", err)
	}

	catalog, err := criteria.LoadFile(testutil.CriteriaFile(t))
	if err != nil {
		t.Fatalf("load criteria: %v", err)
	}

	m := metrics.New()
	uc := usecase.NewRankingUseCase(store, catalog, nil, usecase.WithRecorder(m))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, zerolog.Nop(), m)
	rankinghttp.RegisterRoutes(e, rankinghttp.NewRankingHandler(uc))
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	return &TestServer{
		Echo:    e,
		Store:   store,
		Metrics: m,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var body []byte
	if req.Body != nil {
		body, _ = json.Marshal(req.Body)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// RankingRequest ranks stored destinations. query is appended verbatim.
func (ts *TestServer) RankingRequest(query string) Response {
	path := "/api/v1/mabac"
	if query != "" {
		path += "?" + query
	}
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// CalculateRequest ranks a caller-supplied matrix.
func (ts *TestServer) CalculateRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/mabac/calculate", Body: body})
}

// Envelope is the success envelope with a ranking payload.
type Envelope struct {
	Message string                         `json:"message"`
	Code    int                            `json:"code"`
	Data    rankinghttp.RankingResponseDTO `json:"data"`
}

// ParseRanking parses the response body as a ranking envelope.
func (r *Response) ParseRanking() (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// ParseError parses the response body as an error envelope.
func (r *Response) ParseError() (*response.Response, error) {
	var env response.Response
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// RankedIDs returns the destination ids in rank order.
func (e *Envelope) RankedIDs() []string {
	ids := make([]string, len(e.Data.FinalRanking))
	for i, r := range e.Data.FinalRanking {
		ids[i] = r.ID
	}
	return ids
}
