package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gantt-chart-generator/config"
	"gantt-chart-generator/internal/gantt/usecase"
	"gantt-chart-generator/internal/middleware"
	"gantt-chart-generator/pkg/llmprovider"
	"gantt-chart-generator/pkg/log"
)

func newTestServer(t *testing.T, providers ...string) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	uc := usecase.New(l, llmprovider.NewManager(nil, &llmprovider.Config{}, l), usecase.Config{Reconcile: true})
	srv, err := New(l, Config{
		Logger:       l,
		Port:         3000,
		Mode:         gin.TestMode,
		Environment:  environmentProduction,
		Middleware:   middleware.New(l, config.HTTPServerConfig{MaxBodyBytes: 1 << 20}, config.RateLimitConfig{}),
		GanttUseCase: uc,
		Providers:    providers,
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidates(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 3000, Mode: gin.TestMode})
	assert.EqualError(t, err, "gantt use case is required")
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t, "gemini")

	for path, status := range map[string]string{"/health": "ok", "/ready": "ready", "/live": "alive"} {
		w := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)

		var body struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, status, body.Data["status"])
		assert.Equal(t, ServiceName, body.Data["service"])
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	}
}

func TestReadyWithoutProviders(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "No language model provider is configured")

	live := serve(srv, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, live.Code)
}

func TestReadyListsProviders(t *testing.T) {
	srv := newTestServer(t, "gemini", "openai")

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Providers []string `json:"providers"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"gemini", "openai"}, body.Data.Providers)
}

func TestIndexIsCompressed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := serve(srv, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	plain := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, plain.Body.String(), "AI Gantt Chart Generator")
}

func TestClassifyRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gantt/classify", strings.NewReader(`{"instructions":"Roadmap from 2020 to 2030"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(srv, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Estimate struct {
				Unit           string `json:"unit"`
				TotalIntervals int    `json:"totalIntervals"`
			} `json:"estimate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "year", body.Data.Estimate.Unit)
	assert.Equal(t, 11, body.Data.Estimate.TotalIntervals)
}

func TestGenerateWithoutProviders(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/gantt/generate", "/api/generate"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"instructions":"An 8-week sprint"}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(srv, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}
}

func TestRenderRoute(t *testing.T) {
	srv := newTestServer(t)

	body := `{"timeline":{"title":"Pilot","unit":"week","totalIntervals":2,"phases":[` +
		`{"name":"Plan","colorKey":"planning","tasks":[{"name":"Scope","startIndex":1,"endIndex":2}]}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/gantt/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(srv, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<div class="header-cell">W2</div>`)
}
