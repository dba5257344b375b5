package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/priyank-sharma/bharat-explorer/internal/api"
	"github.com/priyank-sharma/bharat-explorer/internal/config"
	"github.com/priyank-sharma/bharat-explorer/internal/dashboard"
	"github.com/priyank-sharma/bharat-explorer/internal/dataset"
	"github.com/priyank-sharma/bharat-explorer/internal/media"
)

func testDeps(t *testing.T) (*slog.Logger, Deps) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := dataset.NewCatalog(time.Minute)
	cfg := config.Config{ClusterRes: 4, ClusterResMin: 2, ClusterResMax: 7, MediaMaxBytes: 1 << 20}
	return logger, Deps{
		Pages:    dashboard.New(logger, catalog, nil, cfg, false),
		Handlers: api.New(logger, catalog, nil, cfg),
		Media:    media.NewProxy(logger, nil, cfg.MediaMaxBytes),
	}
}

func TestRouterServesAllRoutes(t *testing.T) {
	logger, deps := testDeps(t)
	router := NewRouter(logger, deps)

	routes := []struct {
		target string
		status int
	}{
		{"/healthz", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/", http.StatusOK},
		{"/explorer", http.StatusOK},
		{"/arts", http.StatusOK},
		{"/heritage", http.StatusOK},
		{"/tourism", http.StatusOK},
		{"/events", http.StatusOK},
		{"/economy", http.StatusOK},
		{"/responsible", http.StatusOK},
		{"/chat", http.StatusOK},
		{"/api/datasets", http.StatusOK},
		{"/api/datasets/crafts", http.StatusOK},
		{"/api/explorer", http.StatusOK},
		{"/api/explorer/options", http.StatusOK},
		{"/api/explorer/clusters", http.StatusOK},
	}
	for _, tc := range routes {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
		if rec.Code != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.target, rec.Code, tc.status)
		}
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	logger, deps := testDeps(t)
	router := NewRouter(logger, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}
}

func TestRouterChatUnconfigured(t *testing.T) {
	logger, deps := testDeps(t)
	router := NewRouter(logger, deps)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi"}`))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
