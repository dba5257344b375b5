package api

import (
	"context"
	"encoding/json"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"google.golang.org/genai"

	"github.com/priyank-sharma/bharat-explorer/internal/chat"
	"github.com/priyank-sharma/bharat-explorer/internal/config"
	"github.com/priyank-sharma/bharat-explorer/internal/dataset"
)

// scriptedStreamer satisfies chat.Streamer with canned chunks.
type scriptedStreamer []string

func (s scriptedStreamer) Stream(_ context.Context, _ []*genai.Content) iter.Seq2[*genai.GenerateContentResponse, error] {
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, chunk := range s {
			resp := &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{{Text: chunk}}},
				}},
			}
			if !yield(resp, nil) {
				return
			}
		}
	}
}

func testRouter(t *testing.T, chatSvc *chat.Service) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{ClusterRes: 4, ClusterResMin: 2, ClusterResMax: 7}
	h := New(logger, dataset.NewCatalog(time.Minute), chatSvc, cfg)

	r := chi.NewRouter()
	r.Get("/api/datasets", h.ListDatasets)
	r.Get("/api/datasets/{name}", h.GetDataset)
	r.Get("/api/explorer", h.GetExplorer)
	r.Get("/api/explorer/options", h.GetExplorerOptions)
	r.Get("/api/explorer/clusters", h.GetExplorerClusters)
	r.Post("/api/chat", h.PostChat)
	return r
}

func do(t *testing.T, r chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
}

func TestGetDataset(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodGet, "/api/datasets/heritage-sites", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var rows []dataset.HeritageSite
	decode(t, rec, &rows)
	if len(rows) != 36 {
		t.Fatalf("got %d heritage sites, want 36", len(rows))
	}
	if rec.Header().Get("ETag") == "" {
		t.Fatal("expected an ETag header")
	}
}

func TestGetDatasetNotModified(t *testing.T) {
	r := testRouter(t, nil)
	first := do(t, r, http.MethodGet, "/api/datasets/crafts", "")
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/datasets/crafts", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", rec.Code)
	}
}

func TestGetDatasetUnknown(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodGet, "/api/datasets/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListDatasets(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodGet, "/api/datasets", "")
	var resp struct {
		Datasets []string `json:"datasets"`
	}
	decode(t, rec, &resp)
	if len(resp.Datasets) != 11 {
		t.Fatalf("got %d datasets, want 11", len(resp.Datasets))
	}
}

func TestGetExplorerUnfiltered(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodGet, "/api/explorer", "")
	var resp struct {
		Count   int               `json:"count"`
		Records []json.RawMessage `json:"records"`
	}
	decode(t, rec, &resp)
	// 36 sites + 37 art forms + 36 crafts + 37 events
	if resp.Count != 146 {
		t.Fatalf("count = %d, want 146", resp.Count)
	}
	if len(resp.Records) != resp.Count {
		t.Fatalf("records %d != count %d", len(resp.Records), resp.Count)
	}
}

func TestGetExplorerFiltered(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodGet, "/api/explorer?state=Kerala&category=Art+Forms", "")
	var resp struct {
		Count   int `json:"count"`
		Records []struct {
			State    string `json:"state"`
			Category string `json:"category"`
		} `json:"records"`
	}
	decode(t, rec, &resp)
	if resp.Count == 0 {
		t.Fatal("expected Kerala art forms")
	}
	for _, rcd := range resp.Records {
		if rcd.State != "Kerala" || rcd.Category != "Art Forms" {
			t.Fatalf("record outside filter: %+v", rcd)
		}
	}
}

func TestGetExplorerOptions(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodGet, "/api/explorer/options", "")
	var resp struct {
		States     []string `json:"states"`
		Categories []string `json:"categories"`
		Months     []string `json:"months"`
	}
	decode(t, rec, &resp)
	if len(resp.States) == 0 || resp.States[0] != "All" {
		t.Fatalf("states should lead with All, got %v", resp.States[:min(3, len(resp.States))])
	}
	if len(resp.Categories) != 5 {
		t.Fatalf("got %d categories, want All plus four", len(resp.Categories))
	}
	if len(resp.Months) != 13 {
		t.Fatalf("got %d months, want All plus twelve", len(resp.Months))
	}
}

func TestGetExplorerClustersClampsResolution(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodGet, "/api/explorer/clusters?res=12", "")
	var resp struct {
		Resolution int `json:"resolution"`
		Clusters   []struct {
			Count int `json:"count"`
		} `json:"clusters"`
	}
	decode(t, rec, &resp)
	if resp.Resolution != 7 {
		t.Fatalf("resolution = %d, want clamp to 7", resp.Resolution)
	}
	total := 0
	for _, c := range resp.Clusters {
		total += c.Count
	}
	if total != 146 {
		t.Fatalf("cluster counts sum to %d, want 146", total)
	}
}

func TestGetExplorerClustersBadRes(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodGet, "/api/explorer/clusters?res=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPostChatUnconfigured(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodPost, "/api/chat", `{"message":"hi"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestPostChatRoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := chat.NewServiceWithStreamer(logger, scriptedStreamer{"Namaste!"}, time.Minute)
	r := testRouter(t, svc)

	rec := do(t, r, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp chatResponse
	decode(t, rec, &resp)
	if resp.SessionID == "" || resp.Reply != "Namaste!" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestPostChatEmptyMessage(t *testing.T) {
	r := testRouter(t, nil)
	rec := do(t, r, http.MethodPost, "/api/chat", `{}`)
	if rec.Code == http.StatusOK {
		t.Fatal("expected rejection of empty message")
	}
}
