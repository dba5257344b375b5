package dashboard

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/priyank-sharma/bharat-explorer/internal/config"
	"github.com/priyank-sharma/bharat-explorer/internal/dataset"
)

func testPages(t *testing.T) *Pages {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{ClusterRes: 4, ClusterResMin: 2, ClusterResMax: 7}
	return New(logger, dataset.NewCatalog(time.Minute), nil, cfg, false)
}

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHomeListsAllPages(t *testing.T) {
	rec := get(t, testPages(t).Home, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, link := range []string{"/explorer", "/arts", "/heritage", "/tourism", "/events", "/economy", "/responsible", "/chat"} {
		if !strings.Contains(body, `href="`+link+`"`) {
			t.Errorf("home page missing link to %s", link)
		}
	}
}

func TestChartPagesRender(t *testing.T) {
	p := testPages(t)
	pages := map[string]http.HandlerFunc{
		"/arts":        p.ArtForms,
		"/heritage":    p.HeritageSites,
		"/tourism":     p.Tourism,
		"/events":      p.Events,
		"/economy":     p.Economy,
		"/responsible": p.Responsible,
		"/explorer":    p.Explorer,
	}
	for target, h := range pages {
		rec := get(t, h, target)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", target, rec.Code)
			continue
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("%s: content type = %q", target, ct)
		}
		if !strings.Contains(rec.Body.String(), "echarts") {
			t.Errorf("%s: no chart markup in body", target)
		}
	}
}

func TestExplorerFiltersNarrowRecords(t *testing.T) {
	p := testPages(t)

	all := get(t, p.Explorer, "/explorer")
	kerala := get(t, p.Explorer, "/explorer?state=Kerala")
	if kerala.Body.Len() >= all.Body.Len() {
		t.Fatal("state filter did not reduce the rendered record set")
	}
}

func TestExplorerNoMatchesStillRenders(t *testing.T) {
	rec := get(t, testPages(t).Explorer, "/explorer?state=Atlantis")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no records match") {
		t.Fatal("expected the empty-result notice")
	}
}

func TestChatPageDisabledNotice(t *testing.T) {
	rec := get(t, testPages(t).Chat, "/chat")
	if !strings.Contains(rec.Body.String(), "GOOGLE_API_KEY") {
		t.Fatal("expected the not-configured notice when chat is disabled")
	}
}

func TestChatPageEnabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := New(logger, dataset.NewCatalog(time.Minute), nil, config.Config{ClusterRes: 4, ClusterResMin: 2, ClusterResMax: 7}, true)
	rec := get(t, p.Chat, "/chat")
	if !strings.Contains(rec.Body.String(), "/api/chat") {
		t.Fatal("expected the chat form when enabled")
	}
}
