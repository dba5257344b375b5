package media

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// proxyFor builds a proxy whose allowlist contains the test server's host.
func proxyFor(t *testing.T, srv *httptest.Server, maxBytes int64) *Proxy {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	return NewProxy(testLogger(), []string{u.Hostname()}, maxBytes)
}

func TestFetchAllowedHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("pngbytes"))
	}))
	defer srv.Close()

	p := proxyFor(t, srv, 1<<20)
	body, ct, err := p.Fetch(context.Background(), srv.URL+"/a.png")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(body) != "pngbytes" {
		t.Fatalf("body = %q", body)
	}
	if ct != "image/png" {
		t.Fatalf("content type = %q, want image/png", ct)
	}
}

func TestFetchRejectsUnlistedHost(t *testing.T) {
	p := NewProxy(testLogger(), []string{"upload.wikimedia.org"}, 1<<20)
	if _, _, err := p.Fetch(context.Background(), "https://evil.example.com/x.png"); err == nil {
		t.Fatal("expected rejection for unlisted host")
	}
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(make([]byte, 64))
	}))
	defer srv.Close()

	p := proxyFor(t, srv, 16)
	if _, _, err := p.Fetch(context.Background(), srv.URL+"/big.jpg"); err == nil {
		t.Fatal("expected size cap error")
	}
}

func TestFetchRejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	p := proxyFor(t, srv, 1<<20)
	if _, _, err := p.Fetch(context.Background(), srv.URL+"/page"); err == nil {
		t.Fatal("expected content type error")
	}
}

func TestHandlerServesPlaceholderOnFailure(t *testing.T) {
	p := NewProxy(testLogger(), nil, 1<<20)
	req := httptest.NewRequest(http.MethodGet, "/media?url=https://nowhere.example/x.png", nil)
	rec := httptest.NewRecorder()
	p.Handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("content type = %q, want image/svg+xml", ct)
	}
	if !strings.Contains(rec.Body.String(), "image unavailable") {
		t.Fatal("expected placeholder body")
	}
}

func TestHandlerPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	p := proxyFor(t, srv, 1<<20)
	req := httptest.NewRequest(http.MethodGet, "/media?url="+url.QueryEscape(srv.URL+"/a.png"), nil)
	rec := httptest.NewRecorder()
	p.Handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body = %q, want ok", rec.Body.String())
	}
}
