// Package media proxies remote imagery for dashboard cards so the browser
// never talks to third-party hosts directly. Only an allowlist of hosts is
// fetched, oversized bodies are refused, and any failure degrades to an
// inline SVG placeholder instead of a broken image.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/priyank-sharma/bharat-explorer/internal/httpclient"
	"github.com/priyank-sharma/bharat-explorer/internal/observability"
)

const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="320" height="200" viewBox="0 0 320 200"><rect width="320" height="200" fill="#f2ede4"/><text x="160" y="104" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#8a8073">image unavailable</text></svg>`

type Proxy struct {
	logger   *slog.Logger
	client   *resty.Client
	hosts    map[string]struct{}
	maxBytes int64
}

func NewProxy(logger *slog.Logger, allowedHosts []string, maxBytes int64) *Proxy {
	hosts := make(map[string]struct{}, len(allowedHosts))
	for _, h := range allowedHosts {
		hosts[strings.ToLower(h)] = struct{}{}
	}
	client := resty.NewWithClient(httpclient.NewOutbound()).
		SetTimeout(10 * time.Second)
	return &Proxy{logger: logger, client: client, hosts: hosts, maxBytes: maxBytes}
}

// Handler serves GET /media?url=<remote>.
func (p *Proxy) Handler(w http.ResponseWriter, r *http.Request) {
	src := r.URL.Query().Get("url")
	body, contentType, err := p.Fetch(r.Context(), src)
	if err != nil {
		p.logger.Warn("media fetch failed", "src", src, "error", err)
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(placeholderSVG))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(body)
}

// Fetch retrieves the image at src, enforcing the host allowlist and the
// size cap. Callers get the body bytes and the upstream content type.
func (p *Proxy) Fetch(ctx context.Context, src string) ([]byte, string, error) {
	u, err := url.Parse(src)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, "", fmt.Errorf("media: invalid url %q", src)
	}
	if _, ok := p.hosts[strings.ToLower(u.Hostname())]; !ok {
		return nil, "", fmt.Errorf("media: host %q not allowed", u.Hostname())
	}

	start := time.Now()
	resp, err := p.client.R().SetContext(ctx).Get(u.String())
	observability.ObserveUpstreamLatency("media", time.Since(start).Seconds())
	if err != nil {
		observability.IncUpstreamFailure("media")
		return nil, "", fmt.Errorf("media: fetch: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		observability.IncUpstreamFailure("media")
		return nil, "", fmt.Errorf("media: upstream status %d", resp.StatusCode())
	}
	body := resp.Body()
	if int64(len(body)) > p.maxBytes {
		return nil, "", fmt.Errorf("media: body %d bytes exceeds cap %d", len(body), p.maxBytes)
	}
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("media: unexpected content type %q", contentType)
	}
	return body, contentType, nil
}
