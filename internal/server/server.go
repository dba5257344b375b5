// Package server wires the dashboard pages and the JSON API onto one chi
// router and runs it until the context is cancelled.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/priyank-sharma/bharat-explorer/internal/api"
	"github.com/priyank-sharma/bharat-explorer/internal/config"
	"github.com/priyank-sharma/bharat-explorer/internal/dashboard"
	"github.com/priyank-sharma/bharat-explorer/internal/health"
	"github.com/priyank-sharma/bharat-explorer/internal/media"
	"github.com/priyank-sharma/bharat-explorer/internal/middleware"
)

// Deps carries the built components into the router.
type Deps struct {
	Pages    *dashboard.Pages
	Handlers *api.Handlers
	Media    *media.Proxy
}

func NewRouter(logger *slog.Logger, d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recover())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	r.Get("/healthz", health.Liveness())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get("/", d.Pages.Home)
	r.Get("/explorer", d.Pages.Explorer)
	r.Get("/arts", d.Pages.ArtForms)
	r.Get("/heritage", d.Pages.HeritageSites)
	r.Get("/tourism", d.Pages.Tourism)
	r.Get("/events", d.Pages.Events)
	r.Get("/economy", d.Pages.Economy)
	r.Get("/responsible", d.Pages.Responsible)
	r.Get("/chat", d.Pages.Chat)
	r.Get("/media", d.Media.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/datasets", d.Handlers.ListDatasets)
		r.Get("/datasets/{name}", d.Handlers.GetDataset)
		r.Get("/explorer", d.Handlers.GetExplorer)
		r.Get("/explorer/options", d.Handlers.GetExplorerOptions)
		r.Get("/explorer/clusters", d.Handlers.GetExplorerClusters)
		r.Post("/chat", d.Handlers.PostChat)
	})

	return r
}

// Run starts serving and blocks until ctx is cancelled or the listener fails.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, d Deps) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(logger, d),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
