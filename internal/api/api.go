// Package api serves the JSON surface behind the dashboard pages.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/priyank-sharma/bharat-explorer/internal/chat"
	"github.com/priyank-sharma/bharat-explorer/internal/config"
	"github.com/priyank-sharma/bharat-explorer/internal/dataset"
	"github.com/priyank-sharma/bharat-explorer/internal/explorer"
)

type Handlers struct {
	logger  *slog.Logger
	catalog *dataset.Catalog
	chat    *chat.Service
	cfg     config.Config
}

// New builds the handler set. chatSvc may be nil when the assistant is not
// configured; POST /api/chat then answers 503.
func New(logger *slog.Logger, catalog *dataset.Catalog, chatSvc *chat.Service, cfg config.Config) *Handlers {
	return &Handlers{logger: logger, catalog: catalog, chat: chatSvc, cfg: cfg}
}

func (h *Handlers) unified() []explorer.Record {
	return explorer.Unify(h.logger,
		h.catalog.HeritageSites(),
		h.catalog.ArtForms(),
		h.catalog.Crafts(),
		h.catalog.CulturalEvents(),
	)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response failed", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
