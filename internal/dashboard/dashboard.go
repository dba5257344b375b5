// Package dashboard renders the Bharat Explorer pages as server-side HTML.
// Chart pages are built with go-echarts and rendered to a buffer before
// writing; the home and chat pages are plain templates.
package dashboard

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/priyank-sharma/bharat-explorer/internal/config"
	"github.com/priyank-sharma/bharat-explorer/internal/dataset"
	"github.com/priyank-sharma/bharat-explorer/internal/explorer"
	"github.com/priyank-sharma/bharat-explorer/internal/warehouse"
)

type Pages struct {
	logger      *slog.Logger
	catalog     *dataset.Catalog
	warehouse   *warehouse.Loader
	cfg         config.Config
	chatEnabled bool
}

// New builds the page set. warehouse may be nil when the warehouse is not
// configured; the tourism page then renders from the reference datasets only.
func New(logger *slog.Logger, catalog *dataset.Catalog, wh *warehouse.Loader, cfg config.Config, chatEnabled bool) *Pages {
	return &Pages{
		logger:      logger,
		catalog:     catalog,
		warehouse:   wh,
		cfg:         cfg,
		chatEnabled: chatEnabled,
	}
}

func (p *Pages) unified() []explorer.Record {
	return explorer.Unify(p.logger,
		p.catalog.HeritageSites(),
		p.catalog.ArtForms(),
		p.catalog.Crafts(),
		p.catalog.CulturalEvents(),
	)
}

// renderPage renders the assembled charts and writes the document. Render
// errors are rare (template execution) and surface as a 500.
func (p *Pages) renderPage(w http.ResponseWriter, page *components.Page) {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		p.logger.Error("page render failed", "error", err)
		http.Error(w, fmt.Sprintf("failed to render page: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
