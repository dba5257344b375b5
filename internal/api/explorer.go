package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/priyank-sharma/bharat-explorer/internal/explorer"
)

// GetExplorer serves GET /api/explorer. Query params state, category and
// month behave as filters; empty or "All" means no constraint.
func (h *Handlers) GetExplorer(w http.ResponseWriter, r *http.Request) {
	pred := explorer.Predicate{
		State:    r.URL.Query().Get("state"),
		Category: r.URL.Query().Get("category"),
		Month:    r.URL.Query().Get("month"),
	}
	records := explorer.Filter(h.unified(), pred)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(records),
		"records": records,
	})
}

// GetExplorerOptions serves GET /api/explorer/options: the distinct filter
// values the UI can offer, each list led by the wildcard.
func (h *Handlers) GetExplorerOptions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, explorer.BuildOptions(h.unified()))
}

// GetExplorerClusters serves GET /api/explorer/clusters. The res query param
// selects the cell resolution, clamped to the configured bounds; the same
// filter params as /api/explorer narrow the input records.
func (h *Handlers) GetExplorerClusters(w http.ResponseWriter, r *http.Request) {
	res := h.cfg.ClusterRes
	if raw := r.URL.Query().Get("res"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid res %q", raw))
			return
		}
		res = v
	}
	if res < h.cfg.ClusterResMin {
		res = h.cfg.ClusterResMin
	}
	if res > h.cfg.ClusterResMax {
		res = h.cfg.ClusterResMax
	}

	pred := explorer.Predicate{
		State:    r.URL.Query().Get("state"),
		Category: r.URL.Query().Get("category"),
		Month:    r.URL.Query().Get("month"),
	}
	records := explorer.Filter(h.unified(), pred)
	clusters, err := explorer.Clusterize(records, res)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"resolution": res,
		"clusters":   clusters,
	})
}
