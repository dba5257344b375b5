package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/go-chi/chi/v5"
)

// dataset ships a lookup from URL name to provider so the handler stays a
// single code path. Keys double as the /api/datasets index listing.
func (h *Handlers) datasetByName(name string) (any, bool) {
	switch name {
	case "foreign-tourism":
		return h.catalog.ForeignTourism(), true
	case "domestic-tourism":
		return h.catalog.DomesticTourism(), true
	case "monuments":
		return h.catalog.Monuments(), true
	case "cultural-funding":
		return h.catalog.CulturalFunding(), true
	case "art-forms":
		return h.catalog.ArtForms(), true
	case "crafts":
		return h.catalog.Crafts(), true
	case "heritage-sites":
		return h.catalog.HeritageSites(), true
	case "seasonal-index":
		return h.catalog.SeasonalIndex(), true
	case "cultural-events":
		return h.catalog.CulturalEvents(), true
	case "handicraft-exports":
		return h.catalog.HandicraftExports(), true
	case "responsible-tourism":
		return h.catalog.ResponsibleTourism(), true
	}
	return nil, false
}

var datasetNames = []string{
	"art-forms", "crafts", "cultural-events", "cultural-funding",
	"domestic-tourism", "foreign-tourism", "handicraft-exports",
	"heritage-sites", "monuments", "responsible-tourism", "seasonal-index",
}

// ListDatasets serves GET /api/datasets.
func (h *Handlers) ListDatasets(w http.ResponseWriter, r *http.Request) {
	names := append([]string{}, datasetNames...)
	sort.Strings(names)
	h.writeJSON(w, http.StatusOK, map[string]any{"datasets": names})
}

// GetDataset serves GET /api/datasets/{name}. Responses carry an ETag over
// the encoded body; a matching If-None-Match short-circuits to 304.
func (h *Handlers) GetDataset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, ok := h.datasetByName(name)
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown dataset %q", name))
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "encode dataset")
		return
	}
	etag := fmt.Sprintf(`"%x"`, xxhash.Sum64(body))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
