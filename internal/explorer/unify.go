package explorer

import (
	"log/slog"
	"math"

	"github.com/priyank-sharma/bharat-explorer/internal/dataset"
	"github.com/priyank-sharma/bharat-explorer/internal/geo"
)

// Unify concatenates the four source datasets into one ordered record
// sequence: heritage sites, then art forms, then crafts, then events, each in
// source order. Sites and art forms carry their own coordinates; crafts and
// events are placed via the lookup tables with the centroid fallback. A row
// whose coordinates are still not finite after fallback is dropped and logged;
// with well-formed lookup tables that never happens.
func Unify(
	logger *slog.Logger,
	sites []dataset.HeritageSite,
	arts []dataset.ArtForm,
	crafts []dataset.Craft,
	events []dataset.CulturalEvent,
) []Record {
	out := make([]Record, 0, len(sites)+len(arts)+len(crafts)+len(events))

	keep := func(r Record) {
		if !finite(r.Lat) || !finite(r.Lon) {
			if logger != nil {
				logger.Warn("dropping record with unresolved coordinates",
					"name", r.Name, "state", r.State, "category", string(r.Category))
			}
			return
		}
		out = append(out, r)
	}

	for _, s := range sites {
		keep(Record{Name: s.Name, State: s.State, Category: CategoryHeritageSites, Lat: s.Lat, Lon: s.Lon})
	}
	for _, a := range arts {
		keep(Record{Name: a.Name, State: a.Region, Category: CategoryArtForms, Lat: a.Lat, Lon: a.Lon})
	}
	for _, c := range crafts {
		p := geo.CraftCoords.Resolve(c.State)
		keep(Record{Name: c.Name, State: c.State, Category: CategoryCrafts, Lat: p.Lat, Lon: p.Lon})
	}
	for _, e := range events {
		p := geo.EventCoords.Resolve(e.State)
		keep(Record{Name: e.Name, State: e.State, Category: CategoryEvents, Lat: p.Lat, Lon: p.Lon, Month: e.Month})
	}
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
