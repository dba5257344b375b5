package explorer

import (
	"fmt"
	"sort"

	h3 "github.com/uber/h3-go/v4"
)

// Cluster groups nearby records into one map marker, the way the source UI
// collapses dense marker areas.
type Cluster struct {
	Cell  string   `json:"cell"`
	Lat   float64  `json:"lat"`
	Lon   float64  `json:"lon"`
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// Clusterize buckets records into H3 cells at the given resolution and
// returns one cluster per occupied cell, positioned at the cell centre.
// Clusters are sorted by descending count, ties broken by cell id, so output
// is deterministic for identical inputs.
func Clusterize(records []Record, res int) ([]Cluster, error) {
	if res < 0 || res > 15 {
		return nil, fmt.Errorf("invalid H3 resolution %d (must be 0..15)", res)
	}

	byCell := make(map[h3.Cell][]string)
	for _, r := range records {
		cell, err := h3.LatLngToCell(h3.LatLng{Lat: r.Lat, Lng: r.Lon}, res)
		if err != nil {
			return nil, fmt.Errorf("h3 cell for %q: %w", r.Name, err)
		}
		byCell[cell] = append(byCell[cell], r.Name)
	}

	out := make([]Cluster, 0, len(byCell))
	for cell, names := range byCell {
		ll, err := h3.CellToLatLng(cell)
		if err != nil {
			return nil, fmt.Errorf("h3 cell centre: %w", err)
		}
		out = append(out, Cluster{
			Cell:  cell.String(),
			Lat:   ll.Lat,
			Lon:   ll.Lng,
			Count: len(names),
			Names: names,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Cell < out[j].Cell
	})
	return out, nil
}
