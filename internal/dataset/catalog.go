package dataset

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/priyank-sharma/bharat-explorer/internal/observability"
)

// Catalog memoizes the dataset providers. Entries expire after the configured
// window and are rebuilt from the same literals, so content never changes;
// this only avoids reallocating the tables on every render.
type Catalog struct {
	lru *expirable.LRU[string, any]
}

func NewCatalog(ttl time.Duration) *Catalog {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Catalog{lru: expirable.NewLRU[string, any](32, nil, ttl)}
}

func cached[T any](c *Catalog, key string, build func() T) T {
	if v, ok := c.lru.Get(key); ok {
		if t, ok := v.(T); ok {
			observability.IncDatasetCacheHit(key)
			return t
		}
	}
	observability.IncDatasetCacheMiss(key)
	t := build()
	c.lru.Add(key, t)
	return t
}

func (c *Catalog) ForeignTourism() []ForeignTourismRow {
	return cached(c, "foreign_tourism", foreignTourism)
}

func (c *Catalog) DomesticTourism() []DomesticTourismRow {
	return cached(c, "domestic_tourism", domesticTourism)
}

func (c *Catalog) Monuments() []MonumentRow {
	return cached(c, "monuments", monuments)
}

func (c *Catalog) CulturalFunding() []FundingRow {
	return cached(c, "cultural_funding", culturalFunding)
}

func (c *Catalog) ArtForms() []ArtForm {
	return cached(c, "art_forms", artForms)
}

func (c *Catalog) Crafts() []Craft {
	return cached(c, "crafts", crafts)
}

func (c *Catalog) HeritageSites() []HeritageSite {
	return cached(c, "heritage_sites", heritageSites)
}

func (c *Catalog) SeasonalIndex() []SeasonalIndexRow {
	return cached(c, "seasonal_index", seasonalIndex)
}

func (c *Catalog) CulturalEvents() []CulturalEvent {
	return cached(c, "cultural_events", culturalEvents)
}

func (c *Catalog) HandicraftExports() []ExportRow {
	return cached(c, "handicraft_exports", handicraftExports)
}

func (c *Catalog) ResponsibleTourism() []ResponsibleTourismRow {
	return cached(c, "responsible_tourism", responsibleTourism)
}
