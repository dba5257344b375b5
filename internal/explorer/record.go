// Package explorer merges the four mappable datasets into one filterable
// shape and serves the cross-dataset views behind the Interactive Explorer.
package explorer

// Category tags a unified record with its originating dataset.
type Category string

const (
	CategoryHeritageSites Category = "Heritage Sites"
	CategoryArtForms      Category = "Art Forms"
	CategoryCrafts        Category = "Crafts"
	CategoryEvents        Category = "Events"
)

// Categories in presentation order.
var Categories = []Category{CategoryHeritageSites, CategoryArtForms, CategoryCrafts, CategoryEvents}

// Record is the common shape of one heritage site, art form, craft or event.
// Month is empty except for events.
type Record struct {
	Name     string   `json:"name"`
	State    string   `json:"state"`
	Category Category `json:"category"`
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
	Month    string   `json:"month,omitempty"`
}
