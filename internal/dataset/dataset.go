// Package dataset holds the curated reference tables the dashboard is built
// from: tourism counts, monuments, art forms, crafts, heritage sites, cultural
// events, funding, exports, seasonal indices and responsible-tourism scores.
// Every provider is a pure constructor over literal data; the catalog memoizes
// results for a bounded window so repeated renders do not rebuild the slices.
package dataset

// ForeignTourismRow is one state's foreign tourist visits for 2022.
type ForeignTourismRow struct {
	StateUT string  `json:"state_ut"`
	Visits  int     `json:"ftv_2022"`
	Share   float64 `json:"share_pct"`
}

// DomesticTourismRow is one state's domestic tourist visits for 2022.
type DomesticTourismRow struct {
	StateUT        string  `json:"state_ut"`
	VisitsMillions float64 `json:"dtv_2022_millions"`
	Share          float64 `json:"share_pct"`
}

type MonumentRow struct {
	StateUT   string `json:"state_ut"`
	Monuments int    `json:"monuments"`
}

// FundingRow is central cultural-scheme expenditure across four fiscal years,
// in crore rupees.
type FundingRow struct {
	Scheme string  `json:"scheme"`
	FY2020 float64 `json:"expenditure_2019_20"`
	FY2021 float64 `json:"expenditure_2020_21"`
	FY2022 float64 `json:"expenditure_2021_22"`
	FY2023 float64 `json:"expenditure_2022_23"`
}

type ArtForm struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Region     string  `json:"region"`
	Popularity int     `json:"popularity"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

type Craft struct {
	Name      string  `json:"name"`
	State     string  `json:"state"`
	Artisans  int     `json:"artisans"`
	RevenueCr float64 `json:"annual_revenue_cr"`
}

type HeritageSite struct {
	Name          string  `json:"name"`
	State         string  `json:"state"`
	YearInscribed int     `json:"year_inscribed"`
	Visitors      int     `json:"visitors_annual"`
	Type          string  `json:"type"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
}

// SeasonalIndexRow is a relative tourism intensity (0-100) for one month in
// one region of the country.
type SeasonalIndexRow struct {
	Month  string `json:"month"`
	Region string `json:"region"`
	Index  int    `json:"tourism_index"`
}

type CulturalEvent struct {
	Name         string `json:"name"`
	State        string `json:"state"`
	Month        string `json:"month"`
	Visitors     int    `json:"visitors_estimate"`
	Significance int    `json:"cultural_significance"`
}

// ExportRow is handicraft export value by product line for one year, in
// crore rupees. Total is derived from the product lines.
type ExportRow struct {
	Year               int     `json:"year"`
	HandmadeCarpets    float64 `json:"handmade_carpets"`
	ArtMetalwares      float64 `json:"art_metalwares"`
	EmbroideredTextile float64 `json:"embroidered_textiles"`
	ShawlsArtifacts    float64 `json:"shawls_artifacts"`
	Woodwares          float64 `json:"woodwares"`
	ZariProducts       float64 `json:"zari_products"`
	ImitationJewelry   float64 `json:"imitation_jewelry"`
	Miscellaneous      float64 `json:"miscellaneous"`
	Total              float64 `json:"total"`
}

type ResponsibleTourismRow struct {
	State                string  `json:"state"`
	EcoScore             int     `json:"eco_tourism_score"`
	CommunityInvolvement int     `json:"community_involvement"`
	SustainablePractices int     `json:"sustainable_practices"`
	CulturalPreservation int     `json:"cultural_preservation"`
	Overall              float64 `json:"overall_rt_score"`
}
