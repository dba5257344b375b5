package dashboard

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/priyank-sharma/bharat-explorer/internal/explorer"
)

var categoryColors = map[explorer.Category]string{
	explorer.CategoryHeritageSites: "#9c3b1e",
	explorer.CategoryArtForms:      "#2e6f95",
	explorer.CategoryCrafts:        "#c08b2d",
	explorer.CategoryEvents:        "#4a7c59",
}

// Explorer serves the combined cultural map. Query params state, category and
// month narrow the records; res picks the cluster resolution within the
// configured bounds.
func (p *Pages) Explorer(w http.ResponseWriter, r *http.Request) {
	pred := explorer.Predicate{
		State:    r.URL.Query().Get("state"),
		Category: r.URL.Query().Get("category"),
		Month:    r.URL.Query().Get("month"),
	}
	records := explorer.Filter(p.unified(), pred)
	res := p.clusterRes(r.URL.Query().Get("res"))

	scatter := charts.NewScatter()
	subtitle := fmt.Sprintf("%d records", len(records))
	if len(records) == 0 {
		subtitle = "no records match the selected filters"
	}
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Interactive Explorer", Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Interactive Cultural Explorer", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 68, Max: 98, Name: "longitude"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 6, Max: 38, Name: "latitude"}),
	)
	for _, cat := range explorer.Categories {
		pts := make([]opts.ScatterData, 0, len(records))
		for _, rec := range records {
			if rec.Category != cat {
				continue
			}
			pts = append(pts, opts.ScatterData{Name: rec.Name, Value: []interface{}{rec.Lon, rec.Lat}})
		}
		scatter.AddSeries(string(cat), pts,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 7}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: categoryColors[cat]}),
		)
	}

	page := components.NewPage()
	page.AddCharts(scatter)

	if cluster := p.clusterChart(records, res); cluster != nil {
		page.AddCharts(cluster)
	}
	p.renderPage(w, page)
}

func (p *Pages) clusterChart(records []explorer.Record, res int) *charts.Scatter {
	clusters, err := explorer.Clusterize(records, res)
	if err != nil {
		p.logger.Warn("clustering failed", "res", res, "error", err)
		return nil
	}
	maxCount := 1
	pts := make([]opts.ScatterData, 0, len(clusters))
	for _, c := range clusters {
		if c.Count > maxCount {
			maxCount = c.Count
		}
		pts = append(pts, opts.ScatterData{Name: c.Cell, Value: []interface{}{c.Lon, c.Lat, c.Count}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Regional Clusters", Subtitle: fmt.Sprintf("resolution %d, %d cells", res, len(clusters))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 68, Max: 98, Name: "longitude"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 6, Max: 38, Name: "latitude"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#fde9c8", "#e8a44b", "#9c3b1e"}},
		}),
	)
	scatter.AddSeries("clusters", pts, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 16}))
	return scatter
}

// clusterRes parses the res query param, clamped to the configured bounds.
func (p *Pages) clusterRes(raw string) int {
	res := p.cfg.ClusterRes
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			res = v
		}
	}
	if res < p.cfg.ClusterResMin {
		res = p.cfg.ClusterResMin
	}
	if res > p.cfg.ClusterResMax {
		res = p.cfg.ClusterResMax
	}
	return res
}
