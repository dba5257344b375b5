package dashboard

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ArtForms serves the Traditional Art Forms page: popularity by category and
// the geographic spread of each form.
func (p *Pages) ArtForms(w http.ResponseWriter, r *http.Request) {
	arts := p.catalog.ArtForms()

	sum := map[string]int{}
	count := map[string]int{}
	var categories []string
	for _, a := range arts {
		if _, seen := sum[a.Category]; !seen {
			categories = append(categories, a.Category)
		}
		sum[a.Category] += a.Popularity
		count[a.Category]++
	}
	sort.Strings(categories)

	avg := make([]opts.BarData, 0, len(categories))
	for _, c := range categories {
		avg = append(avg, opts.BarData{Value: float64(sum[c]) / float64(count[c])})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Traditional Art Forms"}),
		charts.WithTitleOpts(opts.Title{Title: "Traditional Art Forms", Subtitle: fmt.Sprintf("%d forms across %d categories", len(arts), len(categories))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(categories).AddSeries("avg popularity", avg,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	maxPop := 1
	pts := make([]opts.ScatterData, 0, len(arts))
	for _, a := range arts {
		if a.Popularity > maxPop {
			maxPop = a.Popularity
		}
		pts = append(pts, opts.ScatterData{Name: a.Name, Value: []interface{}{a.Lon, a.Lat, a.Popularity}})
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Where the Art Forms Live"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 68, Max: 98, Name: "longitude"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 6, Max: 38, Name: "latitude"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxPop),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#d5e3ee", "#2e6f95", "#173a52"}},
		}),
	)
	scatter.AddSeries("art forms", pts, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 9}))

	page := components.NewPage()
	page.AddCharts(bar, scatter)
	p.renderPage(w, page)
}

// HeritageSites serves the Cultural Heritage Sites page.
func (p *Pages) HeritageSites(w http.ResponseWriter, r *http.Request) {
	sites := p.catalog.HeritageSites()

	maxVisitors := 1
	pts := make([]opts.ScatterData, 0, len(sites))
	for _, s := range sites {
		if s.Visitors > maxVisitors {
			maxVisitors = s.Visitors
		}
		pts = append(pts, opts.ScatterData{Name: s.Name, Value: []interface{}{s.Lon, s.Lat, s.Visitors}})
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Cultural Heritage Sites"}),
		charts.WithTitleOpts(opts.Title{Title: "UNESCO and National Heritage Sites", Subtitle: fmt.Sprintf("%d sites, colored by annual visitors", len(sites))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 68, Max: 98, Name: "longitude"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 6, Max: 38, Name: "latitude"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxVisitors),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#f3e0d3", "#c96f3f", "#6e2410"}},
		}),
	)
	scatter.AddSeries("heritage sites", pts, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	byType := map[string]int{}
	for _, s := range sites {
		byType[s.Type]++
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)
	slices := make([]opts.PieData, 0, len(types))
	for _, t := range types {
		slices = append(slices, opts.PieData{Name: t, Value: byType[t]})
	}
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sites by Type"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("type", slices)

	page := components.NewPage()
	page.AddCharts(scatter, pie)
	p.renderPage(w, page)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// monthOrder fixes the calendar axis; multi-month and rotational entries are
// charted under their stated label at the end.
var monthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Events serves the Cultural Events Calendar page.
func (p *Pages) Events(w http.ResponseWriter, r *http.Request) {
	events := p.catalog.CulturalEvents()

	perMonth := map[string]int{}
	var other []string
	seenOther := map[string]bool{}
	for _, e := range events {
		matched := false
		for _, m := range monthOrder {
			if containsFold(e.Month, m) {
				perMonth[m]++
				matched = true
			}
		}
		if !matched && !seenOther[e.Month] {
			seenOther[e.Month] = true
			other = append(other, e.Month)
		}
	}
	sort.Strings(other)

	axis := append(append([]string{}, monthOrder...), other...)
	counts := make([]opts.BarData, 0, len(axis))
	for _, m := range monthOrder {
		counts = append(counts, opts.BarData{Value: perMonth[m]})
	}
	for _, m := range other {
		n := 0
		for _, e := range events {
			if e.Month == m {
				n++
			}
		}
		counts = append(counts, opts.BarData{Value: n})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Cultural Events Calendar"}),
		charts.WithTitleOpts(opts.Title{Title: "Cultural Events Through the Year", Subtitle: fmt.Sprintf("%d festivals and fairs", len(events))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(axis).AddSeries("events", counts)

	pts := make([]opts.ScatterData, 0, len(events))
	for _, e := range events {
		pts = append(pts, opts.ScatterData{Name: e.Name, Value: []interface{}{e.Significance, e.Visitors}})
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Significance vs Estimated Visitors"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "cultural significance"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "visitors"}),
	)
	scatter.AddSeries("events", pts, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))

	page := components.NewPage()
	page.AddCharts(bar, scatter)
	p.renderPage(w, page)
}
