package dashboard

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/priyank-sharma/bharat-explorer/internal/dataset"
	"github.com/priyank-sharma/bharat-explorer/internal/warehouse"
)

// Tourism serves the Tourism Analytics page. Reference-dataset charts always
// render; warehouse charts are appended when the warehouse loads, and a
// degraded load surfaces its warning in the page subtitle.
func (p *Pages) Tourism(w http.ResponseWriter, r *http.Request) {
	foreign := p.catalog.ForeignTourism()
	domestic := p.catalog.DomesticTourism()
	seasonal := p.catalog.SeasonalIndex()

	var tables warehouse.Tables
	if p.warehouse != nil {
		tables = p.warehouse.Load(r.Context())
	}

	subtitle := "foreign and domestic tourist visits, 2022"
	if tables.Warning != "" {
		subtitle = tables.Warning
	}

	page := components.NewPage()
	page.AddCharts(
		topStatesBar("Foreign Tourist Visits", subtitle, foreign),
		domesticBar(domestic),
		seasonalLines(seasonal),
	)
	if !tables.Empty() {
		page.AddCharts(warehouseCharts(tables)...)
	}
	p.renderPage(w, page)
}

func topStatesBar(title, subtitle string, rows []dataset.ForeignTourismRow) *charts.Bar {
	sorted := append([]dataset.ForeignTourismRow{}, rows...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Visits > sorted[j].Visits })
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}
	states := make([]string, 0, len(sorted))
	visits := make([]opts.BarData, 0, len(sorted))
	for _, row := range sorted {
		states = append(states, row.StateUT)
		visits = append(visits, opts.BarData{Value: row.Visits})
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Tourism Analytics"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 35}}),
	)
	bar.SetXAxis(states).AddSeries("visits", visits)
	return bar
}

func domesticBar(rows []dataset.DomesticTourismRow) *charts.Bar {
	sorted := append([]dataset.DomesticTourismRow{}, rows...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].VisitsMillions > sorted[j].VisitsMillions })
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}
	states := make([]string, 0, len(sorted))
	visits := make([]opts.BarData, 0, len(sorted))
	for _, row := range sorted {
		states = append(states, row.StateUT)
		visits = append(visits, opts.BarData{Value: row.VisitsMillions})
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Domestic Tourist Visits (millions)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 35}}),
	)
	bar.SetXAxis(states).AddSeries("visits (mn)", visits)
	return bar
}

// seasonalLines plots one line per region across the twelve months.
func seasonalLines(rows []dataset.SeasonalIndexRow) *charts.Line {
	months := make([]string, 0, 12)
	seen := map[string]bool{}
	byRegion := map[string][]opts.LineData{}
	var regions []string
	for _, row := range rows {
		if !seen[row.Month] {
			seen[row.Month] = true
			months = append(months, row.Month)
		}
		if _, ok := byRegion[row.Region]; !ok {
			regions = append(regions, row.Region)
		}
		byRegion[row.Region] = append(byRegion[row.Region], opts.LineData{Value: row.Index})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Seasonal Tourism Index by Region"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(months)
	for _, region := range regions {
		line.AddSeries(region, byRegion[region], charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}
	return line
}

func warehouseCharts(t warehouse.Tables) []components.Charter {
	var out []components.Charter

	if len(t.Budget) > 0 {
		years := make([]string, 0, len(t.Budget))
		alloc := make([]opts.LineData, 0, len(t.Budget))
		spent := make([]opts.LineData, 0, len(t.Budget))
		for _, b := range t.Budget {
			years = append(years, b.Year)
			alloc = append(alloc, opts.LineData{Value: b.Allocation})
			spent = append(spent, opts.LineData{Value: b.Expenditure})
		}
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Ministry of Tourism Budget (warehouse)"}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		)
		line.SetXAxis(years).
			AddSeries("allocation", alloc).
			AddSeries("expenditure", spent)
		out = append(out, line)
	}

	if len(t.ASIVisitors) > 0 {
		years := make([]string, 0, len(t.ASIVisitors))
		domestic := make([]opts.BarData, 0, len(t.ASIVisitors))
		foreign := make([]opts.BarData, 0, len(t.ASIVisitors))
		for _, v := range t.ASIVisitors {
			years = append(years, v.Year)
			domestic = append(domestic, opts.BarData{Value: v.Domestic})
			foreign = append(foreign, opts.BarData{Value: v.Foreign})
		}
		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "ASI Monument Visitors (warehouse)"}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		)
		bar.SetXAxis(years).
			AddSeries("domestic", domestic).
			AddSeries("foreign", foreign)
		out = append(out, bar)
	}

	if len(t.GIByYear) > 0 {
		years := make([]string, 0, len(t.GIByYear))
		apps := make([]opts.BarData, 0, len(t.GIByYear))
		for _, g := range t.GIByYear {
			years = append(years, g.Year)
			apps = append(apps, opts.BarData{Value: g.Applications})
		}
		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "GI Applications by Year (warehouse)", Subtitle: fmt.Sprintf("%d years", len(years))}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		)
		bar.SetXAxis(years).AddSeries("applications", apps)
		out = append(out, bar)
	}

	return out
}
