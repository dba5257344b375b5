package dashboard

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/priyank-sharma/bharat-explorer/internal/dataset"
)

// Economy serves the Cultural Economy page: scheme funding across fiscal
// years, handicraft export trends and craft revenue.
func (p *Pages) Economy(w http.ResponseWriter, r *http.Request) {
	page := components.NewPage()
	page.AddCharts(
		fundingLines(p.catalog.CulturalFunding()),
		exportsLine(p.catalog.HandicraftExports()),
		craftRevenueBar(p.catalog.Crafts()),
	)
	p.renderPage(w, page)
}

func fundingLines(rows []dataset.FundingRow) *charts.Line {
	years := []string{"2019-20", "2020-21", "2021-22", "2022-23"}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Cultural Economy"}),
		charts.WithTitleOpts(opts.Title{Title: "Cultural Scheme Expenditure (crore)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(years)
	for _, row := range rows {
		line.AddSeries(row.Scheme, []opts.LineData{
			{Value: row.FY2020}, {Value: row.FY2021}, {Value: row.FY2022}, {Value: row.FY2023},
		})
	}
	return line
}

func exportsLine(rows []dataset.ExportRow) *charts.Line {
	years := make([]string, 0, len(rows))
	totals := make([]opts.LineData, 0, len(rows))
	carpets := make([]opts.LineData, 0, len(rows))
	for _, row := range rows {
		years = append(years, strconv.Itoa(row.Year))
		totals = append(totals, opts.LineData{Value: row.Total})
		carpets = append(carpets, opts.LineData{Value: row.HandmadeCarpets})
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Handicraft Exports (crore)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(years).
		AddSeries("total", totals).
		AddSeries("handmade carpets", carpets)
	return line
}

func craftRevenueBar(crafts []dataset.Craft) *charts.Bar {
	sorted := append([]dataset.Craft{}, crafts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RevenueCr > sorted[j].RevenueCr })
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}
	names := make([]string, 0, len(sorted))
	revenue := make([]opts.BarData, 0, len(sorted))
	for _, c := range sorted {
		names = append(names, c.Name)
		revenue = append(revenue, opts.BarData{Value: c.RevenueCr})
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top Crafts by Annual Revenue (crore)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 35}}),
	)
	bar.SetXAxis(names).AddSeries("revenue", revenue)
	return bar
}
