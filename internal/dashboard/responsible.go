package dashboard

import (
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Responsible serves the Responsible Tourism page: eco-tourism scores per
// state with the four component dimensions broken out.
func (p *Pages) Responsible(w http.ResponseWriter, r *http.Request) {
	rows := p.catalog.ResponsibleTourism()
	sorted := append(rows[:0:0], rows...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Overall > sorted[j].Overall })

	states := make([]string, 0, len(sorted))
	overall := make([]opts.BarData, 0, len(sorted))
	eco := make([]opts.BarData, 0, len(sorted))
	community := make([]opts.BarData, 0, len(sorted))
	sustainable := make([]opts.BarData, 0, len(sorted))
	preservation := make([]opts.BarData, 0, len(sorted))
	for _, row := range sorted {
		states = append(states, row.State)
		overall = append(overall, opts.BarData{Value: row.Overall})
		eco = append(eco, opts.BarData{Value: row.EcoScore})
		community = append(community, opts.BarData{Value: row.CommunityInvolvement})
		sustainable = append(sustainable, opts.BarData{Value: row.SustainablePractices})
		preservation = append(preservation, opts.BarData{Value: row.CulturalPreservation})
	}

	ranking := charts.NewBar()
	ranking.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Responsible Tourism"}),
		charts.WithTitleOpts(opts.Title{Title: "Responsible Tourism Ranking", Subtitle: "overall score"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 35}}),
	)
	ranking.SetXAxis(states).AddSeries("overall", overall,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	breakdown := charts.NewBar()
	breakdown.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Score Components"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 35}}),
	)
	breakdown.SetXAxis(states).
		AddSeries("eco tourism", eco).
		AddSeries("community involvement", community).
		AddSeries("sustainable practices", sustainable).
		AddSeries("cultural preservation", preservation)

	page := components.NewPage()
	page.AddCharts(ranking, breakdown)
	p.renderPage(w, page)
}
