// Package render presents clustering results: an interactive HTML page, a
// PNG elbow plot, a terminal graph and a summary table. Results are only
// read, never modified.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"kmeanselbow/internal/kmeans"
	"kmeanselbow/internal/sweep"
)

// Page describes one HTML report.
type Page struct {
	Title    string
	Subtitle string
	Points   kmeans.PointSet
	// Selected is the clustering drawn on the scatter plot. With no labels
	// the raw points are drawn.
	Selected kmeans.Result
	Sweep    *sweep.Result
	// EveryK adds a scatter plot for each k in Sweep below the elbow curve.
	EveryK bool
}

// WriteHTML renders the cluster scatter plot and the elbow curve to w.
func WriteHTML(w io.Writer, p Page) error {
	page := components.NewPage()
	page.PageTitle = p.Title
	page.AddCharts(clusterScatter(p.Title, p.Subtitle, p.Points, p.Selected))
	if p.Sweep != nil && p.Sweep.Len() > 0 {
		page.AddCharts(elbowLine(p))
		if p.EveryK {
			for _, k := range p.Sweep.Ks() {
				run, _ := p.Sweep.At(k)
				page.AddCharts(clusterScatter(fmt.Sprintf("k=%d", k),
					fmt.Sprintf("inertia=%.4f", run.Inertia), p.Points, run))
			}
		}
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func clusterScatter(title, subtitle string, points kmeans.PointSet, res kmeans.Result) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y", NameLocation: "middle", NameGap: 30}),
	)

	if len(res.Labels) != len(points) || len(points) == 0 {
		raw := make([]opts.ScatterData, 0, len(points))
		for _, pt := range points {
			raw = append(raw, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
		}
		scatter.AddSeries("points", raw, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
		return scatter
	}

	clusterData := make([][]opts.ScatterData, res.K())
	for i, pt := range points {
		l := res.Labels[i]
		clusterData[l] = append(clusterData[l], opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
	}
	for j, data := range clusterData {
		scatter.AddSeries(fmt.Sprintf("cluster %d", j), data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false), Position: "top"}),
		)
	}

	centroids := make([]opts.ScatterData, 0, len(res.Centroids))
	for _, c := range res.Centroids {
		centroids = append(centroids, opts.ScatterData{Value: []interface{}{c.X, c.Y}, Symbol: "diamond", SymbolSize: 14})
	}
	scatter.AddSeries("centroids", centroids)
	return scatter
}

func elbowLine(p Page) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Elbow", Subtitle: elbowSubtitle(p.Sweep)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "k", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "inertia"}),
	)

	data := make([]opts.LineData, 0, p.Sweep.Len())
	for _, y := range p.Sweep.Inertias() {
		data = append(data, opts.LineData{Value: y})
	}
	line.SetXAxis(p.Sweep.Ks()).
		AddSeries("inertia", data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	return line
}

func elbowSubtitle(sr *sweep.Result) string {
	if k, ok := sr.Elbow(); ok {
		return fmt.Sprintf("k=1..%d, elbow at k=%d", sr.MaxK(), k)
	}
	return fmt.Sprintf("k=1..%d", sr.MaxK())
}
