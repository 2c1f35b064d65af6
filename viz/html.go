package viz

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/TrevorS/agglo"
)

// RenderHTML writes a self-contained go-echarts page with one scatter
// series per cluster and one for the centroids.
func RenderHTML(w io.Writer, res *agglo.Result, o Options) error {
	o = o.withDefaults()
	all, err := collect(res)
	if err != nil {
		return err
	}

	total := 0
	for _, s := range all {
		total += len(s.points)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     fmt.Sprintf("%dpx", o.Width),
			Height:    fmt.Sprintf("%dpx", o.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: fmt.Sprintf("points=%d clusters=%d", total, len(all))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y", NameLocation: "middle", NameGap: 30}),
	)

	centroids := make([]opts.ScatterData, 0, len(all))
	for _, s := range all {
		data := make([]opts.ScatterData, 0, len(s.points))
		for _, p := range s.points {
			data = append(data, opts.ScatterData{Value: []interface{}{p[0], p[1]}})
		}
		scatter.AddSeries(s.name, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
		centroids = append(centroids, opts.ScatterData{Value: []interface{}{s.centroid[0], s.centroid[1]}})
	}
	scatter.AddSeries("centroids", centroids, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
