package visual

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// buildHeatmapChart lays the full correlation grid out as an echarts
// heatmap: axis labels in matrix order, a continuous color scale over
// the coefficient's natural [-1, 1] range, legend via the visual map.
// NaN cells (undefined correlation) are left blank.
func buildHeatmapChart(labels []string, grid [][]float64) *charts.HeatMap {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           fmt.Sprintf("%dpx", chartWidthPx),
			Height:          fmt.Sprintf("%dpx", chartHeightPx),
			BackgroundColor: colorBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      "Full Correlation Heatmap",
			Left:       "center",
			TitleStyle: &opts.TextStyle{Color: colorTextPrimary, FontSize: 16},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			AxisLabel: &opts.AxisLabel{Color: colorTextSecond, Rotate: 45},
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      labels,
			AxisLabel: &opts.AxisLabel{Color: colorTextSecond},
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			Orient:     "horizontal",
			Left:       "center",
			Bottom:     "0",
			InRange: &opts.VisualMapInRange{
				Color: []string{colorHeatNegative, colorHeatNeutral, colorHeatPositive},
			},
		}),
	)
	data := make([]opts.HeatMapData, 0, len(labels)*len(labels))
	for y, row := range grid {
		for x, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, "-"}})
				continue
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, round(v, 3)}})
		}
	}
	hm.SetXAxis(labels)
	hm.AddSeries("correlation", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(len(labels) <= 12), Color: colorTextPrimary}),
	)
	return hm
}

// buildCategoryBarChart shows the top category counts for one column,
// count labels above each bar.
func buildCategoryBarChart(column string, values []string, counts []int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           fmt.Sprintf("%dpx", chartWidthPx),
			Height:          fmt.Sprintf("%dpx", barHeightPx),
			BackgroundColor: colorBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      fmt.Sprintf("%s – Category Distribution", column),
			Left:       "center",
			TitleStyle: &opts.TextStyle{Color: colorTextPrimary, FontSize: 14},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Color: colorTextSecond, Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Count",
			AxisLabel: &opts.AxisLabel{Color: colorTextSecond},
		}),
	)
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}
	bar.SetXAxis(values)
	bar.AddSeries("count", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top", Color: colorTextPrimary}),
	)
	return bar
}

// buildHistogramChart bins the values and renders the frequencies.
func buildHistogramChart(column string, values []float64, bins int) *charts.Bar {
	if bins <= 0 {
		bins = 30
	}
	edges, counts := histogram(values, bins)
	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i := range counts {
		labels[i] = fmt.Sprintf("%g", round((edges[i]+edges[i+1])/2, 4))
		data[i] = opts.BarData{Value: counts[i]}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           fmt.Sprintf("%dpx", chartWidthPx),
			Height:          fmt.Sprintf("%dpx", barHeightPx),
			BackgroundColor: colorBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      fmt.Sprintf("%s – Distribution", column),
			Left:       "center",
			TitleStyle: &opts.TextStyle{Color: colorTextPrimary, FontSize: 14},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      column,
			AxisLabel: &opts.AxisLabel{Color: colorTextSecond},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Frequency",
			AxisLabel: &opts.AxisLabel{Color: colorTextSecond},
		}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("frequency", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorHistogram, BorderColor: colorTextPrimary}),
		charts.WithBarChartOpts(opts.BarChart{BarGap: "0%"}),
	)
	return bar
}

// histogram splits values into equal-width bins. Returns bin edges
// (len bins+1) and counts (len bins). Empty input yields one empty bin.
func histogram(values []float64, bins int) ([]float64, []int) {
	if len(values) == 0 {
		return []float64{0, 1}, []int{0}
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		// degenerate range: one bin holds everything
		return []float64{lo, lo + 1}, []int{len(values)}
	}
	width := (hi - lo) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi
	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return edges, counts
}

func round(val float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(val)
	}
	scale := math.Pow10(decimals)
	return math.Round(val*scale) / scale
}
