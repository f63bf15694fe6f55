// Package report assembles the analysis results into a self-contained
// HTML document.
package report

import (
	"time"

	"cognia/internal/analysis/corr"
	"cognia/internal/analysis/interpret"
	"cognia/internal/analysis/visual"
	"cognia/internal/stats"
)

// Options carries the per-run analysis knobs. Zero values fall back to
// the engine defaults. CorrThreshold is a pointer so a deliberate 0
// (keep every pair) is distinguishable from unset.
type Options struct {
	CorrThreshold       *float64
	CorrTopN            int
	HeatmapInlineLimit  int
	ShowFullCorrelation bool
	OutlierMultiplier   float64
	HistogramBins       int
	CategoryTopN        int
	MissingAlertPct     float64
	OutlierAlertPct     float64
	CategoricalLevels   int
}

func (o Options) withDefaults() Options {
	if o.CorrThreshold == nil {
		def := corr.DefaultThreshold
		o.CorrThreshold = &def
	}
	if o.CorrTopN == 0 {
		o.CorrTopN = corr.DefaultTopN
	}
	if o.HeatmapInlineLimit == 0 {
		o.HeatmapInlineLimit = 10
	}
	if o.OutlierMultiplier == 0 {
		o.OutlierMultiplier = stats.DefaultIQRMultiplier
	}
	if o.HistogramBins == 0 {
		o.HistogramBins = 30
	}
	if o.CategoryTopN == 0 {
		o.CategoryTopN = 10
	}
	return o
}

// ColumnOverview is one row of the dataset overview table.
type ColumnOverview struct {
	Name    string
	Kind    string
	Missing int
	Unique  int
}

// DataQuality summarizes dataset-level quality figures.
type DataQuality struct {
	DuplicateRecords int
	DuplicatePercent float64
	NumericCount     int
	CategoricalCount int
}

// CorrelationSection is the gated correlation block: an inline heatmap
// for small matrices, otherwise a ranked pair table with an optional
// collapsible heatmap.
type CorrelationSection struct {
	Pairs       []corr.Pair
	Heatmap     visual.ImageResult
	Inline      bool
	Collapsible bool
}

// Chart pairs a column name with its rendered image.
type Chart struct {
	Column string
	Image  visual.ImageResult
}

// Report is the fully assembled analysis result.
type Report struct {
	Dataset     string
	GeneratedAt time.Time
	Rows        int
	Columns     int

	Overview        []ColumnOverview
	Quality         DataQuality
	Missing         []stats.MissingInfo
	Summaries       []stats.Summary
	Interpretations []interpret.Interpretation
	Outliers        []stats.OutlierInfo
	Alerts          []string
	Correlation     CorrelationSection
	CategoryCharts  []Chart
	NumericCharts   []Chart

	// ChartsSkipped is set when no renderer was available; the HTML
	// shows a placeholder note instead of chart sections.
	ChartsSkipped bool
}
