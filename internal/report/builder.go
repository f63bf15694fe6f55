package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"cognia/internal/alert"
	"cognia/internal/analysis/corr"
	"cognia/internal/analysis/interpret"
	"cognia/internal/analysis/visual"
	"cognia/internal/dataset"
	"cognia/internal/logger"
	"cognia/internal/stats"
)

// chart renders run concurrently but bounded; each one spawns a
// browser context.
const renderConcurrency = 3

// Build runs the full analysis over the frame and assembles the
// report. renderer may be nil, in which case chart sections degrade to
// placeholders and the report is still produced.
func Build(ctx context.Context, frame *dataset.Frame, opts Options, renderer visual.Renderer) (*Report, error) {
	if frame == nil {
		return nil, fmt.Errorf("report: frame is nil")
	}
	opts = opts.withDefaults()

	summaries := stats.Describe(frame)
	missing := stats.MissingTable(frame)
	outliers := stats.Outliers(frame, opts.OutlierMultiplier)
	interpretations := interpret.Interpret(stats.Shapes(frame))

	matrix, err := stats.Correlation(frame)
	if err != nil {
		return nil, fmt.Errorf("correlation: %w", err)
	}

	rep := &Report{
		Dataset:         frame.Name,
		GeneratedAt:     time.Now(),
		Rows:            frame.Rows(),
		Columns:         len(frame.Columns),
		Overview:        buildOverview(frame),
		Quality:         buildQuality(frame),
		Missing:         missing,
		Summaries:       summaries,
		Interpretations: interpretations,
		Outliers:        outliers,
		Alerts: alert.Generate(alert.Input{
			Frame:     frame,
			Summaries: summaries,
			Outliers:  outliers,
			Missing:   missing,
			Limits: alert.Limits{
				MissingPercent:    opts.MissingAlertPct,
				OutlierPercent:    opts.OutlierAlertPct,
				CategoricalLevels: opts.CategoricalLevels,
			},
		}),
		Correlation: buildCorrelationSection(matrix, opts),
	}

	if renderer == nil {
		rep.ChartsSkipped = true
		return rep, nil
	}
	if err := renderCharts(ctx, frame, matrix, opts, renderer, rep); err != nil {
		// the analysis tables still stand without charts
		logger.Warnf("chart rendering failed, continuing without charts: %v", err)
		rep.ChartsSkipped = true
		rep.CategoryCharts = nil
		rep.NumericCharts = nil
		rep.Correlation.Heatmap = visual.ImageResult{}
	}
	return rep, nil
}

func buildOverview(frame *dataset.Frame) []ColumnOverview {
	out := make([]ColumnOverview, 0, len(frame.Columns))
	for i := range frame.Columns {
		col := &frame.Columns[i]
		out = append(out, ColumnOverview{
			Name:    col.Name,
			Kind:    string(col.Kind),
			Missing: len(col.Cells) - col.NonMissing(),
			Unique:  col.Unique(),
		})
	}
	return out
}

func buildQuality(frame *dataset.Frame) DataQuality {
	q := DataQuality{
		DuplicateRecords: frame.DuplicateRows(),
		NumericCount:     len(frame.NumericColumns()),
		CategoricalCount: len(frame.CategoricalColumns()),
	}
	if frame.Rows() > 0 {
		q.DuplicatePercent = float64(q.DuplicateRecords) / float64(frame.Rows()) * 100
	}
	return q
}

func buildCorrelationSection(matrix corr.Matrix, opts Options) CorrelationSection {
	section := CorrelationSection{}
	if matrix.Len() <= opts.HeatmapInlineLimit {
		section.Inline = true
		return section
	}
	section.Pairs = corr.RankPairs(matrix, *opts.CorrThreshold, opts.CorrTopN)
	section.Collapsible = opts.ShowFullCorrelation
	return section
}

func renderCharts(ctx context.Context, frame *dataset.Frame, matrix corr.Matrix, opts Options, renderer visual.Renderer, rep *Report) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(renderConcurrency)

	var mu sync.Mutex

	if rep.Correlation.Inline || rep.Correlation.Collapsible {
		g.Go(func() error {
			labels, grid := matrix.HeatmapGrid()
			img, err := renderer.Heatmap(gctx, labels, grid)
			if err != nil {
				return fmt.Errorf("heatmap: %w", err)
			}
			mu.Lock()
			rep.Correlation.Heatmap = img
			mu.Unlock()
			return nil
		})
	}

	catCharts := make([]Chart, len(frame.CategoricalColumns()))
	for i, col := range frame.CategoricalColumns() {
		i, col := i, col
		g.Go(func() error {
			counts := col.ValueCounts()
			if len(counts) > opts.CategoryTopN {
				counts = counts[:opts.CategoryTopN]
			}
			values := make([]string, len(counts))
			nums := make([]int, len(counts))
			for k, vc := range counts {
				values[k] = vc.Value
				nums[k] = vc.Count
			}
			img, err := renderer.CategoryBars(gctx, col.Name, values, nums)
			if err != nil {
				return fmt.Errorf("category chart %s: %w", col.Name, err)
			}
			catCharts[i] = Chart{Column: col.Name, Image: img}
			return nil
		})
	}

	numCharts := make([]Chart, len(frame.NumericColumns()))
	for i, col := range frame.NumericColumns() {
		i, col := i, col
		g.Go(func() error {
			img, err := renderer.Histogram(gctx, col.Name, col.Values(), opts.HistogramBins)
			if err != nil {
				return fmt.Errorf("histogram %s: %w", col.Name, err)
			}
			numCharts[i] = Chart{Column: col.Name, Image: img}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	rep.CategoryCharts = withoutEmpty(catCharts)
	rep.NumericCharts = withoutEmpty(numCharts)
	return nil
}

func withoutEmpty(charts []Chart) []Chart {
	out := charts[:0]
	for _, c := range charts {
		if !c.Image.Empty() {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
