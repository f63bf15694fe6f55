// Package app wires configuration, rendering, storage and profiles
// into the analysis service used by the CLI and the HTTP server.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"cognia/internal/analysis/visual"
	"cognia/internal/config"
	"cognia/internal/dataset"
	"cognia/internal/logger"
	"cognia/internal/profile"
	"cognia/internal/report"
	"cognia/internal/store"
)

// App is the analysis service.
type App struct {
	cfg      *config.Config
	renderer visual.Renderer
	runs     *store.Store
	profiles *profile.Registry
}

// Option overrides a default collaborator, mainly for tests.
type Option func(*App)

// WithRenderer replaces the chart renderer.
func WithRenderer(r visual.Renderer) Option {
	return func(a *App) { a.renderer = r }
}

// WithStore replaces the run-history store.
func WithStore(s *store.Store) Option {
	return func(a *App) { a.runs = s }
}

// New builds the service from config. A missing headless browser or an
// absent profiles file degrade with a warning; a broken store is an
// error since it was explicitly enabled.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}

	if a.renderer == nil && !cfg.Render.Disabled {
		renderer, err := visual.NewChromeRenderer(ctx, time.Duration(cfg.Render.TimeoutSeconds)*time.Second)
		if err != nil {
			logger.Warnf("chart rendering disabled: %v", err)
		} else {
			a.renderer = renderer
		}
	}

	if a.runs == nil && cfg.Store.Enabled {
		runs, err := store.Open(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open run store: %w", err)
		}
		a.runs = runs
	}

	if cfg.Profiles.Path != "" {
		if _, err := os.Stat(cfg.Profiles.Path); err == nil {
			registry, err := profile.NewRegistry(cfg.Profiles.Path, cfg.Profiles.Watch)
			if err != nil {
				return nil, fmt.Errorf("load profiles: %w", err)
			}
			a.profiles = registry
		} else {
			logger.Debugf("profiles file %s not found, using config thresholds", cfg.Profiles.Path)
		}
	}
	return a, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a.runs != nil {
		return a.runs.Close()
	}
	return nil
}

// Runs exposes the run-history store; nil when disabled.
func (a *App) Runs() *store.Store { return a.runs }

// AnalyzeRequest names a dataset and where the report goes.
type AnalyzeRequest struct {
	Input   string
	Output  string
	Profile string
	// ShowFullCorrelation forces the collapsible heatmap for wide
	// datasets regardless of config.
	ShowFullCorrelation bool
}

// AnalyzeResult reports where the document landed.
type AnalyzeResult struct {
	RunID      string
	OutputPath string
	Rows       int
	Columns    int
	Alerts     []string
}

// Analyze loads the dataset, runs the full analysis and writes the
// HTML report. When the run store is enabled every run is recorded,
// failures included.
func (a *App) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	started := time.Now()
	runID := uuid.NewString()

	frame, err := dataset.Load(req.Input)
	if err != nil {
		a.recordFailure(runID, req.Input, err)
		return nil, err
	}

	opts := a.resolveOptions(req)
	rep, err := report.Build(ctx, frame, opts, a.renderer)
	if err != nil {
		a.recordFailure(runID, req.Input, err)
		return nil, err
	}
	path, err := report.WriteHTML(rep, req.Output)
	if err != nil {
		a.recordFailure(runID, req.Input, err)
		return nil, err
	}

	a.recordSuccess(runID, frame, rep, path)
	logger.InfoBlock(runSummary(frame, rep, path, time.Since(started)))

	return &AnalyzeResult{
		RunID:      runID,
		OutputPath: path,
		Rows:       rep.Rows,
		Columns:    rep.Columns,
		Alerts:     rep.Alerts,
	}, nil
}

// runSummary formats the multi-line completion log, one alert per line.
func runSummary(frame *dataset.Frame, rep *report.Report, path string, elapsed time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "analyzed %s: %d rows, %d columns (%d numeric, %d categorical) in %s\n",
		frame.Name, rep.Rows, rep.Columns, rep.Quality.NumericCount, rep.Quality.CategoricalCount,
		elapsed.Round(time.Millisecond))
	fmt.Fprintf(&b, "report written to %s\n", path)
	for _, alert := range rep.Alerts {
		fmt.Fprintf(&b, "alert: %s\n", alert)
	}
	return b.String()
}

func (a *App) resolveOptions(req AnalyzeRequest) report.Options {
	ac := a.cfg.Analysis
	threshold := ac.CorrThreshold
	opts := report.Options{
		CorrThreshold:       &threshold,
		CorrTopN:            ac.CorrTopN,
		HeatmapInlineLimit:  ac.HeatmapInlineLimit,
		ShowFullCorrelation: ac.ShowFullCorrelation || req.ShowFullCorrelation,
		OutlierMultiplier:   ac.OutlierMultiplier,
		HistogramBins:       ac.HistogramBins,
		CategoryTopN:        ac.CategoryTopN,
		MissingAlertPct:     ac.MissingAlertPct,
		OutlierAlertPct:     ac.OutlierAlertPct,
		CategoricalLevels:   ac.CategoricalLevels,
	}
	if req.Profile == "" || a.profiles == nil {
		return opts
	}
	p, ok := a.profiles.Profile(req.Profile)
	if !ok {
		logger.Warnf("profile %q not found, using config thresholds", req.Profile)
		return opts
	}
	if p.CorrThreshold > 0 {
		override := p.CorrThreshold
		opts.CorrThreshold = &override
	}
	if p.CorrTopN > 0 {
		opts.CorrTopN = p.CorrTopN
	}
	if p.OutlierMultiplier > 0 {
		opts.OutlierMultiplier = p.OutlierMultiplier
	}
	if p.MissingAlertPct > 0 {
		opts.MissingAlertPct = p.MissingAlertPct
	}
	if p.OutlierAlertPct > 0 {
		opts.OutlierAlertPct = p.OutlierAlertPct
	}
	if p.CategoricalLevels > 0 {
		opts.CategoricalLevels = p.CategoricalLevels
	}
	if p.ShowFullCorrelation {
		opts.ShowFullCorrelation = true
	}
	return opts
}

func (a *App) recordFailure(runID, input string, cause error) {
	if a.runs == nil {
		return
	}
	run := &store.ReportRun{
		ID:      runID,
		Dataset: input,
		Status:  store.StatusFailed,
		Message: cause.Error(),
	}
	if err := a.runs.Save(run); err != nil {
		logger.Errorf("record failed run: %v", err)
	}
}

func (a *App) recordSuccess(runID string, frame *dataset.Frame, rep *report.Report, path string) {
	if a.runs == nil {
		return
	}
	alerts, err := store.MarshalAlerts(rep.Alerts)
	if err != nil {
		logger.Errorf("encode alerts: %v", err)
		alerts = []byte("[]")
	}
	run := &store.ReportRun{
		ID:               runID,
		Dataset:          frame.Name,
		Status:           store.StatusCompleted,
		Rows:             rep.Rows,
		Columns:          rep.Columns,
		NumericColumns:   rep.Quality.NumericCount,
		CategoricalCols:  rep.Quality.CategoricalCount,
		DuplicateRecords: rep.Quality.DuplicateRecords,
		OutputPath:       path,
		Alerts:           alerts,
	}
	if err := a.runs.Save(run); err != nil {
		logger.Errorf("record run: %v", err)
	}
}
