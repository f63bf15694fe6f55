package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cognia/internal/analysis/visual/visualtest"
	"cognia/internal/config"
	"cognia/internal/logger"
	"cognia/internal/store"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Render.Disabled = true
	cfg.Store.Enabled = false
	cfg.Profiles.Path = ""
	return cfg
}

func writeCSV(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestAnalyzeWritesReport(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, "data.csv", "x,y\n1,2\n2,4\n3,6\n4,8\n")
	out := filepath.Join(dir, "out", "report.html")

	service, err := New(context.Background(), testConfig(), WithRenderer(visualtest.NewStubRenderer()))
	require.NoError(t, err)
	defer service.Close()

	result, err := service.Analyze(context.Background(), AnalyzeRequest{Input: input, Output: out})
	require.NoError(t, err)
	require.Equal(t, out, result.OutputPath)
	require.Equal(t, 4, result.Rows)
	require.Equal(t, 2, result.Columns)
	require.FileExists(t, out)
}

func TestAnalyzeRecordsRunHistory(t *testing.T) {
	dir := t.TempDir()
	runs, err := store.Open(filepath.Join(dir, "runs.db"))
	require.NoError(t, err)
	defer runs.Close()

	service, err := New(context.Background(), testConfig(),
		WithRenderer(visualtest.NewStubRenderer()), WithStore(runs))
	require.NoError(t, err)

	input := writeCSV(t, dir, "data.csv", "a,b\n1,1\n2,2\n3,3\n")
	result, err := service.Analyze(context.Background(), AnalyzeRequest{
		Input:  input,
		Output: filepath.Join(dir, "report.html"),
	})
	require.NoError(t, err)

	run, err := runs.Get(result.RunID)
	require.NoError(t, err)
	require.Equal(t, store.StatusCompleted, run.Status)
	require.Equal(t, 3, run.Rows)
	require.Equal(t, 2, run.NumericColumns)

	// a load failure leaves a failed record behind
	_, err = service.Analyze(context.Background(), AnalyzeRequest{Input: filepath.Join(dir, "missing.csv")})
	require.Error(t, err)
	all, err := runs.List(10)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestProfileOverridesThresholds(t *testing.T) {
	dir := t.TempDir()
	profilesPath := filepath.Join(dir, "profiles.yaml")
	require.NoError(t, os.WriteFile(profilesPath, []byte(`profiles:
  strict:
    name: strict
    corr_threshold: 0.9
    corr_top_n: 3
    missing_alert_pct: 5
    show_full_correlation: true
`), 0o644))

	cfg := testConfig()
	cfg.Profiles.Path = profilesPath
	service, err := New(context.Background(), cfg, WithRenderer(visualtest.NewStubRenderer()))
	require.NoError(t, err)

	opts := service.resolveOptions(AnalyzeRequest{Profile: "strict"})
	require.Equal(t, 0.9, *opts.CorrThreshold)
	require.Equal(t, 3, opts.CorrTopN)
	require.Equal(t, 5.0, opts.MissingAlertPct)
	require.True(t, opts.ShowFullCorrelation)
	// untouched knobs keep config values
	require.Equal(t, cfg.Analysis.OutlierMultiplier, opts.OutlierMultiplier)

	// unknown profile falls back to config thresholds
	opts = service.resolveOptions(AnalyzeRequest{Profile: "nope"})
	require.Equal(t, cfg.Analysis.CorrThreshold, *opts.CorrThreshold)
}

func TestAnalyzeLogsRunSummaryWithAlerts(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	dir := t.TempDir()
	// the constant column trips a data-quality alert
	input := writeCSV(t, dir, "data.csv", "x,flat\n1,5\n2,5\n3,5\n4,5\n")

	service, err := New(context.Background(), testConfig(), WithRenderer(visualtest.NewStubRenderer()))
	require.NoError(t, err)

	_, err = service.Analyze(context.Background(), AnalyzeRequest{
		Input:  input,
		Output: filepath.Join(dir, "report.html"),
	})
	require.NoError(t, err)

	logged := buf.String()
	require.Contains(t, logged, "analyzed data.csv")
	require.Contains(t, logged, "4 rows, 2 columns")
	require.Contains(t, logged, "report written to")
	require.Contains(t, logged, "alert:")
	require.Contains(t, logged, "flat")
}

func TestAnalyzeWithoutRendererDegrades(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, "data.csv", "m,n\n1,5\n2,6\n3,7\n")

	service, err := New(context.Background(), testConfig())
	require.NoError(t, err)

	result, err := service.Analyze(context.Background(), AnalyzeRequest{
		Input:  input,
		Output: filepath.Join(dir, "plain.html"),
	})
	require.NoError(t, err)
	require.FileExists(t, result.OutputPath)
}
