package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.6, cfg.Analysis.CorrThreshold)
	assert.Equal(t, 10, cfg.Analysis.CorrTopN)
	assert.Equal(t, 10, cfg.Analysis.HeatmapInlineLimit)
	assert.Equal(t, 1.5, cfg.Analysis.OutlierMultiplier)
	assert.Equal(t, 30, cfg.Analysis.HistogramBins)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.False(t, cfg.Render.Disabled)
	assert.Equal(t, 20, cfg.Render.TimeoutSeconds)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
app:
  log_level: debug
analysis:
  corr_threshold: 0.8
  corr_top_n: 5
  show_full_correlation: true
render:
  disabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 0.8, cfg.Analysis.CorrThreshold)
	assert.Equal(t, 5, cfg.Analysis.CorrTopN)
	assert.True(t, cfg.Analysis.ShowFullCorrelation)
	assert.True(t, cfg.Render.Disabled)
	// untouched sections keep defaults
	assert.Equal(t, ":9980", cfg.Server.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  corr_threshold: 1.5\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "corr_threshold")
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
