package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cognia/internal/analysis/visual/visualtest"
	"cognia/internal/app"
	"cognia/internal/config"
)

func newService(t *testing.T) *app.App {
	t.Helper()
	cfg := config.Default()
	cfg.Render.Disabled = true
	cfg.Store.Enabled = false
	cfg.Profiles.Path = ""
	service, err := app.New(context.Background(), cfg, app.WithRenderer(visualtest.NewStubRenderer()))
	require.NoError(t, err)
	return service
}

func TestWatcherRegeneratesReport(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	w, err := New(newService(t), dir, outDir, "", 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// let the watcher register before writing
	time.Sleep(100 * time.Millisecond)
	csv := filepath.Join(dir, "metrics.csv")
	require.NoError(t, os.WriteFile(csv, []byte("a,b\n1,2\n3,4\n5,6\n"), 0o644))

	want := filepath.Join(outDir, "metrics_report.html")
	require.Eventually(t, func() bool {
		_, err := os.Stat(want)
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherIgnoresNonDatasets(t *testing.T) {
	dir := t.TempDir()
	w, err := New(newService(t), dir, dir, "", 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))
	time.Sleep(200 * time.Millisecond)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.NotContains(t, e.Name(), "_report.html")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherValidation(t *testing.T) {
	_, err := New(nil, "x", "", "", 0)
	require.Error(t, err)
	_, err = New(newService(t), "", "", "", 0)
	require.Error(t, err)
}

func TestOutputForDefaultsNextToDataset(t *testing.T) {
	w, err := New(newService(t), "/data", "", "", 0)
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/data", "sales_report.html"), w.outputFor("/data/sales.csv"))
}
