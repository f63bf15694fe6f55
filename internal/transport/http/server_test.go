package reporthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cognia/internal/analysis/visual/visualtest"
	"cognia/internal/app"
	"cognia/internal/config"
	"cognia/internal/store"
)

func writeDataset(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sales.csv")
	var b strings.Builder
	b.WriteString("price,qty,region\n")
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "%d,%d,%s\n", 10+i, 100-2*i, []string{"north", "south"}[i%2])
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func newTestServer(t *testing.T) (*Server, *app.App, string) {
	t.Helper()
	dir := t.TempDir()
	runs, err := store.Open(filepath.Join(dir, "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = runs.Close() })

	cfg := config.Default()
	cfg.Render.Disabled = true
	service, err := app.New(context.Background(), cfg,
		app.WithRenderer(visualtest.NewStubRenderer()),
		app.WithStore(runs),
	)
	require.NoError(t, err)

	srv, err := NewServer(ServerConfig{Addr: ":0", Service: service})
	require.NoError(t, err)
	return srv, service, dir
}

func TestHealthz(t *testing.T) {
	srv, _, _ := newTestServer(t)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}

func TestAnalyzeEndpointRecordsRun(t *testing.T) {
	srv, _, dir := newTestServer(t)
	dataPath := writeDataset(t, dir)
	out := filepath.Join(dir, "report.html")

	body := fmt.Sprintf(`{"path":%q,"output":%q}`, dataPath, out)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		RunID  string `json:"run_id"`
		Output string `json:"output"`
		Rows   int    `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.RunID)
	require.Equal(t, 20, resp.Rows)
	require.FileExists(t, resp.Output)

	// the run shows up in the history listing
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/runs", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), resp.RunID)

	// and its report is served back as HTML
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/"+resp.RunID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Contains(t, w.Body.String(), "Correlation Analysis")
}

func TestAnalyzeEndpointRejectsBadRequests(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"path":"no/such/file.csv"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetRunNotFound(t *testing.T) {
	srv, _, _ := newTestServer(t)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/runs/missing-id", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFailedRunIsRecorded(t *testing.T) {
	srv, service, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"path":"missing.csv"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	runs, err := service.Runs().List(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, store.StatusFailed, runs[0].Status)
	require.NotEmpty(t, runs[0].Message)
}
