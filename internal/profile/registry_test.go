package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRegistry_LoadsProfiles(t *testing.T) {
	path := writeProfiles(t, `
profiles:
  strict:
    description: tighter correlation reporting
    corr_threshold: 0.8
    corr_top_n: 5
  relaxed:
    corr_threshold: 0.4
    show_full_correlation: true
`)
	r, err := NewRegistry(path, false)
	require.NoError(t, err)

	snap := r.Snapshot()
	assert.Len(t, snap.Profiles, 2)
	assert.EqualValues(t, 1, snap.Version)

	strict, ok := r.Profile("strict")
	require.True(t, ok)
	assert.Equal(t, "strict", strict.Name)
	assert.Equal(t, 0.8, strict.CorrThreshold)
	assert.Equal(t, 5, strict.CorrTopN)

	relaxed, ok := r.Profile("relaxed")
	require.True(t, ok)
	assert.True(t, relaxed.ShowFullCorrelation)

	_, ok = r.Profile("absent")
	assert.False(t, ok)
}

func TestNewRegistry_SchemaRejectsBadProfile(t *testing.T) {
	path := writeProfiles(t, `
profiles:
  broken:
    corr_threshold: 3.5
`)
	_, err := NewRegistry(path, false)
	assert.ErrorContains(t, err, "invalid")
}

func TestNewRegistry_UnknownKeyRejected(t *testing.T) {
	path := writeProfiles(t, `
profiles:
  typo:
    corr_treshold: 0.5
`)
	_, err := NewRegistry(path, false)
	assert.Error(t, err)
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "missing.yaml"), false)
	assert.Error(t, err)

	_, err = NewRegistry("  ", false)
	assert.Error(t, err)
}

func TestSnapshotIsolation(t *testing.T) {
	path := writeProfiles(t, "profiles:\n  a:\n    corr_top_n: 3\n")
	r, err := NewRegistry(path, false)
	require.NoError(t, err)
	snap := r.Snapshot()
	snap.Profiles["a"] = Profile{Name: "mutated"}
	fresh, ok := r.Profile("a")
	require.True(t, ok)
	assert.Equal(t, "a", fresh.Name)
}
