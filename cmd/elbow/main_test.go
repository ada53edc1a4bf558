package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmeanselbow/internal/kmeans"
	"kmeanselbow/internal/monitoring"
)

func TestRunGenerated(t *testing.T) {
	defer monitoring.SetLogger(monitoring.Default())
	dir := t.TempDir()
	html := filepath.Join(dir, "report.html")
	png := filepath.Join(dir, "elbow.png")

	var out bytes.Buffer
	err := run([]string{"-n", "90", "-dist", "blobs", "-maxk", "6", "-seed", "4", "-workers", "3", "-compare", "-html", html, "-png", png}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "INERTIA")
	assert.Contains(t, out.String(), "selected k=")
	assert.Contains(t, out.String(), "reference: k=")
	for _, p := range []string{html, png} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRunSelectedK(t *testing.T) {
	defer monitoring.SetLogger(monitoring.Default())
	var out bytes.Buffer
	err := run([]string{"-n", "30", "-dist", "uniform", "-maxk", "4", "-k", "3", "-seed", "1"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "selected k=3")
}

func TestRunCompareSingleCluster(t *testing.T) {
	defer monitoring.SetLogger(monitoring.Default())
	var out bytes.Buffer
	err := run([]string{"-n", "30", "-dist", "uniform", "-maxk", "4", "-k", "1", "-seed", "1", "-compare"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "selected k=1")
	assert.Contains(t, out.String(), "reference: k=1")
	assert.Contains(t, out.String(), "gap=+0.00%")
}

func TestRunCSVInput(t *testing.T) {
	defer monitoring.SetLogger(monitoring.Default())
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n0,0\n0,1\n10,0\n10,1\n"), 0o644))

	var out bytes.Buffer
	err := run([]string{"-input", path, "-header", "-maxk", "2", "-k", "2", "-seed", "1"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "selected k=2 inertia=1.0000")
}

func TestRunMaxKExceedsPoints(t *testing.T) {
	defer monitoring.SetLogger(monitoring.Default())
	var out bytes.Buffer
	err := run([]string{"-n", "3", "-maxk", "5", "-seed", "1"}, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kmeans.ErrInvalidArgument))
}

func TestRunSelectedKOutOfRange(t *testing.T) {
	defer monitoring.SetLogger(monitoring.Default())
	var out bytes.Buffer
	err := run([]string{"-n", "20", "-maxk", "3", "-k", "9", "-seed", "1"}, &out)
	assert.True(t, errors.Is(err, kmeans.ErrInvalidArgument))
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"points": 50, "max_k": 7, "seed": 3}`), 0o644))

	f, set, err := parseFlags([]string{"-config", path, "-maxk", "12"}, &bytes.Buffer{})
	require.NoError(t, err)
	cfg, err := resolveConfig(f, set)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Points)
	assert.Equal(t, 12, cfg.MaxK)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(3), *cfg.Seed)
}

func TestResolveConfigInvalid(t *testing.T) {
	f, set, err := parseFlags([]string{"-workers", "0"}, &bytes.Buffer{})
	require.NoError(t, err)
	_, err = resolveConfig(f, set)
	assert.ErrorContains(t, err, "workers must be positive")
}
