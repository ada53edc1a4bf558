package render

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmeanselbow/internal/kmeans"
	"kmeanselbow/internal/monitoring"
	"kmeanselbow/internal/sweep"
)

var testPoints = kmeans.PointSet{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 10, Y: 0}, {X: 10, Y: 1}, {X: 5, Y: 8}}

func testSweep(t *testing.T) *sweep.Result {
	t.Helper()
	sr, err := sweep.Evaluate(testPoints, 4, sweep.WithSeed(1), sweep.WithLogger(monitoring.Discard()))
	require.NoError(t, err)
	return sr
}

func TestWriteHTML(t *testing.T) {
	sr := testSweep(t)
	selected, ok := sr.At(2)
	require.True(t, ok)

	var buf bytes.Buffer
	err := WriteHTML(&buf, Page{Title: "k-means", Subtitle: "test", Points: testPoints, Selected: selected, Sweep: sr})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "cluster 0")
	assert.Contains(t, out, "cluster 1")
	assert.Contains(t, out, "centroids")
	assert.Contains(t, out, "inertia")
}

func TestWriteHTMLEveryK(t *testing.T) {
	sr := testSweep(t)
	selected, _ := sr.At(2)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, Page{Title: "k-means", Points: testPoints, Selected: selected, Sweep: sr, EveryK: true}))

	out := buf.String()
	for _, k := range sr.Ks() {
		assert.Contains(t, out, fmt.Sprintf("k=%d", k))
	}
	assert.Contains(t, out, "cluster 3")
}

func TestWriteHTMLRawPoints(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, Page{Title: "raw", Points: testPoints}))

	out := buf.String()
	assert.Contains(t, out, "points")
	assert.NotContains(t, out, "centroids")
}

func TestWriteElbowPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteElbowPNG(&buf, testSweep(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestElbowGraph(t *testing.T) {
	out := ElbowGraph(testSweep(t), 8)
	assert.Contains(t, out, "inertia for k=1..4")
}

func TestElbowGraphNaN(t *testing.T) {
	pts := kmeans.PointSet{{X: math.NaN(), Y: 0}, {X: 1, Y: 1}}
	sr, err := sweep.Evaluate(pts, 1, sweep.WithLogger(monitoring.Discard()))
	require.NoError(t, err)
	assert.Empty(t, ElbowGraph(sr, 8))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, testSweep(t))

	out := buf.String()
	assert.Contains(t, out, "INERTIA")
	assert.Contains(t, out, "CONVERGED")
	assert.Contains(t, out, "| 4 ")
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "3 0 2", joinInts([]int{3, 0, 2}))
	assert.Equal(t, "", joinInts(nil))
}
