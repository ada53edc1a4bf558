package reference

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmeanselbow/internal/kmeans"
)

func twoBlobs(n int) kmeans.PointSet {
	r := rand.New(rand.NewSource(1))
	ps := make(kmeans.PointSet, n)
	for i := range ps {
		cx := 0.0
		if i%2 == 1 {
			cx = 50
		}
		ps[i] = kmeans.Point{X: cx + r.Float64(), Y: r.Float64()}
	}
	return ps
}

func TestPartition(t *testing.T) {
	points := twoBlobs(40)

	res, err := Partition(points, 2, 100)
	require.NoError(t, err)

	require.Len(t, res.Labels, len(points))
	require.Equal(t, 2, res.K())
	total := 0
	for _, s := range res.Sizes() {
		total += s
	}
	assert.Equal(t, len(points), total)
	assert.InDelta(t, kmeans.Inertia(points, res.Labels, res.Centroids), res.Inertia, 1e-9)
}

func TestPartitionSingleCluster(t *testing.T) {
	points := kmeans.PointSet{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}}

	res, err := Partition(points, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0}, res.Labels)
	assert.Equal(t, kmeans.Centroid{X: 2, Y: 0}, res.Centroids[0])
	assert.InDelta(t, 8.0, res.Inertia, 1e-12)
}

func TestPartitionInvalid(t *testing.T) {
	_, err := Partition(twoBlobs(4), 5, 10)
	assert.True(t, errors.Is(err, kmeans.ErrInvalidArgument))

	_, err = Partition(twoBlobs(4), 0, 10)
	assert.True(t, errors.Is(err, kmeans.ErrInvalidArgument))
}

func TestEstimate(t *testing.T) {
	k, err := Estimate(twoBlobs(60), 5, 100)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, k, 1)
}

func TestEstimateInvalid(t *testing.T) {
	_, err := Estimate(twoBlobs(3), 4, 10)
	assert.True(t, errors.Is(err, kmeans.ErrInvalidArgument))

	_, err = Estimate(twoBlobs(10), 1, 10)
	assert.True(t, errors.Is(err, kmeans.ErrInvalidArgument))
}

func TestGap(t *testing.T) {
	assert.InDelta(t, 0.5, Gap(15, 10), 1e-12)
	assert.InDelta(t, -0.5, Gap(5, 10), 1e-12)
	assert.Equal(t, 3.0, Gap(3, 0))
}
