// Package reference cross-checks sweep results against the k-means
// implementation in github.com/mpraski/clusters.
package reference

import (
	"github.com/mpraski/clusters"
	"github.com/pkg/errors"

	"kmeanselbow/internal/kmeans"
)

// DefaultIterations is the iteration budget given to the library.
const DefaultIterations = 1000

// Partition clusters points with the library's k-means. The library's
// 1-based guesses are turned into 0-based labels, centroids are the means of
// each cluster, and inertia is scored the same way as kmeans.Cluster.
func Partition(points kmeans.PointSet, k, iterations int) (kmeans.Result, error) {
	if k < 1 || k > len(points) {
		return kmeans.Result{}, errors.Wrapf(kmeans.ErrInvalidArgument, "reference partition k=%d n=%d", k, len(points))
	}
	labels := make([]int, len(points))
	// The library needs at least two clusters; one cluster is every point.
	if k > 1 {
		c, err := clusters.KMeans(iterations, k, clusters.EuclideanDistance)
		if err != nil {
			return kmeans.Result{}, errors.Wrap(err, "failed to create KMeans clusterer")
		}
		if err := c.Learn(points.Coordinates()); err != nil {
			return kmeans.Result{}, errors.Wrap(err, "failed to learn clusters")
		}
		for i, g := range c.Guesses() {
			labels[i] = g - 1
			if labels[i] < 0 || labels[i] >= k {
				return kmeans.Result{}, errors.Errorf("library returned cluster %d for point %d, want 1..%d", g, i, k)
			}
		}
	}

	centroids := make([]kmeans.Centroid, k)
	counts := make([]int, k)
	for i, p := range points {
		l := labels[i]
		centroids[l].X += p.X
		centroids[l].Y += p.Y
		counts[l]++
	}
	for j := range centroids {
		if counts[j] > 0 {
			centroids[j].X /= float64(counts[j])
			centroids[j].Y /= float64(counts[j])
		}
	}

	return kmeans.Result{
		Labels:    labels,
		Centroids: centroids,
		Inertia:   kmeans.Inertia(points, labels, centroids),
		Converged: true,
	}, nil
}

// Estimate asks the library's estimator for the number of clusters in
// points, searching k up to maxK.
func Estimate(points kmeans.PointSet, maxK, iterations int) (int, error) {
	if maxK < 2 || maxK > len(points) {
		return 0, errors.Wrapf(kmeans.ErrInvalidArgument, "reference estimate maxK=%d n=%d", maxK, len(points))
	}
	e, err := clusters.KMeansEstimator(iterations, maxK, clusters.EuclideanDistance)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create KMeans estimator")
	}
	k, err := e.Estimate(points.Coordinates())
	if err != nil {
		return 0, errors.Wrap(err, "failed to estimate cluster count")
	}
	return k, nil
}

// Gap is the relative difference between an inertia and the reference
// inertia for the same k. Positive values mean the reference did better.
func Gap(inertia, ref float64) float64 {
	if ref == 0 {
		return inertia
	}
	return (inertia - ref) / ref
}
