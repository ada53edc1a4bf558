package kmeans

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"kmeanselbow/internal/monitoring"
)

const (
	// DefaultMaxIterations bounds a run when WithMaxIterations is not given.
	DefaultMaxIterations = 100

	// Unassigned marks a label before the first assignment pass.
	Unassigned = -1
)

// ErrInvalidArgument is returned for arguments a run cannot honour, such as
// asking for more clusters than there are points.
var ErrInvalidArgument = errors.New("invalid argument")

// Rand is the randomness a run needs for seeding. *rand.Rand satisfies it.
type Rand interface {
	Perm(n int) []int
}

// Result is the outcome of a single run.
type Result struct {
	// Labels[i] is the cluster index of points[i].
	Labels    []int
	Centroids []Centroid
	// Inertia is the sum of squared distances from each point to its
	// assigned centroid.
	Inertia float64

	// Iterations is the number of assign/update passes performed.
	Iterations int
	// Converged is false when the run stopped at the iteration cap.
	Converged bool
}

// K returns the number of clusters in the result.
func (r Result) K() int { return len(r.Centroids) }

// Sizes returns how many points were assigned to each cluster.
func (r Result) Sizes() []int {
	sizes := make([]int, len(r.Centroids))
	for _, l := range r.Labels {
		sizes[l]++
	}
	return sizes
}

type options struct {
	maxIterations int
	rnd           Rand
	logger        *monitoring.Logger
}

// Option configures a run.
type Option func(*options)

// WithMaxIterations caps the number of assign/update passes.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithRand sets the source used to pick seed points. Without it each run
// draws from its own time-seeded source.
func WithRand(r Rand) Option {
	return func(o *options) { o.rnd = r }
}

// WithLogger sets a logger for per-iteration debug output.
func WithLogger(l *monitoring.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Cluster partitions points into k clusters. A k of zero or less yields an
// empty result. Asking for more clusters than points fails with
// ErrInvalidArgument before any iteration. points is never modified.
func Cluster(points PointSet, k int, opts ...Option) (Result, error) {
	o := options{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	if k <= 0 {
		return Result{Labels: []int{}, Centroids: []Centroid{}}, nil
	}
	n := len(points)
	if k > n {
		return Result{}, fmt.Errorf("%w: k exceeds point count (k=%d, n=%d)", ErrInvalidArgument, k, n)
	}
	if o.maxIterations < 1 {
		return Result{}, fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidArgument, o.maxIterations)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	centroids, err := seed(points, k, o.rnd)
	if err != nil {
		return Result{}, err
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = Unassigned
	}
	sums := make([]Point, k)
	counts := make([]int, k)

	res := Result{Labels: labels, Centroids: centroids}
	for res.Iterations < o.maxIterations {
		moved := assign(points, centroids, labels)
		update(points, labels, centroids, sums, counts)
		res.Iterations++
		o.logger.Debug("kmeans k=%d iteration=%d moved=%t", k, res.Iterations, moved)
		if !moved {
			res.Converged = true
			break
		}
	}

	res.Inertia = Inertia(points, labels, centroids)
	return res, nil
}

// seed copies k distinct points, chosen without replacement, as the initial
// centroids.
func seed(points PointSet, k int, rnd Rand) ([]Centroid, error) {
	n := len(points)
	perm := rnd.Perm(n)
	if len(perm) < k {
		return nil, fmt.Errorf("%w: random source returned %d indices, need %d", ErrInvalidArgument, len(perm), k)
	}
	centroids := make([]Centroid, k)
	for j := 0; j < k; j++ {
		idx := perm[j]
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: seed index %d out of range [0,%d)", ErrInvalidArgument, idx, n)
		}
		centroids[j] = points[idx]
	}
	return centroids, nil
}

// assign labels every point with its nearest centroid, lowest index on ties,
// and reports whether any label changed.
func assign(points PointSet, centroids []Centroid, labels []int) bool {
	moved := false
	for i, p := range points {
		best := 0
		bestDist := squaredDistance(p, centroids[0])
		for j := 1; j < len(centroids); j++ {
			if d := squaredDistance(p, centroids[j]); d < bestDist {
				bestDist = d
				best = j
			}
		}
		if labels[i] != best {
			labels[i] = best
			moved = true
		}
	}
	return moved
}

// update moves each centroid to the mean of its points. Empty clusters keep
// their centroid.
func update(points PointSet, labels []int, centroids []Centroid, sums []Point, counts []int) {
	for j := range sums {
		sums[j] = Point{}
		counts[j] = 0
	}
	for i, p := range points {
		l := labels[i]
		sums[l].X += p.X
		sums[l].Y += p.Y
		counts[l]++
	}
	for j := range centroids {
		if counts[j] == 0 {
			continue
		}
		c := float64(counts[j])
		centroids[j] = Centroid{X: sums[j].X / c, Y: sums[j].Y / c}
	}
}

// Inertia returns the sum of squared distances from each point to the
// centroid its label selects. Every label must index into centroids.
func Inertia(points PointSet, labels []int, centroids []Centroid) float64 {
	var total float64
	for i, p := range points {
		total += squaredDistance(p, centroids[labels[i]])
	}
	return total
}
