package sweep

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"kmeanselbow/internal/kmeans"
	"kmeanselbow/internal/monitoring"
)

// Result holds one k-means result per cluster count, in ascending k.
type Result struct {
	// Seed is the base seed; run k was seeded with Seed+k.
	Seed int64
	runs []kmeans.Result
}

// MaxK returns the largest evaluated cluster count.
func (r *Result) MaxK() int { return len(r.runs) }

// Len returns the number of stored results.
func (r *Result) Len() int { return len(r.runs) }

// At returns the result for k.
func (r *Result) At(k int) (kmeans.Result, bool) {
	if k < 1 || k > len(r.runs) {
		return kmeans.Result{}, false
	}
	return r.runs[k-1], true
}

// Ks returns the evaluated cluster counts in ascending order.
func (r *Result) Ks() []int {
	ks := make([]int, len(r.runs))
	for i := range r.runs {
		ks[i] = i + 1
	}
	return ks
}

// Inertias returns the inertia for each k, indexed by k-1.
func (r *Result) Inertias() []float64 {
	out := make([]float64, len(r.runs))
	for i, run := range r.runs {
		out[i] = run.Inertia
	}
	return out
}

type options struct {
	maxIterations int
	seed          int64
	seeded        bool
	workers       int
	logger        *monitoring.Logger
}

// Option configures Evaluate.
type Option func(*options)

// WithMaxIterations sets the iteration cap passed to every run.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithSeed makes the sweep reproducible. Run k draws its seed points from a
// source seeded with seed+k.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithWorkers evaluates up to n cluster counts concurrently. Results do not
// depend on n.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger for progress output.
func WithLogger(l *monitoring.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Evaluate clusters points for k = 1..maxK. Each run is independent of the
// others. The first failing run aborts the sweep and its error is returned.
func Evaluate(points kmeans.PointSet, maxK int, opts ...Option) (*Result, error) {
	o := options{
		maxIterations: kmeans.DefaultMaxIterations,
		workers:       1,
		logger:        monitoring.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if maxK < 1 {
		return nil, fmt.Errorf("%w: max k must be at least 1, got %d", kmeans.ErrInvalidArgument, maxK)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	if o.workers < 1 {
		o.workers = 1
	}

	start := time.Now()
	res := &Result{Seed: o.seed, runs: make([]kmeans.Result, maxK)}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.workers)
	for k := 1; k <= maxK; k++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run, err := kmeans.Cluster(points, k,
				kmeans.WithMaxIterations(o.maxIterations),
				kmeans.WithRand(rand.New(rand.NewSource(o.seed+int64(k)))),
				kmeans.WithLogger(o.logger),
			)
			if err != nil {
				return fmt.Errorf("k=%d: %w", k, err)
			}
			o.logger.Debug("sweep k=%d inertia=%.4f iterations=%d converged=%t",
				k, run.Inertia, run.Iterations, run.Converged)
			res.runs[k-1] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.Error("sweep failed: %v", err)
		return nil, err
	}

	o.logger.Info("sweep of k=1..%d over %d points completed in %v (seed %d)",
		maxK, len(points), time.Since(start), o.seed)
	return res, nil
}
