package sweep

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Elbow returns the k at the knee of the inertia curve using the Kneedle
// method for a decreasing convex curve: after normalizing both axes to
// [0, 1], the knee is the point furthest below the chord from the first to
// the last point. A flat curve yields k=1. It reports false when fewer than
// three results exist or any inertia is not finite.
func (r *Result) Elbow() (int, bool) {
	ys := r.Inertias()
	if len(ys) < 3 {
		return 0, false
	}
	for _, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return 0, false
		}
	}

	minY, maxY := floats.Min(ys), floats.Max(ys)
	if maxY == minY {
		return 1, true
	}

	last := float64(len(ys) - 1)
	best, bestDist := 1, math.Inf(-1)
	for i, y := range ys {
		xNorm := float64(i) / last
		yNorm := (y - minY) / (maxY - minY)
		if d := (1 - xNorm) - yNorm; d > bestDist {
			bestDist = d
			best = i + 1
		}
	}
	return best, true
}
