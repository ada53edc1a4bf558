package pointgen

import (
	"gonum.org/v1/gonum/stat"

	"kmeanselbow/internal/kmeans"
)

// Standardize returns a copy of points with each axis shifted to zero mean
// and scaled to unit population standard deviation. An axis with zero spread
// is only centred.
func Standardize(points kmeans.PointSet) kmeans.PointSet {
	if len(points) == 0 {
		return kmeans.PointSet{}
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	mx, sx := stat.PopMeanStdDev(xs, nil)
	my, sy := stat.PopMeanStdDev(ys, nil)

	out := make(kmeans.PointSet, len(points))
	for i, p := range points {
		out[i] = kmeans.Point{X: scale(p.X, mx, sx), Y: scale(p.Y, my, sy)}
	}
	return out
}

func scale(v, mean, std float64) float64 {
	if std == 0 {
		return v - mean
	}
	return (v - mean) / std
}
