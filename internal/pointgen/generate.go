// Package pointgen produces point sets for clustering: synthetic clouds for
// demos and CSV files for real data.
package pointgen

import (
	"fmt"
	"strings"

	rng "github.com/leesper/go_rng"

	"kmeanselbow/internal/kmeans"
)

// Distribution names a synthetic point cloud shape.
type Distribution string

const (
	Uniform Distribution = "uniform"
	Normal  Distribution = "normal"
	Blobs   Distribution = "blobs"
	// Random picks one of the other shapes per call.
	Random Distribution = "random"
)

// Distributions lists the accepted shapes.
var Distributions = []Distribution{Uniform, Normal, Blobs, Random}

// ParseDistribution maps a name to a Distribution, case-insensitively.
func ParseDistribution(s string) (Distribution, error) {
	d := Distribution(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Distributions {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown distribution %q", s)
}

// BlobCenters are the cluster centres of the Blobs shape.
var BlobCenters = []kmeans.Point{{X: -5, Y: -3}, {X: 0, Y: 4}, {X: 4, Y: -1}}

const (
	uniformHalfWidth = 5.0
	normalStdDev     = 2.0
	blobStdDev       = 0.8
)

// Generator draws synthetic point sets. It is not safe for concurrent use.
type Generator struct {
	uniform  *rng.UniformGenerator
	gaussian *rng.GaussianGenerator
}

// NewGenerator returns a Generator whose output is determined by seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		uniform:  rng.NewUniformGenerator(seed),
		gaussian: rng.NewGaussianGenerator(seed + 1),
	}
}

// Generate returns n points of the given shape. Uniform points lie in
// [-5, 5)², Normal points have standard deviation 2 around the origin, and
// Blobs cycle through BlobCenters with standard deviation 0.8.
func (g *Generator) Generate(d Distribution, n int) (kmeans.PointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("point count must not be negative, got %d", n)
	}
	if d == Random {
		d = Distributions[g.uniform.Int32n(int32(len(Distributions)-1))]
	}

	pts := make(kmeans.PointSet, n)
	switch d {
	case Uniform:
		for i := range pts {
			pts[i] = kmeans.Point{
				X: g.uniform.Float64Range(-uniformHalfWidth, uniformHalfWidth),
				Y: g.uniform.Float64Range(-uniformHalfWidth, uniformHalfWidth),
			}
		}
	case Normal:
		for i := range pts {
			pts[i] = kmeans.Point{
				X: g.gaussian.Gaussian(0, normalStdDev),
				Y: g.gaussian.Gaussian(0, normalStdDev),
			}
		}
	case Blobs:
		for i := range pts {
			c := BlobCenters[i%len(BlobCenters)]
			pts[i] = kmeans.Point{
				X: g.gaussian.Gaussian(c.X, blobStdDev),
				Y: g.gaussian.Gaussian(c.Y, blobStdDev),
			}
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q", d)
	}
	return pts, nil
}
