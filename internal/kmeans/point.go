package kmeans

// Point is a coordinate pair in the plane.
type Point struct {
	X float64
	Y float64
}

// Centroid is the representative coordinate of one cluster.
type Centroid = Point

// PointSet is an ordered set of points. Labels returned by Cluster are
// indexed the same way.
type PointSet []Point

// squaredDistance skips the square root; only ordering matters for assignment.
func squaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Coordinates returns the points as rows of [x, y].
func (ps PointSet) Coordinates() [][]float64 {
	rows := make([][]float64, len(ps))
	for i, p := range ps {
		rows[i] = []float64{p.X, p.Y}
	}
	return rows
}
