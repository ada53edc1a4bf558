// Package sweep runs k-means for every cluster count from 1 to a maximum on
// the same point set and collects the results for an elbow curve.
package sweep
