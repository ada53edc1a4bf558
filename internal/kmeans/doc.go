// Package kmeans implements Lloyd's k-means clustering for 2-D point sets.
//
// A run seeds k centroids from distinct input points, then alternates
// nearest-centroid assignment with mean updates until no label changes or
// the iteration cap is reached. Clusters that lose all their points keep
// their previous centroid.
package kmeans
