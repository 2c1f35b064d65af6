// Package agglo implements agglomerative (bottom-up) hierarchical
// clustering with centroid linkage.
//
// Every input point starts as its own cluster. On each step the two
// clusters whose centroids are closest in Euclidean distance are merged,
// until K clusters remain. Among equally close pairs the first in
// ascending (i, j) order is merged, so results are deterministic for a
// given input order.
//
// Basic usage:
//
//	clusters, err := agglo.Run(points, 3)
//	centroids, err := clusters.Centroids()
//
// With a Config:
//
//	cfg := agglo.DefaultConfig()
//	cfg.K = 4
//	result, err := agglo.Cluster(points, cfg)
//	// result.Labels[i] is the cluster position of point i
//	// result.Centroids[c] is the centroid of result.Clusters[c]
//	// result.Linkage is the merge history in scipy linkage format
//
// The step-level operations Initialize, FindNearestPair and Merge are
// exported as well, for callers that drive the merge loop themselves.
//
// # Algorithm selection
//
// AlgorithmNaive rescans every pair of clusters on each step, recomputing
// centroids from scratch: O(n²) distances per merge, O(n³) overall. With
// Config.Workers > 1 and at least a few hundred points, the scan is split
// across goroutines. AlgorithmCached keeps centroids and a distance
// matrix across merges and only computes the distances of the newly
// merged cluster. Both produce bit-identical results; AlgorithmAuto picks
// by input size.
package agglo
