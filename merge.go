package agglo

import "fmt"

// Merge returns a new collection in which the clusters at positions i and j
// are replaced by their union, appended at the end. The argument collection
// is left untouched.
//
// The higher-positioned cluster is removed first, then the lower one, and
// the merged cluster lists the higher one's points followed by the lower
// one's. Merge(c, i, j) and Merge(c, j, i) are the same merge. It fails with
// ErrIndexOutOfRange when either index is outside the collection or i == j,
// and with ErrInvalidInput when the collection holds a nil cluster.
func Merge(clusters Clusters, i, j int) (Clusters, error) {
	n := len(clusters)
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("agglo: merge (%d, %d) in collection of %d: %w", i, j, n, ErrIndexOutOfRange)
	}
	if i == j {
		return nil, fmt.Errorf("agglo: merge cluster %d with itself: %w", i, ErrIndexOutOfRange)
	}
	for k, c := range clusters {
		if c == nil {
			return nil, fmt.Errorf("agglo: merge with nil cluster at %d: %w", k, ErrInvalidInput)
		}
	}
	if i > j {
		i, j = j, i
	}

	hi, lo := clusters[j], clusters[i]
	merged := &Group{
		// Each merge consumes one ID from n upwards, and every merge so far
		// shrank the collection by one.
		id:      2*clusters.NumPoints() - n,
		indices: make([]int, 0, len(hi.indices)+len(lo.indices)),
		points:  make([]Point, 0, len(hi.points)+len(lo.points)),
	}
	merged.indices = append(append(merged.indices, hi.indices...), lo.indices...)
	merged.points = append(append(merged.points, hi.points...), lo.points...)

	next := make(Clusters, 0, n-1)
	for k, c := range clusters {
		if k != i && k != j {
			next = append(next, c)
		}
	}
	return append(next, merged), nil
}
