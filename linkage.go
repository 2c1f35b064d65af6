package agglo

import "fmt"

// FlatLabels cuts a linkage matrix with n leaves into k flat clusters by
// replaying its first n-k rows. Clusters are numbered by the first leaf
// that falls into them, so leaf 0 always has label 0. Each replayed row's
// size column must match the number of leaves it joins.
//
// Replaying the linkage of a Result with its own K gives the same
// partition as Result.Labels, up to label numbering. The linkage must come
// from a run with K <= k.
func FlatLabels(linkage [][4]float64, n, k int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("agglo: flat labels for %d leaves: %w", n, ErrInvalidInput)
	}
	if k < 1 {
		return nil, fmt.Errorf("agglo: flat labels with k=%d: %w", k, ErrInvalidInput)
	}
	steps := max(n-k, 0)
	if steps > len(linkage) {
		return nil, fmt.Errorf("agglo: %d clusters need %d merges, linkage has %d: %w", k, steps, len(linkage), ErrInvalidInput)
	}

	uf := NewUnionFind(n)
	for row, merge := range linkage[:steps] {
		left, right := int(merge[0]), int(merge[1])
		if left < 0 || right < 0 || left >= uf.Next() || right >= uf.Next() {
			return nil, fmt.Errorf("agglo: linkage row %d references unknown node (%d, %d): %w", row, left, right, ErrIndexOutOfRange)
		}
		id := uf.Link(left, right)
		if id < 0 {
			return nil, fmt.Errorf("agglo: linkage row %d joins nodes %d and %d twice: %w", row, left, right, ErrInvalidInput)
		}
		if size := uf.Size(id); float64(size) != merge[3] {
			return nil, fmt.Errorf("agglo: linkage row %d records size %v, nodes %d and %d hold %d points: %w", row, merge[3], left, right, size, ErrInvalidInput)
		}
	}

	labels := make([]int, n)
	byRoot := make(map[int]int)
	for p := range labels {
		root := uf.Find(p)
		label, ok := byRoot[root]
		if !ok {
			label = len(byRoot)
			byRoot[root] = label
		}
		labels[p] = label
	}
	return labels, nil
}

// Cut returns flat labels for k clusters from the result's linkage.
// k must be at least len(r.Clusters).
func (r *Result) Cut(k int) ([]int, error) {
	return FlatLabels(r.Linkage, len(r.Labels), k)
}
