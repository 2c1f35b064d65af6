package agglo

import (
	"math/rand"
	"slices"
	"testing"
)

const floatTol = 1e-10

func randomPoints(n, dims int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = make(Point, dims)
		for d := range points[i] {
			points[i][d] = rng.Float64() * 100
		}
	}
	return points
}

// membership returns each cluster's input indices in collection order.
func membership(clusters Clusters) [][]int {
	out := make([][]int, len(clusters))
	for i, c := range clusters {
		out[i] = c.Indices()
	}
	return out
}

// checkPartition fails the test unless clusters hold every input point
// exactly once, unmodified.
func checkPartition(t *testing.T, clusters Clusters, points []Point) {
	t.Helper()
	var seen []int
	for ci, c := range clusters {
		if c.Len() == 0 {
			t.Errorf("cluster %d is empty", ci)
		}
		idx, pts := c.Indices(), c.Points()
		if len(idx) != len(pts) {
			t.Fatalf("cluster %d: %d indices for %d points", ci, len(idx), len(pts))
		}
		for k, p := range idx {
			if !pts[k].Equal(points[p]) {
				t.Errorf("cluster %d member %d: got %v, input point %d is %v", ci, k, pts[k], p, points[p])
			}
		}
		seen = append(seen, idx...)
	}
	slices.Sort(seen)
	if len(seen) != len(points) {
		t.Fatalf("partition holds %d points, input has %d", len(seen), len(points))
	}
	for i, p := range seen {
		if p != i {
			t.Fatalf("partition is missing or duplicating input point near index %d (got %d)", i, p)
		}
	}
}

// labelsEquivalent reports whether two labelings describe the same
// partition under some renumbering.
func labelsEquivalent(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	forward := make(map[int]int)
	backward := make(map[int]int)
	for i := range a {
		if m, ok := forward[a[i]]; ok && m != b[i] {
			return false
		}
		if m, ok := backward[b[i]]; ok && m != a[i] {
			return false
		}
		forward[a[i]] = b[i]
		backward[b[i]] = a[i]
	}
	return true
}
