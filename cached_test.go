package agglo

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCluster_AlgorithmsAgreeBitwise(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		k      int
	}{
		{"small 2-d", randomPoints(30, 2, 1), 4},
		{"3-d", randomPoints(50, 3, 2), 1},
		// Large enough for the naive scan to fan out across workers.
		{"parallel scan", randomPoints(parallelScanMin+4, 2, 3), 10},
		{"duplicates", append(randomPoints(10, 2, 4), randomPoints(10, 2, 4)...), 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want, err := Cluster(tc.points, Config{K: tc.k, Algorithm: AlgorithmNaive, Workers: 1})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, cfg := range []Config{
				{K: tc.k, Algorithm: AlgorithmNaive, Workers: 4},
				{K: tc.k, Algorithm: AlgorithmCached},
				{K: tc.k, Algorithm: AlgorithmAuto},
			} {
				got, err := Cluster(tc.points, cfg)
				if err != nil {
					t.Fatalf("%s/%d workers: unexpected error: %v", cfg.Algorithm, cfg.Workers, err)
				}
				label := fmt.Sprintf("%s/%d workers", cfg.Algorithm, cfg.Workers)
				if diff := cmp.Diff(membership(want.Clusters), membership(got.Clusters)); diff != "" {
					t.Errorf("%s: membership differs from serial naive:\n%s", label, diff)
				}
				if diff := cmp.Diff(want.Linkage, got.Linkage); diff != "" {
					t.Errorf("%s: linkage differs from serial naive:\n%s", label, diff)
				}
				if diff := cmp.Diff(want.Centroids, got.Centroids); diff != "" {
					t.Errorf("%s: centroids differ from serial naive:\n%s", label, diff)
				}
			}
		})
	}
}

func TestCachedScan_MatrixTracksMerges(t *testing.T) {
	clusters, _ := Initialize(randomPoints(15, 2, 8))
	cache, err := newCachedScan(clusters, EuclideanMetric{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for len(clusters) > 2 {
		i, j, d, err := cache.nearest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wi, wj, wd, _ := findNearestPair(clusters, EuclideanMetric{})
		if i != wi || j != wj || d != wd {
			t.Fatalf("cache picked (%d, %d, %v), rescan picked (%d, %d, %v)", i, j, d, wi, wj, wd)
		}

		next, err := Merge(clusters, i, j)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.merged(i, j, next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clusters = next

		fresh, err := newCachedScan(clusters, EuclideanMetric{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(fresh.dist, cache.dist); diff != "" {
			t.Fatalf("maintained matrix differs from a rebuilt one:\n%s", diff)
		}
		if diff := cmp.Diff(fresh.centroids, cache.centroids); diff != "" {
			t.Fatalf("maintained centroids differ from recomputed ones:\n%s", diff)
		}
	}
}

func TestCachedScan_InsufficientClusters(t *testing.T) {
	clusters, _ := Initialize([]Point{{1, 1}})
	cache, err := newCachedScan(clusters, EuclideanMetric{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, _, err := cache.nearest(); err == nil {
		t.Error("expected an error for a single cluster")
	}
}
