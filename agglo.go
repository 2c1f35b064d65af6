package agglo

import (
	"context"
	"fmt"
	"runtime"

	"github.com/TrevorS/agglo/internal/monitoring"
)

// Algorithm selects how the nearest pair is found on each merge step.
type Algorithm string

const (
	AlgorithmAuto   Algorithm = "auto"
	AlgorithmNaive  Algorithm = "naive"
	AlgorithmCached Algorithm = "cached"
)

// Config controls agglomerative clustering.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// K is the number of clusters to stop at. K >= the number of points
	// performs no merges. Must be >= 1. Default: 1 (the full hierarchy).
	K int

	// Metric measures the distance between cluster centroids.
	// Centroid linkage is defined on Euclidean distance; any other metric
	// gives a different clustering that Run and FindNearestPair make no
	// promises about. Default: EuclideanMetric.
	Metric DistanceMetric

	// Algorithm selects the nearest-pair strategy.
	// "naive" rescans every pair and recomputes centroids on each step.
	// "cached" keeps centroids and a distance matrix across merges
	// (O(n²) memory). Both give identical results. "auto" picks naive for
	// small inputs and cached otherwise. Default: "auto".
	Algorithm Algorithm

	// Workers sets the number of goroutines for the naive pair scan.
	// 0 means runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// Verbose logs a line per merge and a summary per run through
	// internal/monitoring. Default: false.
	Verbose bool
}

// Result contains the output of agglomerative clustering.
type Result struct {
	// Clusters is the final collection of exactly min(K, n) clusters.
	Clusters Clusters

	// Labels assigns each input point the position of its cluster in Clusters.
	Labels []int

	// Centroids holds the centroid of each cluster in Clusters.
	Centroids []Point

	// Linkage records every merge in scipy format: each row is
	// [left, right, distance, size]. Leaves are 0..n-1 and merged clusters
	// are numbered from n in merge order.
	Linkage [][4]float64

	// Merges is the number of merges performed, n - K when K < n.
	Merges int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		K:         1,
		Metric:    EuclideanMetric{},
		Algorithm: AlgorithmAuto,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.K < 1 {
		return fmt.Errorf("agglo: K must be >= 1, got %d: %w", cfg.K, ErrInvalidInput)
	}
	switch cfg.Algorithm {
	case AlgorithmAuto, AlgorithmNaive, AlgorithmCached:
		// valid
	default:
		return fmt.Errorf("agglo: invalid Algorithm %q: %w", cfg.Algorithm, ErrInvalidInput)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("agglo: Workers must be >= 0, got %d: %w", cfg.Workers, ErrInvalidInput)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmAuto
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// Run clusters points into k clusters with the default configuration and
// returns the final collection. If k >= len(points) it returns the
// singleton collection unchanged.
func Run(points []Point, k int) (Clusters, error) {
	cfg := DefaultConfig()
	cfg.K = k
	res, err := Cluster(points, cfg)
	if err != nil {
		return nil, err
	}
	return res.Clusters, nil
}

// Cluster performs agglomerative clustering on points with centroid
// linkage, merging the closest pair of clusters until cfg.K remain.
// All points must have the same dimensionality.
func Cluster(points []Point, cfg Config) (*Result, error) {
	return ClusterContext(context.Background(), points, cfg)
}

// ClusterContext is Cluster with cancellation: ctx is checked before every
// merge, and a cancelled run returns the context error and no result.
func ClusterContext(ctx context.Context, points []Point, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	clusters, err := Initialize(points)
	if err != nil {
		return nil, err
	}

	n := len(points)
	algo := selectAlgorithm(cfg, n)
	workers := cfg.Workers
	if n < parallelScanMin {
		workers = 1
	}

	var cache *cachedScan
	if algo == AlgorithmCached && n > cfg.K {
		cache, err = newCachedScan(clusters, cfg.Metric)
		if err != nil {
			return nil, err
		}
	}

	linkage := make([][4]float64, 0, max(n-cfg.K, 0))
	for clusters.State(cfg.K) == StateActive {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("agglo: cancelled after %d merges: %w", len(linkage), err)
		}

		var i, j int
		var dist float64
		if cache != nil {
			i, j, dist, err = cache.nearest()
		} else {
			i, j, dist, err = findNearestPairParallel(clusters, cfg.Metric, workers)
		}
		if err != nil {
			return nil, err
		}

		next, err := Merge(clusters, i, j)
		if err != nil {
			return nil, err
		}
		merged := next[len(next)-1]
		linkage = append(linkage, [4]float64{
			float64(clusters[i].id), float64(clusters[j].id), dist, float64(merged.Len()),
		})
		if cfg.Verbose {
			monitoring.Logf("agglo: merge %d: clusters %d+%d -> %d (distance=%g, size=%d)",
				len(linkage), clusters[i].id, clusters[j].id, merged.id, dist, merged.Len())
		}

		if cache != nil {
			if err := cache.merged(i, j, next); err != nil {
				return nil, err
			}
		}
		clusters = next
	}

	centroids, err := clusters.Centroids()
	if err != nil {
		return nil, err
	}

	if cfg.Verbose {
		monitoring.Logf("agglo: clustered %d points into %d clusters (%d merges, algorithm=%s)",
			n, len(clusters), len(linkage), algo)
	}

	return &Result{
		Clusters:  clusters,
		Labels:    clusters.Labels(),
		Centroids: centroids,
		Linkage:   linkage,
		Merges:    len(linkage),
	}, nil
}
