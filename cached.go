package agglo

import (
	"fmt"
	"math"
	"slices"
)

// cachedScan keeps one centroid per cluster and a positional distance
// matrix that follow the collection through every merge. A centroid is
// computed once, when its cluster is created, with the same arithmetic as
// Group.Centroid, and every distance is taken with the lower position as
// the first argument, so nearest returns exactly what findNearestPair
// would.
type cachedScan struct {
	metric    DistanceMetric
	centroids []Point
	// dist[a][b] is the distance between positions a and b. Only a < b is read.
	dist [][]float64
}

func newCachedScan(clusters Clusters, metric DistanceMetric) (*cachedScan, error) {
	centroids, err := clusters.Centroids()
	if err != nil {
		return nil, err
	}
	n := len(centroids)
	dist := make([][]float64, n)
	for a := range dist {
		dist[a] = make([]float64, n)
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			d, err := metricDistance(metric, centroids[a], centroids[b])
			if err != nil {
				return nil, fmt.Errorf("agglo: clusters %d and %d: %w", a, b, err)
			}
			dist[a][b] = d
			dist[b][a] = d
		}
	}
	return &cachedScan{metric: metric, centroids: centroids, dist: dist}, nil
}

func (s *cachedScan) nearest() (int, int, float64, error) {
	n := len(s.centroids)
	if n < 2 {
		return 0, 0, 0, fmt.Errorf("agglo: nearest pair among %d clusters: %w", n, ErrInsufficientClusters)
	}
	bestI, bestJ, bestDist := 0, 1, math.Inf(1)
	for a := 0; a < n-1; a++ {
		row := s.dist[a]
		for b := a + 1; b < n; b++ {
			if row[b] < bestDist {
				bestI, bestJ, bestDist = a, b, row[b]
			}
		}
	}
	return bestI, bestJ, bestDist, nil
}

// merged updates the cache after Merge(clusters, i, j) produced next, with i < j.
func (s *cachedScan) merged(i, j int, next Clusters) error {
	s.centroids = slices.Delete(s.centroids, j, j+1)
	s.centroids = slices.Delete(s.centroids, i, i+1)
	s.dist = slices.Delete(s.dist, j, j+1)
	s.dist = slices.Delete(s.dist, i, i+1)
	for a, row := range s.dist {
		row = slices.Delete(row, j, j+1)
		s.dist[a] = slices.Delete(row, i, i+1)
	}

	centroid, err := next[len(next)-1].centroid()
	if err != nil {
		return fmt.Errorf("agglo: cluster %d: %w", len(next)-1, err)
	}
	last := len(s.centroids)
	newRow := make([]float64, last+1)
	for a, c := range s.centroids {
		d, err := metricDistance(s.metric, c, centroid)
		if err != nil {
			return fmt.Errorf("agglo: clusters %d and %d: %w", a, last, err)
		}
		s.dist[a] = append(s.dist[a], d)
		newRow[a] = d
	}
	s.centroids = append(s.centroids, centroid)
	s.dist = append(s.dist, newRow)
	return nil
}
