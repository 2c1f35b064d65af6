package agglo

import (
	"fmt"
	"math"
)

// FindNearestPair returns the positions i < j of the two clusters whose
// centroids are closest in Euclidean distance. Both centroids are
// recomputed from current membership for every pair examined.
//
// Pairs are visited in ascending (i, j) order and a pair replaces the
// current best only when strictly closer, so among equally distant pairs
// the first one visited wins. It fails with ErrInsufficientClusters when
// fewer than two clusters remain.
func FindNearestPair(clusters Clusters) (i, j int, err error) {
	i, j, _, err = findNearestPair(clusters, EuclideanMetric{})
	return i, j, err
}

func findNearestPair(clusters Clusters, metric DistanceMetric) (bestI, bestJ int, bestDist float64, err error) {
	if len(clusters) < 2 {
		return 0, 0, 0, fmt.Errorf("agglo: nearest pair among %d clusters: %w", len(clusters), ErrInsufficientClusters)
	}

	bestI, bestJ = 0, 1
	bestDist = math.Inf(1)
	for i := 0; i < len(clusters)-1; i++ {
		for j := i + 1; j < len(clusters); j++ {
			a, err := clusters[i].centroid()
			if err != nil {
				return 0, 0, 0, fmt.Errorf("agglo: cluster %d: %w", i, err)
			}
			b, err := clusters[j].centroid()
			if err != nil {
				return 0, 0, 0, fmt.Errorf("agglo: cluster %d: %w", j, err)
			}
			d, err := metricDistance(metric, a, b)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("agglo: clusters %d and %d: %w", i, j, err)
			}
			if d < bestDist {
				bestI, bestJ, bestDist = i, j, d
			}
		}
	}
	return bestI, bestJ, bestDist, nil
}

// nearestInCentroids runs the same scan as findNearestPair over
// precomputed centroids, restricted to rows [start, end). found is false
// when no pair in the range is closer than +Inf.
func nearestInCentroids(centroids []Point, start, end int, metric DistanceMetric) (bestI, bestJ int, bestDist float64, found bool, err error) {
	bestDist = math.Inf(1)
	for i := start; i < end; i++ {
		for j := i + 1; j < len(centroids); j++ {
			d, err := metricDistance(metric, centroids[i], centroids[j])
			if err != nil {
				return 0, 0, 0, false, fmt.Errorf("agglo: clusters %d and %d: %w", i, j, err)
			}
			if d < bestDist {
				bestI, bestJ, bestDist, found = i, j, d, true
			}
		}
	}
	return bestI, bestJ, bestDist, found, nil
}
