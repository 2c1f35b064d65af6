package agglo

import (
	"math"
	"sync"
)

// parallelScanMin is the input size below which Cluster keeps the naive
// scan on one goroutine.
const parallelScanMin = 256

// findNearestPairParallel is findNearestPair with the pair scan split
// across numWorkers goroutines. Centroids are computed once per call; every
// worker scans a contiguous block of rows and the per-worker winners are
// reduced in row order, so the result is identical to the serial scan,
// tie-break included. Falls back to the serial scan if numWorkers <= 1.
func findNearestPairParallel(clusters Clusters, metric DistanceMetric, numWorkers int) (int, int, float64, error) {
	if numWorkers <= 1 || len(clusters) < 2 {
		return findNearestPair(clusters, metric)
	}

	centroids, err := clusters.Centroids()
	if err != nil {
		return 0, 0, 0, err
	}

	type partial struct {
		i, j  int
		dist  float64
		found bool
		err   error
	}

	bounds := rowBounds(len(centroids), numWorkers)
	results := make([]partial, len(bounds)-1)

	var wg sync.WaitGroup
	for w := 0; w+1 < len(bounds); w++ {
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			i, j, d, found, err := nearestInCentroids(centroids, start, end, metric)
			results[w] = partial{i: i, j: j, dist: d, found: found, err: err}
		}(w, bounds[w], bounds[w+1])
	}
	wg.Wait()

	bestI, bestJ, bestDist := 0, 1, math.Inf(1)
	for _, r := range results {
		if r.err != nil {
			return 0, 0, 0, r.err
		}
		if r.found && r.dist < bestDist {
			bestI, bestJ, bestDist = r.i, r.j, r.dist
		}
	}
	return bestI, bestJ, bestDist, nil
}

// rowBounds splits the rows 0..n-2 of an upper-triangular pair scan into at
// most numWorkers contiguous blocks holding roughly equal numbers of pairs.
// The returned slice holds block boundaries: block w is rows
// [bounds[w], bounds[w+1]).
func rowBounds(n, numWorkers int) []int {
	rows := n - 1
	if rows < 1 {
		return []int{0, 0}
	}
	numWorkers = min(numWorkers, rows)

	totalPairs := n * (n - 1) / 2
	perWorker := (totalPairs + numWorkers - 1) / numWorkers

	bounds := []int{0}
	acc := 0
	for i := 0; i < rows; i++ {
		acc += n - 1 - i
		if acc >= perWorker && i+1 < rows {
			bounds = append(bounds, i+1)
			acc = 0
		}
	}
	return append(bounds, rows)
}
