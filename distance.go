package agglo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DistanceMetric measures the distance between two centroids of equal
// dimensionality. Implementations may assume len(a) == len(b); the package
// checks dimensionality before calling them. EuclideanMetric is the only
// metric the clusterer's results are specified for.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance. It is the linkage
// metric of the clusterer and the default for Config.Metric.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Distance returns the Euclidean distance between a and b.
// It fails with ErrDimensionMismatch if the points differ in dimensionality.
func Distance(a, b Point) (float64, error) {
	d, err := metricDistance(EuclideanMetric{}, a, b)
	if err != nil {
		return 0, fmt.Errorf("agglo: %w", err)
	}
	return d, nil
}

// metricDistance returns unprefixed errors; callers add the package prefix.
func metricDistance(m DistanceMetric, a, b Point) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("distance between %d-d and %d-d points: %w", len(a), len(b), ErrDimensionMismatch)
	}
	return m.Distance(a, b), nil
}
