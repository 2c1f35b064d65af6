package agglo

import "errors"

// Sentinel errors. Functions wrap them with context, so match with errors.Is.
var (
	// ErrInvalidInput reports an empty point set, a target cluster count
	// below 1, an invalid Config, or a centroid requested for an empty cluster.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientClusters reports a nearest-pair search over fewer than
	// two clusters.
	ErrInsufficientClusters = errors.New("insufficient clusters")

	// ErrIndexOutOfRange reports a merge with an index outside the
	// collection or with both indices equal.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDimensionMismatch reports a distance between points of different
	// dimensionality.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
