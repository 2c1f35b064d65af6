package agglo

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Group is one cluster: a non-empty set of input points. Points are never
// deduplicated: two equal input points stay two members.
type Group struct {
	// id is the linkage node ID: leaves are 0..n-1, merged clusters are
	// numbered from n in merge order.
	id      int
	indices []int
	points  []Point
}

// ID returns the cluster's node ID in the linkage matrix. Singletons carry
// the input index of their point; merged clusters are numbered from n.
func (c *Group) ID() int { return c.id }

// Len returns the number of member points.
func (c *Group) Len() int { return len(c.points) }

// Points returns copies of the member points in membership order.
func (c *Group) Points() []Point {
	out := make([]Point, len(c.points))
	for i, p := range c.points {
		out[i] = p.Clone()
	}
	return out
}

// Indices returns the input positions of the member points, parallel to Points.
func (c *Group) Indices() []int { return slices.Clone(c.indices) }

// Centroid returns the coordinate-wise mean of the member points. It is
// recomputed from the current membership on every call.
func (c *Group) Centroid() (Point, error) {
	centroid, err := c.centroid()
	if err != nil {
		return nil, fmt.Errorf("agglo: %w", err)
	}
	return centroid, nil
}

func (c *Group) centroid() (Point, error) {
	if c == nil || len(c.points) == 0 {
		return nil, fmt.Errorf("centroid of empty cluster: %w", ErrInvalidInput)
	}
	dim := len(c.points[0])
	sum := make([]float64, dim)
	for _, p := range c.points {
		if len(p) != dim {
			return nil, fmt.Errorf("centroid over %d-d and %d-d points: %w", dim, len(p), ErrDimensionMismatch)
		}
		floats.Add(sum, p)
	}
	floats.Scale(1/float64(len(c.points)), sum)
	return sum, nil
}

// State is the lifecycle state of a cluster collection relative to a target K.
type State int

const (
	// StateActive means the collection still holds more than K clusters.
	StateActive State = iota
	// StateDone means the collection holds K clusters (or fewer).
	StateDone
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "ACTIVE"
	case StateDone:
		return "DONE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Clusters is an ordered collection of clusters that partitions the input
// points. Position in the slice is the only cluster identity the public
// operations use.
type Clusters []*Group

// Initialize wraps every point in its own singleton cluster, preserving
// input order. Points are cloned on admission.
func Initialize(points []Point) (Clusters, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("agglo: initialize with no points: %w", ErrInvalidInput)
	}
	clusters := make(Clusters, len(points))
	for i, p := range points {
		clusters[i] = &Group{
			id:      i,
			indices: []int{i},
			points:  []Point{p.Clone()},
		}
	}
	return clusters, nil
}

// State reports whether the collection still needs merging to reach k clusters.
func (cs Clusters) State(k int) State {
	if len(cs) > k {
		return StateActive
	}
	return StateDone
}

// NumPoints returns the total number of points across all clusters.
func (cs Clusters) NumPoints() int {
	n := 0
	for _, c := range cs {
		n += c.Len()
	}
	return n
}

// Centroids returns the centroid of every cluster, in collection order.
func (cs Clusters) Centroids() ([]Point, error) {
	out := make([]Point, len(cs))
	for i, c := range cs {
		centroid, err := c.centroid()
		if err != nil {
			return nil, fmt.Errorf("agglo: cluster %d: %w", i, err)
		}
		out[i] = centroid
	}
	return out, nil
}

// Labels returns, for each of the n input points, the position of the
// cluster that holds it.
func (cs Clusters) Labels() []int {
	labels := make([]int, cs.NumPoints())
	for ci, c := range cs {
		for _, idx := range c.indices {
			labels[idx] = ci
		}
	}
	return labels
}
