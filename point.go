package agglo

import "slices"

// Point is a fixed-dimensionality coordinate vector.
//
// The package clones points on admission and on every accessor, so a Point
// held by a Group is never aliased by the caller.
type Point []float64

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Clone returns a copy of p that shares no memory with it.
func (p Point) Clone() Point { return slices.Clone(p) }

// Equal reports whether p and q have the same dimensionality and equal
// coordinates, compared with ==.
func (p Point) Equal(q Point) bool { return slices.Equal(p, q) }
