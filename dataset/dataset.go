// Package dataset synthesises labelled point clouds for the clusterer: a
// set of Gaussian blobs around known means, shuffled, plus a stratified
// train/test split.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/TrevorS/agglo"
)

// ErrInvalidParams reports blob or split parameters that cannot produce a dataset.
var ErrInvalidParams = errors.New("invalid dataset parameters")

// DefaultTestFraction is the share of each label held out by StratifiedSplit
// when callers have no preference.
const DefaultTestFraction = 0.2

// Blob is an isotropic Gaussian cloud: every coordinate is drawn
// independently from N(Mean[d], Std²).
type Blob struct {
	Mean agglo.Point `json:"mean"`
	Std  float64     `json:"std"`
}

// Sample is a generated point and the index of the blob it came from.
type Sample struct {
	Point agglo.Point
	Label int
}

// DefaultBlobs returns four 2-D blobs with well-separated means and the
// sample count they are usually drawn with.
func DefaultBlobs() ([]Blob, int) {
	return []Blob{
		{Mean: agglo.Point{3, 2}, Std: 1.5},
		{Mean: agglo.Point{8, 8}, Std: 1.1},
		{Mean: agglo.Point{2, 9}, Std: 1.0},
		{Mean: agglo.Point{9, 4}, Std: 1.4},
	}, 100
}

// Generate draws size/len(blobs) points from each blob (any remainder is
// dropped), labels them with the blob index and shuffles the result. The
// same seed always yields the same samples.
func Generate(blobs []Blob, size int, seed uint64) ([]Sample, error) {
	if len(blobs) == 0 {
		return nil, fmt.Errorf("dataset: no blobs: %w", ErrInvalidParams)
	}
	if size < len(blobs) {
		return nil, fmt.Errorf("dataset: size %d is smaller than the %d blobs: %w", size, len(blobs), ErrInvalidParams)
	}
	dims := len(blobs[0].Mean)
	for i, b := range blobs {
		if len(b.Mean) == 0 || len(b.Mean) != dims {
			return nil, fmt.Errorf("dataset: blob %d has a %d-d mean, want %d-d: %w", i, len(b.Mean), dims, ErrInvalidParams)
		}
		if !(b.Std > 0) || math.IsInf(b.Std, 0) {
			return nil, fmt.Errorf("dataset: blob %d has std %v, want > 0: %w", i, b.Std, ErrInvalidParams)
		}
	}

	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	perBlob := size / len(blobs)
	samples := make([]Sample, 0, perBlob*len(blobs))
	for label, b := range blobs {
		for range perBlob {
			p := make(agglo.Point, dims)
			for d := range p {
				p[d] = distuv.Normal{Mu: b.Mean[d], Sigma: b.Std, Src: src}.Rand()
			}
			samples = append(samples, Sample{Point: p, Label: label})
		}
	}

	rand.New(src).Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
	return samples, nil
}

// StratifiedSplit holds out testFraction of every label for testing and
// returns the rest for training, so both parts keep the label proportions
// of samples. Each label contributes round(count*testFraction) test
// samples but always keeps at least one training sample. Both outputs are
// shuffled.
func StratifiedSplit(samples []Sample, testFraction float64, seed uint64) (train, test []Sample, err error) {
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("dataset: split of no samples: %w", ErrInvalidParams)
	}
	if !(testFraction > 0 && testFraction < 1) {
		return nil, nil, fmt.Errorf("dataset: test fraction %v outside (0, 1): %w", testFraction, ErrInvalidParams)
	}

	byLabel := make(map[int][]int)
	for i, s := range samples {
		byLabel[s.Label] = append(byLabel[s.Label], i)
	}
	labels := make([]int, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	slices.Sort(labels)

	rng := rand.New(rand.NewPCG(seed, seed^0xbf58476d1ce4e5b9))
	for _, l := range labels {
		idx := byLabel[l]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		nTest := min(int(math.Round(float64(len(idx))*testFraction)), len(idx)-1)
		for k, i := range idx {
			s := Sample{Point: samples[i].Point.Clone(), Label: samples[i].Label}
			if k < nTest {
				test = append(test, s)
			} else {
				train = append(train, s)
			}
		}
	}

	rng.Shuffle(len(train), func(i, j int) { train[i], train[j] = train[j], train[i] })
	rng.Shuffle(len(test), func(i, j int) { test[i], test[j] = test[j], test[i] })
	return train, test, nil
}

// Points returns the points of samples, in order.
func Points(samples []Sample) []agglo.Point {
	out := make([]agglo.Point, len(samples))
	for i, s := range samples {
		out[i] = s.Point
	}
	return out
}

// Labels returns the blob labels of samples, in order.
func Labels(samples []Sample) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = s.Label
	}
	return out
}
