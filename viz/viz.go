// Package viz draws 2-D clustering results as scatter plots: a static image
// through gonum/plot and an interactive HTML page through go-echarts.
package viz

import (
	"errors"
	"fmt"

	"github.com/TrevorS/agglo"
)

// ErrNot2D reports a result whose points are not 2-D.
var ErrNot2D = errors.New("only 2-D results can be plotted")

// Options controls plot labelling and size.
type Options struct {
	// Title is drawn above the plot. Default: "Agglomerative clustering".
	Title string
	// Width and Height are in points for images and pixels for HTML.
	// Default: 600 x 600.
	Width, Height int
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Agglomerative clustering"
	}
	if o.Width <= 0 {
		o.Width = 600
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	return o
}

// series is one cluster's points, ready for either backend.
type series struct {
	name     string
	points   []agglo.Point
	centroid agglo.Point
}

func collect(res *agglo.Result) ([]series, error) {
	if res == nil || len(res.Clusters) == 0 {
		return nil, errors.New("viz: empty result")
	}
	out := make([]series, len(res.Clusters))
	for i, c := range res.Clusters {
		pts := c.Points()
		for _, p := range pts {
			if p.Dim() != 2 {
				return nil, fmt.Errorf("viz: cluster %d has a %d-d point: %w", i, p.Dim(), ErrNot2D)
			}
		}
		out[i] = series{
			name:     fmt.Sprintf("cluster %d (n=%d)", i, len(pts)),
			points:   pts,
			centroid: res.Centroids[i],
		}
	}
	return out, nil
}
