package viz

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/TrevorS/agglo"
)

// newPlot builds the gonum plot: one scatter per cluster in its own colour
// and shape, plus a series of crosses at the centroids.
func newPlot(res *agglo.Result, opts Options) (*plot.Plot, error) {
	all, err := collect(res)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	centroids := make(plotter.XYs, 0, len(all))
	for i, s := range all {
		pts := make(plotter.XYs, len(s.points))
		for k, pt := range s.points {
			pts[k] = plotter.XY{X: pt[0], Y: pt[1]}
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", i, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Shape = plotutil.Shape(i)
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add(s.name, scatter)

		centroids = append(centroids, plotter.XY{X: s.centroid[0], Y: s.centroid[1]})
	}

	marks, err := plotter.NewScatter(centroids)
	if err != nil {
		return nil, fmt.Errorf("centroids: %w", err)
	}
	marks.GlyphStyle.Shape = draw.CrossGlyph{}
	marks.GlyphStyle.Radius = vg.Points(7)
	p.Add(marks)
	p.Legend.Add("centroids", marks)
	p.Legend.Top = true

	return p, nil
}

// WritePNG renders res to w as a PNG image.
func WritePNG(w io.Writer, res *agglo.Result, opts Options) error {
	return writeImage(w, res, opts, "png")
}

// SavePlot renders res to path. The image format follows the file
// extension (png, svg, pdf, jpg, ...).
func SavePlot(path string, res *agglo.Result, opts Options) error {
	opts = opts.withDefaults()
	p, err := newPlot(res, opts)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Points(float64(opts.Width)), vg.Points(float64(opts.Height)), path); err != nil {
		return fmt.Errorf("failed to save plot to %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeImage(w io.Writer, res *agglo.Result, opts Options, format string) error {
	opts = opts.withDefaults()
	p, err := newPlot(res, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Points(float64(opts.Width)), vg.Points(float64(opts.Height)), strings.ToLower(format))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
