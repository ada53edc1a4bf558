package render

import (
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"kmeanselbow/internal/sweep"
)

// WriteElbowPNG draws inertia against k as a PNG image.
func WriteElbowPNG(w io.Writer, sr *sweep.Result) error {
	p := plot.New()
	p.Title.Text = "Elbow"
	p.X.Label.Text = "k"
	p.Y.Label.Text = "inertia"
	p.Add(plotter.NewGrid())

	ys := sr.Inertias()
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i] = plotter.XY{X: float64(i + 1), Y: y}
	}
	line, marks, err := plotter.NewLinePoints(pts)
	if err != nil {
		return errors.Wrap(err, "elbow line")
	}
	line.Width = vg.Points(1)
	p.Add(line, marks)

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return errors.Wrap(err, "encode elbow plot")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "write elbow plot")
	}
	return nil
}
