package plot

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNotTwoVariables rejects problems the 2-D renderer cannot draw.
var ErrNotTwoVariables = errors.New("plot: graph requires exactly 2 decision variables")

// Options controls the rendered graph. Zero values mean automatic limits,
// the default title and no optimum marker.
type Options struct {
	Title     string
	XLim      *[2]float64
	YLim      *[2]float64
	MarkPoint *[2]float64
}

const defaultTitle = "Gráfico de Restricciones y Función Objetivo"

// RenderPNG draws the constraint lines and the objective direction of a
// two-variable problem and returns the encoded PNG bytes.
func RenderPNG(c []float64, li [][]float64, ld []float64, opts Options) ([]byte, error) {
	p, err := build(c, li, ld, opts)
	if err != nil {
		return nil, err
	}

	w, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("plot: encoding png: %w", err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("plot: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderToFile draws the same graph and saves it at path.
func RenderToFile(c []float64, li [][]float64, ld []float64, opts Options, path string) error {
	p, err := build(c, li, ld, opts)
	if err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: saving %s: %w", path, err)
	}
	return nil
}

func build(c []float64, li [][]float64, ld []float64, opts Options) (*plot.Plot, error) {
	if len(c) != 2 {
		return nil, ErrNotTwoVariables
	}
	if len(li) != len(ld) {
		return nil, fmt.Errorf("plot: %d constraint rows for %d right-hand sides", len(li), len(ld))
	}
	for i, row := range li {
		if len(row) != 2 {
			return nil, fmt.Errorf("plot: constraint row %d has %d coefficients: %w", i+1, len(row), ErrNotTwoVariables)
		}
	}

	xMin, xMax, yMin, yMax := limits(li, ld, opts)

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = defaultTitle
	}
	p.X.Label.Text = "x1"
	p.Y.Label.Text = "x2"
	p.X.Min, p.X.Max = xMin, xMax
	p.Y.Min, p.Y.Max = yMin, yMax
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, row := range li {
		line, err := constraintLine(row, ld[i], xMin, xMax, yMin, yMax)
		if err != nil {
			return nil, err
		}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Restricción %d", i+1), line)
	}

	objective, err := objectiveLine(c, xMin, xMax, yMin, yMax)
	if err != nil {
		return nil, err
	}
	p.Add(objective)
	p.Legend.Add("Función Objetivo", objective)

	if opts.MarkPoint != nil {
		mark, err := plotter.NewScatter(plotter.XYs{{X: opts.MarkPoint[0], Y: opts.MarkPoint[1]}})
		if err != nil {
			return nil, fmt.Errorf("plot: optimum marker: %w", err)
		}
		mark.GlyphStyle.Radius = vg.Points(4)
		mark.GlyphStyle.Color = color.Black
		p.Add(mark)
		p.Legend.Add("Óptimo", mark)
	}

	return p, nil
}

// constraintLine draws a*x1 + b*x2 = r inside the viewport: a sloped line
// when b is non-zero, a vertical line otherwise.
func constraintLine(row []float64, r, xMin, xMax, yMin, yMax float64) (*plotter.Line, error) {
	a, b := row[0], row[1]

	var pts plotter.XYs
	if b != 0 {
		pts = plotter.XYs{
			{X: xMin, Y: (r - a*xMin) / b},
			{X: xMax, Y: (r - a*xMax) / b},
		}
	} else if a != 0 {
		x := r / a
		pts = plotter.XYs{{X: x, Y: yMin}, {X: x, Y: yMax}}
	} else {
		// Degenerate 0 = r row: nothing to draw, keep an empty line so
		// legend numbering stays aligned with the constraint index.
		pts = plotter.XYs{}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plot: constraint line: %w", err)
	}
	return line, nil
}

// objectiveLine draws the level set c1*x1 + c2*x2 = 0 through the origin as
// a dashed guide for the optimization direction.
func objectiveLine(c []float64, xMin, xMax, yMin, yMax float64) (*plotter.Line, error) {
	var pts plotter.XYs
	if c[1] != 0 {
		pts = plotter.XYs{
			{X: xMin, Y: -c[0] * xMin / c[1]},
			{X: xMax, Y: -c[0] * xMax / c[1]},
		}
	} else {
		pts = plotter.XYs{{X: 0, Y: yMin}, {X: 0, Y: yMax}}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plot: objective line: %w", err)
	}
	line.LineStyle.Color = color.RGBA{R: 220, A: 255}
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	return line, nil
}

// limits derives viewport bounds from the axis intercepts of every
// constraint and the pairwise line intersections, restricted to the
// non-negative quadrant with a 10% margin. Explicit options win, and the
// marked optimum is always kept inside.
func limits(li [][]float64, ld []float64, opts Options) (xMin, xMax, yMin, yMax float64) {
	var xs, ys []float64

	for i, row := range li {
		a, b := row[0], row[1]
		if a != 0 {
			xs = append(xs, ld[i]/a)
		}
		if b != 0 {
			ys = append(ys, ld[i]/b)
		}
	}

	for i := 0; i < len(li); i++ {
		for j := i + 1; j < len(li); j++ {
			a1, b1, r1 := li[i][0], li[i][1], ld[i]
			a2, b2, r2 := li[j][0], li[j][1], ld[j]
			det := a1*b2 - a2*b1
			if math.Abs(det) > 1e-12 {
				xs = append(xs, (r1*b2-r2*b1)/det)
				ys = append(ys, (a1*r2-a2*r1)/det)
			}
		}
	}

	xMin, xMax = 0, axisMax(xs)
	yMin, yMax = 0, axisMax(ys)

	if opts.XLim != nil {
		xMin, xMax = opts.XLim[0], opts.XLim[1]
	}
	if opts.YLim != nil {
		yMin, yMax = opts.YLim[0], opts.YLim[1]
	}

	if opts.MarkPoint != nil {
		mx, my := opts.MarkPoint[0], opts.MarkPoint[1]
		if !math.IsInf(mx, 0) && !math.IsNaN(mx) && mx >= 0 {
			xMax = math.Max(xMax, math.Max(mx*1.1, 1))
		}
		if !math.IsInf(my, 0) && !math.IsNaN(my) && my >= 0 {
			yMax = math.Max(yMax, math.Max(my*1.1, 1))
		}
	}

	return xMin, xMax, yMin, yMax
}

func axisMax(vals []float64) float64 {
	max := 0.0
	found := false
	for _, v := range vals {
		if math.IsInf(v, 0) || math.IsNaN(v) || v < 0 {
			continue
		}
		found = true
		if v > max {
			max = v
		}
	}
	if !found {
		return 10
	}
	return math.Max(1, max) * 1.1
}
