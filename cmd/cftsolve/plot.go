package main

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/setcover/cft"
)

// convergence records the bounds of every refinement round.
type convergence struct {
	lower     plotter.XYs
	incumbent plotter.XYs
	restrict  plotter.XYs
}

// observe is installed as the cft round hook.
func (c *convergence) observe(rs cft.RoundStats) {
	x := float64(rs.Round)
	c.lower = append(c.lower, plotter.XY{X: x, Y: rs.LowerBound})
	c.incumbent = append(c.incumbent, plotter.XY{X: x, Y: rs.Incumbent})
	if !math.IsInf(rs.RoundBound, 0) {
		c.restrict = append(c.restrict, plotter.XY{X: x, Y: rs.RoundBound})
	}
}

// save draws the chart; the file extension selects the format (png, svg, pdf).
func (c *convergence) save(path, title string) error {
	if len(c.incumbent) == 0 {
		return fmt.Errorf("plot: no rounds recorded")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "round"
	p.Y.Label.Text = "cost"

	series := []struct {
		name string
		xys  plotter.XYs
	}{
		{"incumbent", c.incumbent},
		{"lower bound", c.lower},
		{"round bound", c.restrict},
	}
	for k, s := range series {
		if len(s.xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(s.xys)
		if err != nil {
			return fmt.Errorf("plot: %s: %w", s.name, err)
		}
		line.LineStyle.Width = vg.Points(1)
		if k > 0 {
			line.LineStyle.Dashes = []vg.Length{vg.Points(float64(2 * k)), vg.Points(2)}
		}
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}

	return nil
}
