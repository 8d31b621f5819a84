/*
 * chemplot.go, part of gtno.
 *
 * Copyright 2026 The gtno authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package chemplot draws the energy profile and energy histogram of a dataset.
//The format of the picture is taken from the extension of the file name
//(png, svg, pdf, eps, jpg or tiff).
package chemplot

import (
	"errors"
	"image/color"

	"github.com/luke-a-thompson/gtno"
	"github.com/luke-a-thompson/gtno/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	badColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//EnergyPlot plots the energy of each frame of D against its timestep,
//and saves the plot to filename. Frames that are not aligned are marked with a cross.
func EnergyPlot(D gtno.Dataset, title, filename string) error {
	if D.Len() == 0 {
		return errors.New("gtno/chemplot: nothing to plot")
	}
	p := basicPlot(title, "Timestep", "Energy")
	pts := make(plotter.XYs, D.Len())
	var bad plotter.XYs
	for i := range pts {
		r, _ := D.Get(i)
		pts[i].X = float64(r.Timestep)
		pts[i].Y = r.Energy
		if !r.Aligned() {
			bad = append(bad, pts[i])
		}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = lineColor
	l.LineStyle.Width = vg.Points(1)
	p.Add(l)
	if len(bad) > 0 {
		s, err := plotter.NewScatter(bad)
		if err != nil {
			return err
		}
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Color = badColor
		p.Add(s)
		p.Legend.Add("misaligned", s)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

//HistoPlot draws h as a step outline and saves the plot to filename.
func HistoPlot(h *histo.Data, title, filename string) error {
	if h == nil {
		return errors.New("gtno/chemplot: nil histogram")
	}
	p := basicPlot(title, "Energy", "Count")
	if h.Normalized() {
		p.Y.Label.Text = "Fraction"
	}
	d := h.Dividers()
	bins := h.View()
	pts := make(plotter.XYs, 0, 2*len(bins)+2)
	pts = append(pts, plotter.XY{X: d[0], Y: 0})
	for i, v := range bins {
		pts = append(pts, plotter.XY{X: d[i], Y: v}, plotter.XY{X: d[i+1], Y: v})
	}
	pts = append(pts, plotter.XY{X: d[len(d)-1], Y: 0})
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = lineColor
	l.FillColor = color.RGBA{R: 31, G: 119, B: 180, A: 90}
	p.Add(l)
	p.Y.Min = 0
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
