// seehuhn.de/go/snapgrid - snapping grids for 2D canvases
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sink

import (
	"fmt"
	"image/color"
	"io"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid"
)

// PlotFormats lists the output formats supported by [Plot.Encode].
var PlotFormats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// Plot collects circles into a gonum/plot figure.  Circles with the same
// colour and radius are grouped into one scatter series.
type Plot struct {
	viewport rect.Rect
	series   []*scatter
}

type scatter struct {
	color  color.NRGBA
	radius float64
	pts    plotter.XYs
}

var _ snapgrid.Painter = (*Plot)(nil)

// NewPlot returns an empty figure showing the given viewport.
func NewPlot(viewport rect.Rect) (*Plot, error) {
	if err := CheckViewport(viewport, 1, 1); err != nil {
		return nil, err
	}
	return &Plot{viewport: viewport}, nil
}

// FillCircle implements the [snapgrid.Painter] interface.
func (p *Plot) FillCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	if radius <= 0 || c.A == 0 {
		return
	}
	var s *scatter
	for _, cand := range p.series {
		if cand.color == c && cand.radius == radius {
			s = cand
			break
		}
	}
	if s == nil {
		s = &scatter{color: c, radius: radius}
		p.series = append(p.series, s)
	}
	s.pts = append(s.pts, plotter.XY{X: center.X, Y: center.Y})
}

// Len returns the number of circles collected so far.
func (p *Plot) Len() int {
	n := 0
	for _, s := range p.series {
		n += len(s.pts)
	}
	return n
}

// Figure builds the figure for an output area of the given width.  Glyph
// radii are scaled so that circles keep their size relative to the
// viewport.
func (p *Plot) Figure(width vg.Length) (*plot.Plot, error) {
	fig := plot.New()
	fig.HideAxes()
	fig.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	scale := float64(width) / (p.viewport.URx - p.viewport.LLx)
	for _, s := range p.series {
		sc, err := plotter.NewScatter(s.pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  s.color,
			Radius: vg.Length(s.radius * scale),
			Shape:  draw.CircleGlyph{},
		}
		fig.Add(sc)
	}

	// Add widens the axes to fit the data; clip to the viewport again.
	fig.X.Min, fig.X.Max = p.viewport.LLx, p.viewport.URx
	fig.Y.Min, fig.Y.Max = p.viewport.LLy, p.viewport.URy
	return fig, nil
}

// Encode renders the figure in the given format, for example "svg" or
// "png", and writes it to w.
func (p *Plot) Encode(w io.Writer, width, height vg.Length, format string) error {
	format = strings.ToLower(format)
	if !slices.Contains(PlotFormats, format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	fig, err := p.Figure(width)
	if err != nil {
		return err
	}
	wt, err := fig.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
