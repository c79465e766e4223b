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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/snapgrid"
)

// PDF draws onto a single-page PDF file.
//
// The basic PDF imaging model has no alpha channel.  Colours are
// therefore composited over white paper before they are written.
type PDF struct {
	page *document.Page
}

var _ snapgrid.Painter = (*PDF)(nil)

// NewPDF creates a PDF file with a single width×height page (in PDF
// points) showing the given viewport.  The caller must call Close to
// complete the file.
func NewPDF(fileName string, viewport rect.Rect, width, height float64) (*PDF, error) {
	if err := CheckViewport(viewport, width, height); err != nil {
		return nil, err
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// PDF places the origin in the bottom-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.Transform(viewTransform(viewport, width, height))

	return &PDF{page: page}, nil
}

// FillCircle implements the [snapgrid.Painter] interface.
func (p *PDF) FillCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	if radius <= 0 || c.A == 0 {
		return
	}

	r, g, b := overWhite(c)
	p.page.SetFillColor(pdfcolor.DeviceRGB{r, g, b})
	for cmd, pts := range Circle(center, radius).Iter() {
		switch cmd {
		case path.CmdMoveTo:
			p.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			p.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.page.ClosePath()
		}
	}
	p.page.Fill()
}

// Close writes the page and closes the file.
func (p *PDF) Close() error {
	return p.page.Close()
}

// overWhite composites c over opaque white and returns the resulting
// colour components in the range [0, 1].
func overWhite(c color.NRGBA) (r, g, b float64) {
	a := float64(c.A) / 255
	blend := func(v uint8) float64 {
		return a*float64(v)/255 + (1 - a)
	}
	return blend(c.R), blend(c.G), blend(c.B)
}
