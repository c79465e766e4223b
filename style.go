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

package snapgrid

import "image/color"

// Default colours, used when Grid.Color is the zero value.
var (
	DefaultStrokeColor = color.NRGBA{R: 128, G: 128, B: 128, A: 80}
	DefaultPointColor  = color.NRGBA{R: 128, G: 128, B: 128, A: 120}
)

// Stroke describes how grid lines are drawn.
type Stroke struct {
	Width float64
	Color color.NRGBA
}

// Stroke returns the stroke for drawing grid lines: one unit wide, in
// the grid colour or in [DefaultStrokeColor].
func (g Grid) Stroke() Stroke {
	return Stroke{Width: 1, Color: g.colorOr(DefaultStrokeColor)}
}

// PointColor returns the colour for lattice vertex markers: the grid
// colour, or [DefaultPointColor] if no colour is set.
func (g Grid) PointColor() color.NRGBA {
	return g.colorOr(DefaultPointColor)
}

// HasColor reports whether a custom colour is set.
func (g Grid) HasColor() bool {
	return g.Color != (color.NRGBA{})
}

func (g Grid) colorOr(def color.NRGBA) color.NRGBA {
	if g.HasColor() {
		return g.Color
	}
	return def
}
