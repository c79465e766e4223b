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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// hexRowFactor is the ratio between the row spacing and the column
// spacing of a hexagonal lattice, sqrt(3)/2.
const hexRowFactor = 0.8660254037844386

// Snap returns the lattice vertex to which p snaps.
//
// For square lattices this is the nearest vertex, with ties rounded away
// from zero.  For hexagonal lattices the nearest row (or column, for
// flat-top lattices) is chosen first and the nearest vertex within that
// row second.  Near row boundaries this can differ from the vertex with
// the smallest Euclidean distance; use [Grid.Nearest] for that.
func (g Grid) Snap(p vec.Vec2) vec.Vec2 {
	switch g.Kind {
	case HexPointy:
		return g.snapHexPointy(p)
	case HexFlat:
		return g.snapHexFlat(p)
	default:
		return g.snapSquare(p)
	}
}

func (g Grid) snapSquare(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: math.Round(p.X/g.Spacing) * g.Spacing,
		Y: math.Round(p.Y/g.Spacing) * g.Spacing,
	}
}

func (g Grid) snapHexPointy(p vec.Vec2) vec.Vec2 {
	rowSpacing := g.Spacing * hexRowFactor

	row := math.Round(p.Y / rowSpacing)
	offset := g.rowOffset(int(row))
	x := math.Round((p.X-offset)/g.Spacing)*g.Spacing + offset

	return vec.Vec2{X: x, Y: row * rowSpacing}
}

func (g Grid) snapHexFlat(p vec.Vec2) vec.Vec2 {
	colSpacing := g.Spacing * hexRowFactor

	col := math.Round(p.X / colSpacing)
	offset := g.rowOffset(int(col))
	y := math.Round((p.Y-offset)/g.Spacing)*g.Spacing + offset

	return vec.Vec2{X: col * colSpacing, Y: y}
}

// rowOffset returns the shift of hexagonal row (or column) i along the
// row direction: half the spacing for odd i, zero otherwise.
func (g Grid) rowOffset(i int) float64 {
	if i%2 != 0 {
		return g.Spacing / 2
	}
	return 0
}

// Nearest returns the lattice vertex with the smallest Euclidean distance
// to p.  For square lattices the result equals Snap(p).  For hexagonal
// lattices the vertex found by Snap is compared against the closest
// vertices of the two neighbouring rows (columns for flat-top lattices);
// ties keep the Snap result.
func (g Grid) Nearest(p vec.Vec2) vec.Vec2 {
	best := g.Snap(p)
	if g.Kind != HexPointy && g.Kind != HexFlat {
		return best
	}
	bestDist := dist2(p, best)

	rowSpacing := g.Spacing * hexRowFactor
	for _, delta := range []float64{-1, 1} {
		var cand vec.Vec2
		if g.Kind == HexPointy {
			row := math.Round(p.Y/rowSpacing) + delta
			offset := g.rowOffset(int(row))
			cand = vec.Vec2{
				X: math.Round((p.X-offset)/g.Spacing)*g.Spacing + offset,
				Y: row * rowSpacing,
			}
		} else {
			col := math.Round(p.X/rowSpacing) + delta
			offset := g.rowOffset(int(col))
			cand = vec.Vec2{
				X: col * rowSpacing,
				Y: math.Round((p.Y-offset)/g.Spacing)*g.Spacing + offset,
			}
		}
		if d := dist2(p, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

func dist2(a, b vec.Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
