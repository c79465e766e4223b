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
	"image/color"
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Painter is a drawing sink which can render filled circles.
// Coordinates are in the same space as the viewport passed to
// [Grid.Draw].
type Painter interface {
	FillCircle(center vec.Vec2, radius float64, c color.NRGBA)
}

// Draw renders the lattice vertices inside viewport as filled circles of
// radius g.PointRadius, using the colour returned by [Grid.PointColor].
// If g.Visible is false, Draw does nothing.
func (g Grid) Draw(viewport rect.Rect, p Painter) {
	if !g.Visible {
		return
	}

	col := g.PointColor()
	for v := range g.Vertices(viewport) {
		p.FillCircle(v, g.PointRadius, col)
	}
}

// Vertices returns the lattice vertices needed to cover viewport.
//
// For square lattices, all vertices of the integer bounding box of the
// viewport are returned, so some points may lie up to one cell outside
// the viewport.  For hexagonal lattices only vertices contained in the
// viewport (boundary included) are returned.
//
// The sequence is finite, deterministic and may be iterated more than
// once.  Square lattices are enumerated column by column, pointy-top
// lattices row by row and flat-top lattices column by column.
func (g Grid) Vertices(viewport rect.Rect) iter.Seq[vec.Vec2] {
	switch g.Kind {
	case HexPointy:
		return g.hexPointyVertices(viewport)
	case HexFlat:
		return g.hexFlatVertices(viewport)
	default:
		return g.squareVertices(viewport)
	}
}

// Count returns the number of points in g.Vertices(viewport).
func (g Grid) Count(viewport rect.Rect) int {
	n := 0
	for range g.Vertices(viewport) {
		n++
	}
	return n
}

func (g Grid) squareVertices(viewport rect.Rect) iter.Seq[vec.Vec2] {
	s := g.Spacing
	minX, maxX := span(viewport.LLx, viewport.URx, s, 0)
	minY, maxY := span(viewport.LLy, viewport.URy, s, 0)

	return func(yield func(vec.Vec2) bool) {
		for xi := minX; xi <= maxX; xi++ {
			for yi := minY; yi <= maxY; yi++ {
				if !yield(vec.Vec2{X: float64(xi) * s, Y: float64(yi) * s}) {
					return
				}
			}
		}
	}
}

func (g Grid) hexPointyVertices(viewport rect.Rect) iter.Seq[vec.Vec2] {
	colSpacing := g.Spacing
	rowSpacing := g.Spacing * hexRowFactor
	minRow, maxRow := span(viewport.LLy, viewport.URy, rowSpacing, 1)
	minCol, maxCol := span(viewport.LLx, viewport.URx, colSpacing, 1)

	return func(yield func(vec.Vec2) bool) {
		for row := minRow; row <= maxRow; row++ {
			y := float64(row) * rowSpacing
			offset := g.rowOffset(row)
			for col := minCol; col <= maxCol; col++ {
				v := vec.Vec2{X: float64(col)*colSpacing + offset, Y: y}
				if !contains(viewport, v) {
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (g Grid) hexFlatVertices(viewport rect.Rect) iter.Seq[vec.Vec2] {
	colSpacing := g.Spacing * hexRowFactor
	rowSpacing := g.Spacing
	minCol, maxCol := span(viewport.LLx, viewport.URx, colSpacing, 1)
	minRow, maxRow := span(viewport.LLy, viewport.URy, rowSpacing, 1)

	return func(yield func(vec.Vec2) bool) {
		for col := minCol; col <= maxCol; col++ {
			x := float64(col) * colSpacing
			offset := g.rowOffset(col)
			for row := minRow; row <= maxRow; row++ {
				v := vec.Vec2{X: x, Y: float64(row)*rowSpacing + offset}
				if !contains(viewport, v) {
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// span returns the inclusive range of lattice indices covering the
// interval [lo, hi] for the given step, widened by margin on both sides.
func span(lo, hi, step float64, margin int) (int, int) {
	first := int(math.Floor(lo/step)) - margin
	last := int(math.Ceil(hi/step)) + margin
	return first, last
}

// contains reports whether v lies inside r, boundary included.
func contains(r rect.Rect, v vec.Vec2) bool {
	return v.X >= r.LLx && v.X <= r.URx && v.Y >= r.LLy && v.Y <= r.URy
}
