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

// Package testcases provides a table of grid scenes, shared by the tests
// of the drawing sinks and by the tools which generate reference output.
package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid"
)

// TestCase defines a single grid scene.
type TestCase struct {
	Name     string        // lowercase a-z, 0-9 and _ only
	Grid     snapgrid.Grid // the lattice and its style
	Viewport rect.Rect     // the part of the canvas shown
	Width    int           // output width in pixels
	Height   int           // output height in pixels
	Probes   []vec.Vec2    // points to snap (may be nil)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// view is a helper to create a viewport from its corners.
func view(x0, y0, x1, y1 float64) rect.Rect {
	return rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
}
