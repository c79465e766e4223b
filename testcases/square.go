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

package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid"
)

var squareCases = []TestCase{
	{
		Name:     "basic",
		Grid:     snapgrid.NewSquare(25),
		Viewport: view(0, 0, 200, 150),
		Width:    200,
		Height:   150,
		Probes:   []vec.Vec2{pt(12.5, 0), pt(12.6, -12.6), pt(37, 61), pt(-12.5, 12.4)},
	},
	{
		Name:     "offset",
		Grid:     snapgrid.NewSquare(25),
		Viewport: view(-37.5, -12.5, 162.5, 137.5),
		Width:    200,
		Height:   150,
		Probes:   []vec.Vec2{pt(-30, -10), pt(100.1, 99.9)},
	},
	{
		Name:     "zoomed",
		Grid:     snapgrid.NewSquare(10).WithPointRadius(1),
		Viewport: view(0, 0, 50, 50),
		Width:    200,
		Height:   200,
		Probes:   []vec.Vec2{pt(4.9, 5.1), pt(44, 46)},
	},
	{
		Name:     "colored",
		Grid:     snapgrid.NewSquare(40).WithColor(color.NRGBA{R: 200, G: 30, B: 30, A: 160}).WithPointRadius(4),
		Viewport: view(0, 0, 160, 120),
		Width:    160,
		Height:   120,
	},
}
