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

var hexPointyCases = []TestCase{
	{
		Name:     "basic",
		Grid:     snapgrid.NewHexPointy(25),
		Viewport: view(0, 0, 200, 150),
		Width:    200,
		Height:   150,
		Probes:   []vec.Vec2{pt(1, 9), pt(12.5, 21.65), pt(60, 40)},
	},
	{
		Name:     "negative",
		Grid:     snapgrid.NewHexPointy(20),
		Viewport: view(-100, -100, 100, 100),
		Width:    200,
		Height:   200,
		Probes:   []vec.Vec2{pt(-9, -17), pt(-51, 33)},
	},
	{
		Name:     "dense",
		Grid:     snapgrid.NewHexPointy(8).WithPointRadius(1.5),
		Viewport: view(0, 0, 128, 96),
		Width:    256,
		Height:   192,
	},
	{
		Name:     "colored",
		Grid:     snapgrid.NewHexPointy(30).WithColor(color.NRGBA{R: 20, G: 90, B: 200, A: 255}),
		Viewport: view(10, 10, 170, 130),
		Width:    160,
		Height:   120,
	},
}

var hexFlatCases = []TestCase{
	{
		Name:     "basic",
		Grid:     snapgrid.NewHexFlat(25),
		Viewport: view(0, 0, 200, 150),
		Width:    200,
		Height:   150,
		Probes:   []vec.Vec2{pt(9, 1), pt(21.65, 12.5), pt(40, 60)},
	},
	{
		Name:     "negative",
		Grid:     snapgrid.NewHexFlat(20),
		Viewport: view(-100, -100, 100, 100),
		Width:    200,
		Height:   200,
		Probes:   []vec.Vec2{pt(-17, -9), pt(33, -51)},
	},
	{
		Name:     "dense",
		Grid:     snapgrid.NewHexFlat(8).WithPointRadius(1.5),
		Viewport: view(0, 0, 96, 128),
		Width:    192,
		Height:   256,
	},
}
