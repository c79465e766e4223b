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

package snapgrid_test

import (
	"fmt"
	"os"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid"
)

func ExampleGrid_Snap() {
	g := snapgrid.NewSquare(25)
	for _, p := range []vec.Vec2{{X: 12.5, Y: 0}, {X: 12.6, Y: -12.6}} {
		q := g.Snap(p)
		fmt.Printf("(%g, %g)\n", q.X, q.Y)
	}

	h := snapgrid.NewHexPointy(10)
	p := h.Snap(vec.Vec2{X: 1, Y: 9})
	fmt.Printf("(%.3f, %.3f)\n", p.X, p.Y)
	// Output:
	// (25, 0)
	// (25, -25)
	// (5.000, 8.660)
}

func ExampleGrid_Vertices() {
	g := snapgrid.NewHexPointy(10)
	viewport := rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 10}
	for v := range g.Vertices(viewport) {
		fmt.Printf("(%.2f, %.2f)\n", v.X, v.Y)
	}
	// Output:
	// (0.00, 0.00)
	// (10.00, 0.00)
	// (20.00, 0.00)
	// (5.00, 8.66)
	// (15.00, 8.66)
}

func ExampleConfig_Encode() {
	cfg := snapgrid.NewHexFlat(40).WithVisible(true).Config()
	if err := cfg.Encode(os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// spacing = 40.0
	// kind = "hex-flat"
	// visible = true
	// point_radius = 3.0
}
