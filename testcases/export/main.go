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

// Command export writes the vertices and snapped probe points of all
// test cases to testdata/vertices.json, for use by other implementations.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid"
	"seehuhn.de/go/snapgrid/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/vertices.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string          `json:"name"`
	Grid     snapgrid.Config `json:"grid"`
	Viewport [4]float64      `json:"viewport"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Vertices [][2]float64    `json:"vertices"`
	Snaps    []jsonSnap      `json:"snaps,omitempty"`
}

type jsonSnap struct {
	In      [2]float64 `json:"in"`
	Snap    [2]float64 `json:"snap"`
	Nearest [2]float64 `json:"nearest"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	v := tc.Viewport
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Grid:     tc.Grid.Config(),
		Viewport: [4]float64{v.LLx, v.LLy, v.URx, v.URy},
		Width:    tc.Width,
		Height:   tc.Height,
		Vertices: [][2]float64{},
	}
	for p := range tc.Grid.Vertices(tc.Viewport) {
		jtc.Vertices = append(jtc.Vertices, pair(p))
	}
	for _, p := range tc.Probes {
		jtc.Snaps = append(jtc.Snaps, jsonSnap{
			In:      pair(p),
			Snap:    pair(tc.Grid.Snap(p)),
			Nearest: pair(tc.Grid.Nearest(p)),
		})
	}
	return jtc
}

func pair(p vec.Vec2) [2]float64 {
	return [2]float64{p.X, p.Y}
}
