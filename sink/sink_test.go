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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestCircle(t *testing.T) {
	center := vec.Vec2{X: 3, Y: -2}
	const r = 5.0
	c := Circle(center, r)

	var cmds []path.Command
	for cmd := range c.Iter() {
		cmds = append(cmds, cmd)
	}
	want := []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], want[i])
		}
	}

	// The end points of the four arcs lie on the circle.
	for i := 0; i < len(c.Coords); i += 3 {
		if d := c.Coords[i].Sub(center).Length(); math.Abs(d-r) > 1e-9 {
			t.Errorf("point %d: distance %g from centre", i, d)
		}
	}
}

func TestCheckViewport(t *testing.T) {
	good := rect.Rect{LLx: -10, LLy: -10, URx: 10, URy: 10}
	if err := CheckViewport(good, 100, 100); err != nil {
		t.Errorf("valid viewport rejected: %v", err)
	}

	cases := []struct {
		name string
		vp   rect.Rect
		w, h float64
	}{
		{"empty", rect.Rect{LLx: 1, LLy: 0, URx: 1, URy: 5}, 10, 10},
		{"inverted", rect.Rect{LLx: 0, LLy: 5, URx: 5, URy: 0}, 10, 10},
		{"NaN", rect.Rect{LLx: math.NaN(), URx: 5, URy: 5}, 10, 10},
		{"infinite", rect.Rect{URx: math.Inf(1), URy: 5}, 10, 10},
		{"zero width", good, 0, 10},
		{"negative height", good, 10, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := CheckViewport(c.vp, c.w, c.h); !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestViewTransform(t *testing.T) {
	vp := rect.Rect{LLx: -50, LLy: 20, URx: 50, URy: 70}
	m := viewTransform(vp, 200, 100)

	apply := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
	}
	cases := []struct{ in, want vec.Vec2 }{
		{vec.Vec2{X: -50, Y: 20}, vec.Vec2{X: 0, Y: 0}},
		{vec.Vec2{X: 50, Y: 70}, vec.Vec2{X: 200, Y: 100}},
		{vec.Vec2{X: 0, Y: 45}, vec.Vec2{X: 100, Y: 50}},
	}
	for _, c := range cases {
		if got := apply(c.in); got.Sub(c.want).Length() > 1e-9 {
			t.Errorf("%v: got %v, want %v", c.in, got, c.want)
		}
	}
}
