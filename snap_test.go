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
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestSnapSquare(t *testing.T) {
	g := NewSquare(25)
	cases := []struct {
		in, want vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 0}},
		{vec.Vec2{X: 12.5, Y: 0}, vec.Vec2{X: 25, Y: 0}},    // half-way rounds up
		{vec.Vec2{X: -12.5, Y: 0}, vec.Vec2{X: -25, Y: 0}},  // ... and away from zero
		{vec.Vec2{X: 12.6, Y: -12.6}, vec.Vec2{X: 25, Y: -25}},
		{vec.Vec2{X: 12.4, Y: 37.4}, vec.Vec2{X: 0, Y: 25}},
		{vec.Vec2{X: 99.9, Y: -0.1}, vec.Vec2{X: 100, Y: 0}},
	}
	for _, c := range cases {
		got := g.Snap(c.in)
		if got != c.want {
			t.Errorf("Snap(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestHexPointyRowOffset(t *testing.T) {
	g := NewHexPointy(10)
	rowSpacing := 10 * hexRowFactor

	row0 := g.Snap(vec.Vec2{X: 0.1, Y: 0.2})
	row1 := g.Snap(vec.Vec2{X: 0.1, Y: rowSpacing + 0.2})
	row2 := g.Snap(vec.Vec2{X: 0.1, Y: 2*rowSpacing - 0.2})

	if row0 != (vec.Vec2{X: 0, Y: 0}) {
		t.Errorf("row 0: got %v", row0)
	}
	if row1.X-row0.X != 5 {
		t.Errorf("row 1 offset: got %g, want 5", row1.X-row0.X)
	}
	if row1.Y != rowSpacing {
		t.Errorf("row 1: y = %g, want %g", row1.Y, rowSpacing)
	}
	if row2.X != row0.X {
		t.Errorf("row 2 offset: got %g, want 0", row2.X-row0.X)
	}

	// negative odd rows are shifted as well
	rowM1 := g.Snap(vec.Vec2{X: 0.1, Y: -rowSpacing})
	if rowM1.X != 5 {
		t.Errorf("row -1: x = %g, want 5", rowM1.X)
	}
}

func TestHexFlatColumnOffset(t *testing.T) {
	g := NewHexFlat(10)
	colSpacing := 10 * hexRowFactor

	col0 := g.Snap(vec.Vec2{X: 0.2, Y: 0.1})
	col1 := g.Snap(vec.Vec2{X: colSpacing - 0.2, Y: 0.1})
	col2 := g.Snap(vec.Vec2{X: 2 * colSpacing, Y: 0.1})
	colM1 := g.Snap(vec.Vec2{X: -colSpacing, Y: 0.1})

	if col0 != (vec.Vec2{X: 0, Y: 0}) {
		t.Errorf("column 0: got %v", col0)
	}
	if col1 != (vec.Vec2{X: colSpacing, Y: 5}) {
		t.Errorf("column 1: got %v", col1)
	}
	if col2.Y != 0 {
		t.Errorf("column 2: y = %g, want 0", col2.Y)
	}
	if colM1.Y != 5 {
		t.Errorf("column -1: y = %g, want 5", colM1.Y)
	}
}

// TestSnapRowFirst checks that hexagonal snapping picks the row by y
// alone, even when a vertex of the neighbouring row is closer.
func TestSnapRowFirst(t *testing.T) {
	g := NewHexPointy(10)
	p := vec.Vec2{X: 0, Y: 4.4}

	got := g.Snap(p)
	want := vec.Vec2{X: -5, Y: 10 * hexRowFactor}
	if got != want {
		t.Errorf("Snap(%v) = %v, want %v", p, got, want)
	}

	nearest := g.Nearest(p)
	if nearest != (vec.Vec2{X: 0, Y: 0}) {
		t.Errorf("Nearest(%v) = %v, want (0, 0)", p, nearest)
	}
}

func TestSnapIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, kind := range Kinds {
		for _, spacing := range []float64{1, 7.3, 25, 100} {
			g := New(kind, spacing)
			for range 1000 {
				p := randomPoint(rng, 1000)
				once := g.Snap(p)
				twice := g.Snap(once)
				if once != twice {
					t.Fatalf("%s/%g: Snap(%v) = %v, Snap(Snap) = %v",
						kind, spacing, p, once, twice)
				}
			}
		}
	}
}

func TestSnapOnLattice(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, kind := range Kinds {
		g := New(kind, 12.5)
		for range 1000 {
			p := randomPoint(rng, 500)
			for _, v := range []vec.Vec2{g.Snap(p), g.Nearest(p)} {
				if !onLattice(g, v) {
					t.Fatalf("%s: %v is not a lattice vertex (input %v)", kind, v, p)
				}
			}
		}
	}
}

func TestNearestNotWorse(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for _, kind := range Kinds {
		g := New(kind, 10)
		for range 2000 {
			p := randomPoint(rng, 200)
			s := g.Snap(p)
			n := g.Nearest(p)
			if dist2(p, n) > dist2(p, s) {
				t.Fatalf("%s: Nearest(%v) = %v is further away than Snap = %v",
					kind, p, n, s)
			}
			if kind == Square && n != s {
				t.Fatalf("square: Nearest(%v) = %v, Snap = %v", p, n, s)
			}
		}
	}
}

// TestNearestIsNearest compares Nearest against a brute force search
// over a neighbourhood of lattice vertices.
func TestNearestIsNearest(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, kind := range []Kind{HexPointy, HexFlat} {
		g := New(kind, 10)
		for range 500 {
			p := randomPoint(rng, 50)
			n := g.Nearest(p)

			best := math.Inf(1)
			for row := -10; row <= 10; row++ {
				for col := -10; col <= 10; col++ {
					v := latticePoint(g, row, col)
					best = min(best, dist2(p, v))
				}
			}
			if d := dist2(p, n); d > best+1e-9 {
				t.Fatalf("%s: Nearest(%v) = %v at distance² %g, brute force %g",
					kind, p, n, d, best)
			}
		}
	}
}

func randomPoint(rng *rand.Rand, r float64) vec.Vec2 {
	return vec.Vec2{
		X: (2*rng.Float64() - 1) * r,
		Y: (2*rng.Float64() - 1) * r,
	}
}

// latticePoint returns the vertex in hexagonal row (column, for flat-top
// lattices) i and position j along that row.
func latticePoint(g Grid, i, j int) vec.Vec2 {
	rowSpacing := g.Spacing * hexRowFactor
	offset := g.rowOffset(i)
	if g.Kind == HexFlat {
		return vec.Vec2{X: float64(i) * rowSpacing, Y: float64(j)*g.Spacing + offset}
	}
	return vec.Vec2{X: float64(j)*g.Spacing + offset, Y: float64(i) * rowSpacing}
}

// onLattice reconstructs the lattice indices of v and checks that they
// are integers.
func onLattice(g Grid, v vec.Vec2) bool {
	const eps = 1e-9
	isInt := func(x float64) bool {
		return math.Abs(x-math.Round(x)) < eps
	}

	switch g.Kind {
	case HexPointy:
		row := v.Y / (g.Spacing * hexRowFactor)
		if !isInt(row) {
			return false
		}
		return isInt((v.X - g.rowOffset(int(math.Round(row)))) / g.Spacing)
	case HexFlat:
		col := v.X / (g.Spacing * hexRowFactor)
		if !isInt(col) {
			return false
		}
		return isInt((v.Y - g.rowOffset(int(math.Round(col)))) / g.Spacing)
	default:
		return isInt(v.X/g.Spacing) && isInt(v.Y/g.Spacing)
	}
}

func BenchmarkSnap(b *testing.B) {
	p := vec.Vec2{X: 123.4, Y: -567.8}
	for _, kind := range Kinds {
		g := New(kind, 25)
		b.Run(kind.String(), func(b *testing.B) {
			for b.Loop() {
				p = g.Snap(p)
			}
		})
	}
}
