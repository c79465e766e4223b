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
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid"
)

// brailleBits gives the bit for each micro-pixel of a braille cell,
// indexed by [row][column].
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille is a monochrome terminal canvas.  Every character cell holds
// a 2×4 block of micro-pixels, shown using Unicode braille patterns.
// Colours are ignored.
type Braille struct {
	cols, rows int
	mask       [][]uint8 // per-cell dot pattern, indexed by [row][col]

	viewport rect.Rect
	sx, sy   float64 // micro-pixels per canvas unit
}

var _ snapgrid.Painter = (*Braille)(nil)

// NewBraille allocates a canvas of cols×rows character cells showing the
// given viewport.
func NewBraille(viewport rect.Rect, cols, rows int) (*Braille, error) {
	if err := CheckViewport(viewport, float64(cols), float64(rows)); err != nil {
		return nil, err
	}
	mask := make([][]uint8, rows)
	for i := range mask {
		mask[i] = make([]uint8, cols)
	}
	return &Braille{
		cols:     cols,
		rows:     rows,
		mask:     mask,
		viewport: viewport,
		sx:       float64(2*cols) / (viewport.URx - viewport.LLx),
		sy:       float64(4*rows) / (viewport.URy - viewport.LLy),
	}, nil
}

// Size returns the canvas size in character cells.
func (b *Braille) Size() (cols, rows int) {
	return b.cols, b.rows
}

// Clear removes all dots.
func (b *Braille) Clear() {
	for _, row := range b.mask {
		clear(row)
	}
}

// Set sets the micro-pixel (mx, my).  Coordinates outside the canvas
// are ignored.
func (b *Braille) Set(mx, my int) {
	if mx < 0 || my < 0 || mx >= 2*b.cols || my >= 4*b.rows {
		return
	}
	b.mask[my/4][mx/2] |= brailleBits[my%4][mx%2]
}

// IsSet reports whether the micro-pixel (mx, my) is set.
func (b *Braille) IsSet(mx, my int) bool {
	if mx < 0 || my < 0 || mx >= 2*b.cols || my >= 4*b.rows {
		return false
	}
	return b.mask[my/4][mx/2]&brailleBits[my%4][mx%2] != 0
}

// MicroPixel returns the micro-pixel which contains the canvas point p.
// The result may lie outside the canvas.
func (b *Braille) MicroPixel(p vec.Vec2) (mx, my int) {
	mx = int(math.Floor((p.X - b.viewport.LLx) * b.sx))
	my = int(math.Floor((p.Y - b.viewport.LLy) * b.sy))
	return mx, my
}

// Cell returns the character cell which contains the canvas point p.
func (b *Braille) Cell(p vec.Vec2) (col, row int, ok bool) {
	mx, my := b.MicroPixel(p)
	if mx < 0 || my < 0 || mx >= 2*b.cols || my >= 4*b.rows {
		return 0, 0, false
	}
	return mx / 2, my / 4, true
}

// Canvas returns the canvas point at the centre of character cell
// (col, row).
func (b *Braille) Canvas(col, row int) vec.Vec2 {
	return vec.Vec2{
		X: b.viewport.LLx + (float64(2*col)+1)/b.sx,
		Y: b.viewport.LLy + (float64(4*row)+2)/b.sy,
	}
}

// FillCircle implements the [snapgrid.Painter] interface.  All
// micro-pixels whose centres lie inside the circle are set; a circle
// smaller than a micro-pixel sets the micro-pixel containing its centre.
func (b *Braille) FillCircle(center vec.Vec2, radius float64, _ color.NRGBA) {
	if radius <= 0 {
		return
	}
	cx := (center.X - b.viewport.LLx) * b.sx
	cy := (center.Y - b.viewport.LLy) * b.sy
	rx := radius * b.sx
	ry := radius * b.sy

	hit := false
	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	for my := max(y0, 0); my <= min(y1, 4*b.rows-1); my++ {
		dy := (float64(my) + 0.5 - cy) / ry
		for mx := max(x0, 0); mx <= min(x1, 2*b.cols-1); mx++ {
			dx := (float64(mx) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				b.Set(mx, my)
				hit = true
			}
		}
	}
	if !hit {
		b.Set(int(math.Floor(cx)), int(math.Floor(cy)))
	}
}

// Lines returns the canvas as one string per row of character cells.
// Empty cells are shown as spaces.
func (b *Braille) Lines() []string {
	out := make([]string, b.rows)
	for y, masks := range b.mask {
		row := make([]rune, b.cols)
		for x, mask := range masks {
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
