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

// Package tui implements an interactive terminal preview of a snapping
// grid.  The lattice is drawn using braille characters; a free cursor,
// moved with the arrow keys or the mouse, is snapped to the lattice.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid"
)

const (
	// unitsPerDot is the size of a braille micro-pixel in canvas units.
	unitsPerDot = 2.0

	minSpacing = 4.0
	maxSpacing = 400.0

	// spacingFactor is applied by the grow and shrink keys.
	spacingFactor = 1.25
)

// Model is the Bubble Tea model of the preview.
type Model struct {
	width  int
	height int

	grid     snapgrid.Grid
	snapping bool
	nearest  bool

	cursor vec.Vec2   // free cursor, in canvas coordinates
	placed []vec.Vec2 // points placed with the place key

	keys   keyMap
	status string
}

// New returns a preview of g.  The cursor starts in the centre of the
// canvas, with snapping enabled.
func New(g snapgrid.Grid) Model {
	m := Model{
		width:    80,
		height:   24,
		grid:     g,
		snapping: true,
		keys:     newKeyMap(),
		status:   "snapgrid ready",
	}
	m.cursor = m.center()
	return m
}

// Run shows the preview until the user quits or ctx is cancelled.
func Run(ctx context.Context, g snapgrid.Grid) error {
	p := tea.NewProgram(New(g),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Grid returns the grid currently shown.
func (m Model) Grid() snapgrid.Grid { return m.grid }

// Cursor returns the position of the free cursor.
func (m Model) Cursor() vec.Vec2 { return m.cursor }

// Placed returns the points placed so far.
func (m Model) Placed() []vec.Vec2 { return m.placed }

// Target returns the point the cursor currently selects: the cursor
// itself if snapping is off, otherwise the snapped cursor.
func (m Model) Target() vec.Vec2 {
	switch {
	case !m.snapping:
		return m.cursor
	case m.nearest:
		return m.grid.Nearest(m.cursor)
	default:
		return m.grid.Snap(m.cursor)
	}
}

// canvasSize returns the size of the drawing area in character cells.
// The last terminal line is used for the status line.
func (m Model) canvasSize() (cols, rows int) {
	return max(m.width, 1), max(m.height-1, 1)
}

// viewport returns the canvas area shown on screen.
func (m Model) viewport() rect.Rect {
	cols, rows := m.canvasSize()
	return rect.Rect{
		URx: float64(2*cols) * unitsPerDot,
		URy: float64(4*rows) * unitsPerDot,
	}
}

func (m Model) center() vec.Vec2 {
	vp := m.viewport()
	return vec.Vec2{X: (vp.LLx + vp.URx) / 2, Y: (vp.LLy + vp.URy) / 2}
}

// cellCenter returns the canvas point at the centre of a character cell.
func cellCenter(col, row int) vec.Vec2 {
	return vec.Vec2{
		X: (float64(col) + 0.5) * 2 * unitsPerDot,
		Y: (float64(row) + 0.5) * 4 * unitsPerDot,
	}
}

// clampCursor keeps the cursor inside the viewport.
func (m *Model) clampCursor() {
	vp := m.viewport()
	m.cursor.X = min(max(m.cursor.X, vp.LLx), vp.URx)
	m.cursor.Y = min(max(m.cursor.Y, vp.LLy), vp.URy)
}
