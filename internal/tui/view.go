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

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid/sink"
)

func (m Model) View() string {
	cols, rows := m.canvasSize()
	vp := m.viewport()

	b, err := sink.NewBraille(vp, cols, rows)
	if err != nil {
		return "error: " + err.Error()
	}
	m.grid.WithVisible(true).Draw(vp, b)

	cells := make([][]string, rows)
	for i, line := range b.Lines() {
		row := make([]string, 0, cols)
		for _, r := range line {
			row = append(row, gridStyle.Render(string(r)))
		}
		cells[i] = row
	}
	mark := func(p vec.Vec2, glyph string, style lipgloss.Style) {
		if col, row, ok := b.Cell(p); ok {
			cells[row][col] = style.Render(glyph)
		}
	}
	for _, p := range m.placed {
		mark(p, "◆", placedStyle)
	}
	mark(m.cursor, "+", cursorStyle)
	if m.snapping {
		mark(m.Target(), "●", targetStyle)
	}

	var sb strings.Builder
	for _, row := range cells {
		sb.WriteString(strings.Join(row, ""))
		sb.WriteByte('\n')
	}
	sb.WriteString(m.statusLine(cols))
	return sb.String()
}

func (m Model) statusLine(width int) string {
	t := m.Target()
	mode := "off"
	if m.snapping {
		mode = "snap"
		if m.nearest {
			mode = "nearest"
		}
	}
	left := titleStyle.Render(" snapgrid ") +
		statusStyle.Render(" "+m.grid.Kind.String()+
			"  spacing "+fmt.Sprintf("%.4g", m.grid.Spacing)+
			"  "+mode+
			"  cursor "+formatPoint(m.cursor.X, m.cursor.Y)+
			" → "+formatPoint(t.X, t.Y)+" ")

	var help []string
	for _, k := range m.keys.shortHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	right := dimStyle.Render(" " + m.status + " · " + strings.Join(help, "  "))

	line := left + right
	if lipgloss.Width(line) > width {
		line = left
	}
	return line
}
