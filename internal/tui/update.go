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

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/snapgrid"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()

	case tea.MouseMsg:
		cols, rows := m.canvasSize()
		if msg.X < 0 || msg.Y < 0 || msg.X >= cols || msg.Y >= rows {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionMotion:
			m.cursor = cellCenter(msg.X, msg.Y)
		case tea.MouseActionPress:
			m.cursor = cellCenter(msg.X, msg.Y)
			if msg.Button == tea.MouseButtonLeft {
				m.place()
			}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor.Y -= 4 * unitsPerDot
		case key.Matches(msg, m.keys.Down):
			m.cursor.Y += 4 * unitsPerDot
		case key.Matches(msg, m.keys.Left):
			m.cursor.X -= 2 * unitsPerDot
		case key.Matches(msg, m.keys.Right):
			m.cursor.X += 2 * unitsPerDot
		case key.Matches(msg, m.keys.Snap):
			m.snapping = !m.snapping
			m.status = fmt.Sprintf("snapping: %v", m.snapping)
		case key.Matches(msg, m.keys.Nearest):
			m.nearest = !m.nearest
			m.status = fmt.Sprintf("exact nearest: %v", m.nearest)
		case key.Matches(msg, m.keys.Kind):
			m.grid.Kind = nextKind(m.grid.Kind)
			m.status = "lattice: " + m.grid.Kind.String()
		case key.Matches(msg, m.keys.Grow):
			m.setSpacing(m.grid.Spacing * spacingFactor)
		case key.Matches(msg, m.keys.Shrink):
			m.setSpacing(m.grid.Spacing / spacingFactor)
		case key.Matches(msg, m.keys.Place):
			m.place()
		case key.Matches(msg, m.keys.Clear):
			m.placed = nil
			m.status = "cleared"
		}
		m.clampCursor()
	}
	return m, nil
}

func (m *Model) setSpacing(s float64) {
	m.grid.Spacing = min(max(s, minSpacing), maxSpacing)
	m.status = fmt.Sprintf("spacing: %.4g", m.grid.Spacing)
}

func (m *Model) place() {
	p := m.Target()
	m.placed = append(m.placed, p)
	m.status = "placed " + formatPoint(p.X, p.Y)
}

func nextKind(k snapgrid.Kind) snapgrid.Kind {
	for i, kind := range snapgrid.Kinds {
		if kind == k {
			return snapgrid.Kinds[(i+1)%len(snapgrid.Kinds)]
		}
	}
	return snapgrid.Square
}

func formatPoint(x, y float64) string {
	return fmt.Sprintf("(%.1f, %.1f)", x, y)
}
