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

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	cursorFg  = lipgloss.Color("#F59E0B")
	placedFg  = lipgloss.Color("#10B981")
	panelBg   = lipgloss.Color("#0F141A")

	gridStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	statusStyle = lipgloss.NewStyle().Foreground(baseFg).Background(panelBg)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	cursorStyle = lipgloss.NewStyle().Foreground(cursorFg)
	targetStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	placedStyle = lipgloss.NewStyle().Foreground(placedFg)
)
