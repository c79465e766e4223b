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

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the key bindings of the preview.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Snap    key.Binding
	Nearest key.Binding
	Kind    key.Binding
	Grow    key.Binding
	Shrink  key.Binding
	Place   key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Snap:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snap on/off")),
		Nearest: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "exact nearest")),
		Kind:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "lattice kind")),
		Grow:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "wider")),
		Shrink:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "denser")),
		Place:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// shortHelp returns the bindings shown in the help line.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Snap, k.Nearest, k.Kind, k.Grow, k.Shrink, k.Place, k.Clear, k.Quit}
}
