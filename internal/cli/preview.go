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

package cli

import (
	"github.com/spf13/cobra"

	"seehuhn.de/go/snapgrid/internal/tui"
)

func newPreviewCmd(opts *gridOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show an interactive preview of the grid in the terminal",
		Long: `Show the grid on a braille canvas.  Move the cursor with the arrow keys
or the mouse; the snapped position is highlighted.

Keys: s toggles snapping, n toggles exact nearest-vertex snapping, k cycles
the lattice kind, + and - change the spacing, enter places a point, c
clears all points, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.grid(cmd)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("starting preview", "kind", g.Kind)
			return tui.Run(cmd.Context(), g)
		},
	}
}
