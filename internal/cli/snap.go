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
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapCmd(opts *gridOpts) *cobra.Command {
	var nearest bool
	cmd := &cobra.Command{
		Use:   "snap X,Y...",
		Short: "Snap points to the grid",
		Long: `Snap each point to a vertex of the grid and print the result.

Use "--" before the first point if a coordinate is negative, for example
"snapgrid snap -- -12.6,-12.6".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnap(cmd, opts, args, nearest)
		},
	}
	cmd.Flags().BoolVarP(&nearest, "nearest", "n", false, "also print the exact nearest vertex")
	return cmd
}

func runSnap(cmd *cobra.Command, opts *gridOpts, args []string, nearest bool) error {
	g, err := opts.grid(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			return err
		}
		q := g.Snap(p)
		if nearest {
			fmt.Fprintf(out, "%s -> %s (nearest %s)\n", formatPoint(p), formatPoint(q), formatPoint(g.Nearest(p)))
		} else {
			fmt.Fprintf(out, "%s -> %s\n", formatPoint(p), formatPoint(q))
		}
	}
	return nil
}
