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
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "devel"

// SetVersion sets the version information displayed by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the snapgrid CLI with the given context.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand returns the snapgrid root command with all subcommands.
// Logging goes to the command's error stream, at info level by default
// and at debug level with --verbose.
func NewRootCommand() *cobra.Command {
	var verbose bool
	opts := &gridOpts{}

	root := &cobra.Command{
		Use:           "snapgrid",
		Short:         "Snapping grids for 2D canvases",
		Long:          `snapgrid snaps points to square and hexagonal lattices and draws the lattice vertices visible in a viewport.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("snapgrid %s\n", version))

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	opts.addFlags(root)

	root.AddCommand(newSnapCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newPreviewCmd(opts))
	return root
}
