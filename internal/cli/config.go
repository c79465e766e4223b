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
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/snapgrid"
)

// gridOpts holds the flags which select and style the grid.
type gridOpts struct {
	configFile string
	kind       string
	spacing    float64
	radius     float64
	color      string
}

func (o *gridOpts) addFlags(cmd *cobra.Command) {
	def := snapgrid.Default()
	fs := cmd.PersistentFlags()
	fs.StringVarP(&o.configFile, "config", "c", "", "grid configuration file (TOML)")
	fs.StringVarP(&o.kind, "kind", "k", def.Kind.String(), "lattice kind: square, hex-pointy, hex-flat")
	fs.Float64VarP(&o.spacing, "spacing", "s", def.Spacing, "distance between neighbouring vertices")
	fs.Float64Var(&o.radius, "radius", def.PointRadius, "radius of drawn vertex markers")
	fs.StringVar(&o.color, "color", "", "marker colour as #rrggbb or #rrggbbaa (default gray)")
}

// config returns the effective grid configuration: the configuration
// file, if any, overridden by explicitly given flags.
func (o *gridOpts) config(cmd *cobra.Command) (snapgrid.Config, error) {
	logger := loggerFromContext(cmd.Context())

	cfg := snapgrid.Default().Config()
	if o.configFile != "" {
		var err error
		cfg, err = loadConfigFile(o.configFile)
		if err != nil {
			return snapgrid.Config{}, err
		}
		logger.Debug("loaded grid configuration", "file", o.configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("kind") {
		kind, err := snapgrid.ParseKind(o.kind)
		if err != nil {
			return snapgrid.Config{}, err
		}
		cfg.Kind = kind
	}
	if flags.Changed("spacing") {
		cfg.Spacing = o.spacing
	}
	if flags.Changed("radius") {
		cfg.PointRadius = o.radius
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	return cfg, nil
}

// grid returns the validated grid selected by the flags.
func (o *gridOpts) grid(cmd *cobra.Command) (snapgrid.Grid, error) {
	cfg, err := o.config(cmd)
	if err != nil {
		return snapgrid.Grid{}, err
	}
	g, err := cfg.Grid()
	if err != nil {
		return snapgrid.Grid{}, err
	}
	loggerFromContext(cmd.Context()).Debug("using grid",
		"kind", g.Kind, "spacing", g.Spacing, "radius", g.PointRadius)
	return g, nil
}

func loadConfigFile(name string) (cfg snapgrid.Config, err error) {
	f, err := os.Open(name)
	if err != nil {
		return snapgrid.Config{}, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cfg, err = snapgrid.LoadConfig(f)
	if err != nil {
		return snapgrid.Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

func newConfigCmd(opts *gridOpts) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective grid configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, opts, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of TOML")
	return cmd
}

func runConfig(cmd *cobra.Command, opts *gridOpts, asJSON bool) error {
	g, err := opts.grid(cmd)
	if err != nil {
		return err
	}
	cfg := g.Config()
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, cfg)
	}
	return cfg.Encode(out)
}
