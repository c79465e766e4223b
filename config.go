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

package snapgrid

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Errors returned when validating a grid configuration.
var (
	ErrInvalidSpacing = errors.New("invalid grid spacing")
	ErrInvalidRadius  = errors.New("invalid point radius")
	ErrUnknownKind    = errors.New("unknown lattice kind")
	ErrInvalidColor   = errors.New("invalid colour")
)

// Config is the serialised form of a [Grid], suitable for TOML and JSON
// files.  Colours are written as "#rrggbb" or "#rrggbbaa"; the empty
// string selects the default colour.
type Config struct {
	Spacing     float64 `toml:"spacing" json:"spacing"`
	Kind        Kind    `toml:"kind" json:"kind"`
	Visible     bool    `toml:"visible" json:"visible"`
	Color       string  `toml:"color,omitempty" json:"color,omitempty"`
	PointRadius float64 `toml:"point_radius" json:"point_radius"`
}

// Config returns the serialisable form of g.
func (g Grid) Config() Config {
	cfg := Config{
		Spacing:     g.Spacing,
		Kind:        g.Kind,
		Visible:     g.Visible,
		PointRadius: g.PointRadius,
	}
	if g.HasColor() {
		cfg.Color = FormatColor(g.Color)
	}
	return cfg
}

// Grid validates the configuration and converts it into a Grid.
func (c Config) Grid() (Grid, error) {
	if !(c.Spacing > 0) || math.IsInf(c.Spacing, 0) {
		return Grid{}, fmt.Errorf("%w: %g", ErrInvalidSpacing, c.Spacing)
	}
	if !(c.PointRadius >= 0) || math.IsInf(c.PointRadius, 0) {
		return Grid{}, fmt.Errorf("%w: %g", ErrInvalidRadius, c.PointRadius)
	}
	if _, ok := kindNames[c.Kind]; !ok {
		return Grid{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(c.Kind))
	}

	g := New(c.Kind, c.Spacing)
	g.Visible = c.Visible
	g.PointRadius = c.PointRadius
	if c.Color != "" {
		col, err := ParseColor(c.Color)
		if err != nil {
			return Grid{}, err
		}
		g.Color = col
	}
	return g, nil
}

// LoadConfig reads a TOML grid configuration from r.  Keys which are
// not present in the input keep the values of [Default].
func LoadConfig(r io.Reader) (Config, error) {
	cfg := Default().Config()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decoding grid config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("decoding grid config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Encode writes c to w in TOML format.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// ParseColor parses a colour of the form "#rrggbb" or "#rrggbbaa".
// The leading '#' is optional.  Colour components are not premultiplied.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor formats c as "#rrggbb" if c is opaque, and as "#rrggbbaa"
// otherwise.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
