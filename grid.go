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

// Package snapgrid implements positional snapping grids for 2D canvases.
//
// A [Grid] rounds arbitrary points to the vertices of a square or
// hexagonal lattice, and enumerates the lattice vertices inside a
// viewport so that a host can draw them.
//
// Coordinates follow the screen convention: x grows to the right and y
// grows downwards. Viewports are given as [rect.Rect] values, where
// (LLx, LLy) is the minimum corner and (URx, URy) the maximum corner.
//
// Grid values are immutable in use and all methods are safe for
// concurrent use.
package snapgrid

import (
	"fmt"
	"image/color"
)

// Kind selects the lattice which governs snapping and enumeration.
type Kind int

const (
	// Square is a square lattice with vertices at integer multiples of
	// the spacing.
	Square Kind = iota

	// HexPointy is a hexagonal lattice for pointy-top hexagons. Rows are
	// spaced by spacing*sqrt(3)/2 and odd rows are shifted horizontally
	// by half the spacing.
	HexPointy

	// HexFlat is a hexagonal lattice for flat-top hexagons. Columns are
	// spaced by spacing*sqrt(3)/2 and odd columns are shifted vertically
	// by half the spacing.
	HexFlat
)

// Kinds lists all lattice kinds, in declaration order.
var Kinds = []Kind{Square, HexPointy, HexFlat}

var kindNames = map[Kind]string{
	Square:    "square",
	HexPointy: "hex-pointy",
	HexFlat:   "hex-flat",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind converts a lattice name, as returned by [Kind.String], into
// a Kind.  The aliases "quad", "pointy" and "flat" are accepted as well.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "square", "quad":
		return Square, nil
	case "hex-pointy", "pointy":
		return HexPointy, nil
	case "hex-flat", "flat":
		return HexFlat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Default values for new grids.
const (
	DefaultSpacing     = 25.0
	DefaultPointRadius = 3.0
)

// Grid describes a snapping lattice together with its visual style.
//
// The zero value is not useful, since Spacing must be positive.
// Use [Default] or one of the constructors instead.
type Grid struct {
	// Spacing is the fundamental lattice scale.  It must be positive;
	// this is not checked.
	Spacing float64

	// Kind selects the lattice geometry.
	Kind Kind

	// Visible controls whether Draw emits anything.  Snapping works
	// independently of this flag.
	Visible bool

	// Color is the colour used for lattice points and lines.  The zero
	// value selects a semi-transparent gray.
	Color color.NRGBA

	// PointRadius is the radius of the markers drawn at lattice vertices.
	PointRadius float64
}

// Default returns an invisible square grid with spacing 25.
func Default() Grid {
	return New(Square, DefaultSpacing)
}

// New returns an invisible grid of the given kind and spacing, using
// default values for all other fields.
func New(kind Kind, spacing float64) Grid {
	return Grid{
		Spacing:     spacing,
		Kind:        kind,
		PointRadius: DefaultPointRadius,
	}
}

// NewSquare returns a square grid with the given spacing.
func NewSquare(spacing float64) Grid {
	return New(Square, spacing)
}

// NewHexPointy returns a pointy-top hexagonal grid with the given spacing.
func NewHexPointy(spacing float64) Grid {
	return New(HexPointy, spacing)
}

// NewHexFlat returns a flat-top hexagonal grid with the given spacing.
func NewHexFlat(spacing float64) Grid {
	return New(HexFlat, spacing)
}

// WithVisible returns a copy of g with the Visible field set.
func (g Grid) WithVisible(visible bool) Grid {
	g.Visible = visible
	return g
}

// WithColor returns a copy of g which uses c for points and lines.
func (g Grid) WithColor(c color.NRGBA) Grid {
	g.Color = c
	return g
}

// WithPointRadius returns a copy of g with the given marker radius.
func (g Grid) WithPointRadius(r float64) Grid {
	g.PointRadius = r
	return g
}
