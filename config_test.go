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
	"bytes"
	"encoding/json"
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	grids := []Grid{
		Default(),
		NewHexPointy(12.5).WithVisible(true),
		NewHexFlat(40).WithColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255}).WithPointRadius(0.5),
		NewSquare(8).WithColor(color.NRGBA{R: 200, G: 100, B: 50, A: 20}),
	}
	for _, g := range grids {
		buf := &bytes.Buffer{}
		if err := g.Config().Encode(buf); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(buf)
		if err != nil {
			t.Fatal(err)
		}
		g2, err := cfg.Grid()
		if err != nil {
			t.Fatal(err)
		}
		if g2 != g {
			t.Errorf("round trip: got %+v, want %+v", g2, g)
		}
	}
}

func TestLoadConfigPartial(t *testing.T) {
	in := `
kind = "hex-flat"
spacing = 40.0
`
	cfg, err := LoadConfig(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	g, err := cfg.Grid()
	if err != nil {
		t.Fatal(err)
	}
	want := NewHexFlat(40)
	if g != want {
		t.Errorf("got %+v, want %+v", g, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"kind", `kind = "triangle"`, nil},
		{"syntax", `spacing = `, nil},
		{"unknown key", `spacng = 3.0`, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(c.in))
			if err == nil {
				t.Fatal("expected an error")
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero spacing", Config{Spacing: 0, PointRadius: 3}, ErrInvalidSpacing},
		{"negative spacing", Config{Spacing: -1, PointRadius: 3}, ErrInvalidSpacing},
		{"NaN spacing", Config{Spacing: math.NaN(), PointRadius: 3}, ErrInvalidSpacing},
		{"infinite spacing", Config{Spacing: math.Inf(1), PointRadius: 3}, ErrInvalidSpacing},
		{"negative radius", Config{Spacing: 1, PointRadius: -1}, ErrInvalidRadius},
		{"bad kind", Config{Spacing: 1, Kind: 9}, ErrUnknownKind},
		{"bad colour", Config{Spacing: 1, Color: "#12345"}, ErrInvalidColor},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.cfg.Grid()
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestConfigJSON(t *testing.T) {
	g := NewHexPointy(20).WithVisible(true).WithColor(color.NRGBA{R: 255, A: 128})
	data, err := json.Marshal(g.Config())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"spacing":20,"kind":"hex-pointy","visible":true,"color":"#ff000080","point_radius":3}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg != g.Config() {
		t.Errorf("JSON round trip: got %+v", cfg)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{A: 255}},
		{"ff8000", color.NRGBA{R: 255, G: 128, A: 255}},
		{"#80808078", color.NRGBA{R: 128, G: 128, B: 128, A: 120}},
		{"#FFFFFF00", color.NRGBA{R: 255, G: 255, B: 255}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "#", "#fff", "#gggggg", "#1234567", "#123456789"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q): got %v", bad, err)
		}
	}
}

func TestFormatColor(t *testing.T) {
	if s := FormatColor(color.NRGBA{R: 255, G: 16, B: 1, A: 255}); s != "#ff1001" {
		t.Errorf("opaque: got %q", s)
	}
	if s := FormatColor(DefaultStrokeColor); s != "#80808050" {
		t.Errorf("translucent: got %q", s)
	}
}
