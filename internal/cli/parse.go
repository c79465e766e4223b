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
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid/sink"
)

// parsePoint parses a point given as "X,Y".
func parsePoint(s string) (vec.Vec2, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return vec.Vec2{X: v[0], Y: v[1]}, nil
}

// parseViewport parses a viewport given as "x0,y0,x1,y1".  The corners
// may be given in any order.
func parseViewport(s string) (rect.Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return rect.Rect{}, fmt.Errorf("%w %q: %w", sink.ErrInvalidViewport, s, err)
	}
	r := rect.Rect{
		LLx: min(v[0], v[2]),
		LLy: min(v[1], v[3]),
		URx: max(v[0], v[2]),
		URy: max(v[1], v[3]),
	}
	if err := sink.CheckViewport(r, 1, 1); err != nil {
		return rect.Rect{}, err
	}
	return r, nil
}

// parseSize parses an output size given as "WxH".
func parseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		width, err = strconv.Atoi(strings.TrimSpace(ws))
	}
	if ok && err == nil {
		height, err = strconv.Atoi(strings.TrimSpace(hs))
	}
	if !ok || err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: invalid size %q (want WxH)", sink.ErrInvalidViewport, s)
	}
	return width, height, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %d", n, len(parts))
	}
	v := make([]float64, n)
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	return v, nil
}

func formatPoint(p vec.Vec2) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64)
}

// outputFormat determines the output format for the given file name.
// A non-empty override takes precedence over the file extension.
func outputFormat(fileName, override string) (string, error) {
	format := strings.ToLower(override)
	if format == "" {
		format = strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	}
	switch format {
	case "png", "pdf":
		return format, nil
	case "":
		return "", fmt.Errorf("%w: cannot determine format of %q", sink.ErrUnknownFormat, fileName)
	}
	if slices.Contains(sink.PlotFormats, format) {
		return format, nil
	}
	return "", fmt.Errorf("%w: %q", sink.ErrUnknownFormat, format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
