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

// Package sink provides drawing sinks for snapping grids.
//
// Every sink implements [snapgrid.Painter] and maps a viewport, given in
// canvas coordinates, onto its output surface.  Canvas coordinates have
// the y-axis pointing downwards, like screen coordinates.
//
// Sinks keep internal buffers and are not safe for concurrent use.
package sink

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrInvalidViewport is returned when a viewport is empty or not
	// finite, or when an output size is not positive.
	ErrInvalidViewport = errors.New("invalid viewport")

	// ErrUnknownFormat is returned for unsupported output formats.
	ErrUnknownFormat = errors.New("unknown output format")
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// Circle returns a closed path approximating the circle with the given
// centre and radius by four cubic Bézier curves.
func Circle(center vec.Vec2, radius float64) *path.Data {
	cx, cy, r := center.X, center.Y, radius
	kr := kappa * r
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}).
		Close()
}

// CheckViewport verifies that viewport is a non-empty, finite rectangle
// and that the output size is positive.
func CheckViewport(viewport rect.Rect, width, height float64) error {
	for _, v := range []float64{viewport.LLx, viewport.LLy, viewport.URx, viewport.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate in %v", ErrInvalidViewport, viewport)
		}
	}
	if viewport.URx <= viewport.LLx || viewport.URy <= viewport.LLy {
		return fmt.Errorf("%w: empty rectangle %v", ErrInvalidViewport, viewport)
	}
	if !(width > 0 && height > 0) {
		return fmt.Errorf("%w: output size %gx%g", ErrInvalidViewport, width, height)
	}
	return nil
}

// viewTransform maps viewport onto the rectangle [0,width]×[0,height],
// keeping the direction of the y-axis.
func viewTransform(viewport rect.Rect, width, height float64) matrix.Matrix {
	sx := width / (viewport.URx - viewport.LLx)
	sy := height / (viewport.URy - viewport.LLy)
	return matrix.Matrix{sx, 0, 0, sy, -viewport.LLx * sx, -viewport.LLy * sy}
}
