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

// Package raster converts filled vector paths into anti-aliased pixel
// coverage.
//
// Coverage is computed exactly for the flattened path: every edge adds
// a signed "cover" (its vertical extent) and "area" (the part of the
// pixel to the right of the edge) to the pixels it crosses, and a
// running sum along each scanline turns these into the fraction of each
// pixel which lies inside the path.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser computes pixel coverage for filled paths.  A Rasteriser
// keeps its buffers between calls, so that filling many small shapes
// does not allocate once the buffers have grown.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device-space rectangle.  The
	// coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.  It must be positive.
	Flatness float64

	cover     []float32 // signed vertical extent per pixel, reused for output
	area      []float32 // signed area right of the edges, per pixel
	rowUsed   []bool    // whether any edge touches a scanline
	crossings []float64 // y values where an edge crosses a pixel column
	edges     []edge

	// device-space bounding box of r.edges
	bboxValid          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle,
// with an identity CTM and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: DefaultFlatness,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness
	r.edges = r.edges[:0]
}

// FillNonZero fills p using the nonzero winding rule.
//
// The emit function is called once for every scanline with non-zero
// coverage, in increasing y order.  The coverage slice holds values in
// [0, 1] for the pixels xMin, xMin+1, ... of row y; it is only valid
// during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	height := yMax - yMin
	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bottom := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bottom; y++ {
			row := y - yMin
			lo, hi := row*width, (row+1)*width
			r.accumulate(e, y, r.cover[lo:hi], r.area[lo:hi], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		lo, hi := row*width, (row+1)*width
		coverage := r.cover[lo:hi]
		integrateNonZero(coverage, r.area[lo:hi])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// collectEdges flattens p into device-space edges and returns the
// integer bounding box of the edges, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxValid = false

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start) // implicit close
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms the user-space segment a→b to device space and
// appends it to the edge list.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return // horizontal edges carry no cover
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if !r.bboxValid {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxValid = true
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// deviceLength returns the device-space length of the user-space
// vector v, ignoring the translation part of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by
// line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// The distance between the curve and its chord is at most |P0-2P1+P2|/4.
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces the cubic Bézier curve p0, ..., p3 by line
// segments.  The number of segments is chosen using Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// accumulate adds the contribution of e within scanline y to the cover
// and area buffers, which hold the pixels xMin, ..., xMax-1.  Edges left
// of xMin contribute their full cover to the first pixel.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	if pixRight < xMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= xMax {
		return
	}

	// Split the edge where it crosses pixel column boundaries, so that
	// every piece lies within a single pixel.
	r.crossings = append(r.crossings[:0], yTop, yBot)
	if pixLeft != pixRight {
		dydx := 1 / e.dxdy
		for x := pixLeft + 1; x <= pixRight; x++ {
			if yx := e.y0 + dydx*(float64(x)-e.x0); yx > yTop && yx < yBot {
				r.crossings = append(r.crossings, yx)
			}
		}
		slices.Sort(r.crossings)
	}

	for i := range len(r.crossings) - 1 {
		ya, yb := r.crossings[i], r.crossings[i+1]
		if yb <= ya {
			continue
		}
		c := sign * float32(yb-ya)

		xMid := e.x0 + e.dxdy*((ya+yb)/2-e.y0)
		pix := int(math.Floor(xMid))
		switch {
		case pix < xMin:
			cover[0] += c
			area[0] += c
		case pix < xMax:
			frac := xMid - float64(pix)
			cover[pix-xMin] += c
			area[pix-xMin] += c * float32(1-frac)
		}
	}
}

// integrateNonZero turns the cover and area values of one scanline into
// coverage, in place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros removes leading and trailing zeros from coverage.  It
// returns nil if all values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// DefaultFlatness is the default curve flattening tolerance, in
	// device pixels.
	DefaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge
	// in device space.  Flatter edges are dropped.
	horizontalEdgeThreshold = 1e-10
)
