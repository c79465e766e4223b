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

package sink

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/snapgrid"
	"seehuhn.de/go/snapgrid/raster"
)

// Image draws into an in-memory raster image.  Shapes are anti-aliased
// and composited over the existing image content.
type Image struct {
	// Img is the image drawn into.  Initially all pixels are transparent.
	Img *image.NRGBA

	r     *raster.Rasteriser
	mask  *image.Alpha
	dirty image.Rectangle
}

var _ snapgrid.Painter = (*Image)(nil)

// NewImage allocates a width×height image showing the given viewport.
func NewImage(viewport rect.Rect, width, height int) (*Image, error) {
	if err := CheckViewport(viewport, float64(width), float64(height)); err != nil {
		return nil, err
	}

	bounds := image.Rect(0, 0, width, height)
	r := raster.NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	r.CTM = viewTransform(viewport, float64(width), float64(height))
	return &Image{
		Img:  image.NewNRGBA(bounds),
		r:    r,
		mask: image.NewAlpha(bounds),
	}, nil
}

// Fill paints the whole image with c, replacing the previous content.
func (im *Image) Fill(c color.Color) {
	draw.Draw(im.Img, im.Img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillCircle implements the [snapgrid.Painter] interface.
func (im *Image) FillCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	if radius <= 0 || c.A == 0 {
		return
	}

	im.dirty = image.Rectangle{}
	im.r.FillNonZero(Circle(center, radius), func(y, xMin int, coverage []float32) {
		row := im.mask.Pix[y*im.mask.Stride+xMin:]
		for i, cov := range coverage {
			row[i] = uint8(cov*255 + 0.5)
		}
		im.dirty = im.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if im.dirty.Empty() {
		return
	}

	draw.DrawMask(im.Img, im.dirty, image.NewUniform(c), image.Point{}, im.mask, im.dirty.Min, draw.Over)

	for y := im.dirty.Min.Y; y < im.dirty.Max.Y; y++ {
		lo := y*im.mask.Stride + im.dirty.Min.X
		clear(im.mask.Pix[lo : lo+im.dirty.Dx()])
	}
}

// WritePNG encodes the image in PNG format.
func (im *Image) WritePNG(w io.Writer) error {
	return png.Encode(w, im.Img)
}

// RenderImage draws the vertices of g which lie in viewport onto a white
// width×height image.  The grid is drawn even if g.Visible is false.
func RenderImage(g snapgrid.Grid, viewport rect.Rect, width, height int) (*image.NRGBA, error) {
	im, err := NewImage(viewport, width, height)
	if err != nil {
		return nil, err
	}
	im.Fill(color.White)
	g.WithVisible(true).Draw(viewport, im)
	return im.Img, nil
}
