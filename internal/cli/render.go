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
	"image/color"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/snapgrid"
	"seehuhn.de/go/snapgrid/sink"
)

const (
	defaultSize = "800x600" // default output size in pixels (PDF: points)
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file name
	viewport string // "x0,y0,x1,y1"; empty means the output rectangle
	size     string // "WxH"
	format   string // overrides the file extension
}

func newRenderCmd(gopts *gridOpts) *cobra.Command {
	opts := renderOpts{size: defaultSize}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the grid vertices to a PNG, PDF or SVG file",
		Long: `Draw the grid vertices inside a viewport to a file.

The output format is chosen by the file extension: .png uses the built-in
anti-aliasing rasteriser, .pdf writes a vector PDF page, and .svg, .eps,
.jpg and .tiff are produced via gonum/plot.  The grid is drawn even if the
configuration marks it as invisible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gopts.grid(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), g, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "grid.png", "output file")
	cmd.Flags().StringVar(&opts.viewport, "viewport", "", "visible canvas area as x0,y0,x1,y1 (default 0,0,W,H)")
	cmd.Flags().StringVar(&opts.size, "size", opts.size, "output size as WxH")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (default from the file extension)")
	return cmd
}

func runRender(ctx context.Context, g snapgrid.Grid, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	width, height, err := parseSize(opts.size)
	if err != nil {
		return err
	}
	viewport := rect.Rect{URx: float64(width), URy: float64(height)}
	if opts.viewport != "" {
		viewport, err = parseViewport(opts.viewport)
		if err != nil {
			return err
		}
	}
	format, err := outputFormat(opts.output, opts.format)
	if err != nil {
		return err
	}

	n := g.Count(viewport)
	logger.Debug("rendering", "format", format, "viewport", viewport, "vertices", n)
	prog := newProgress(logger)

	g = g.WithVisible(true)
	switch format {
	case "png":
		err = renderPNG(g, viewport, width, height, opts.output)
	case "pdf":
		err = renderPDF(g, viewport, width, height, opts.output)
	default:
		err = renderPlot(g, viewport, width, height, opts.output, format)
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("wrote %d vertices to %s", n, opts.output))
	return nil
}

func renderPNG(g snapgrid.Grid, viewport rect.Rect, width, height int, fileName string) error {
	im, err := sink.NewImage(viewport, width, height)
	if err != nil {
		return err
	}
	im.Fill(color.White)
	g.Draw(viewport, im)

	return writeFile(fileName, im.WritePNG)
}

func renderPDF(g snapgrid.Grid, viewport rect.Rect, width, height int, fileName string) error {
	page, err := sink.NewPDF(fileName, viewport, float64(width), float64(height))
	if err != nil {
		return err
	}
	g.Draw(viewport, page)
	return page.Close()
}

func renderPlot(g snapgrid.Grid, viewport rect.Rect, width, height int, fileName, format string) error {
	p, err := sink.NewPlot(viewport)
	if err != nil {
		return err
	}
	g.Draw(viewport, p)

	return writeFile(fileName, func(w io.Writer) error {
		return p.Encode(w, vg.Points(float64(width)), vg.Points(float64(height)), format)
	})
}

// writeFile creates fileName and fills it using write.
func writeFile(fileName string, write func(io.Writer) error) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
