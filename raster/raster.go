// Package raster renders sketched path layers into raster images.
//
// An Image implements the sketch.Renderer interface: each Draw call
// fills and/or strokes one normalized path onto an RGBA surface using
// the golang.org/x/image/vector rasterizer. The result can be encoded
// as PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"strconv"

	"golang.org/x/image/vector"

	"github.com/gogpu/sketch"
)

// subpath is one flattened polyline of the drawn path.
type subpath struct {
	points []sketch.Point
	closed bool
}

// Image is a raster rendering surface.
type Image struct {
	rgba *image.RGBA
}

// New creates a transparent rendering surface of the given pixel size.
func New(width, height int) *Image {
	return &Image{rgba: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// RGBA returns the underlying image.
func (img *Image) RGBA() *image.RGBA {
	return img.rgba
}

// Clear fills the whole surface with one color.
func (img *Image) Clear(c string) error {
	col, ok := parseColor(c)
	if !ok {
		return fmt.Errorf("raster: unknown color %q", c)
	}
	draw.Draw(img.rgba, img.rgba.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	return nil
}

// Draw renders one path layer. It implements sketch.Renderer. The fill
// attribute fills every subpath, the stroke attribute strokes the
// flattened outline with stroke-width (default 1). Attribute values
// "none" and "" skip the respective operation.
func (img *Image) Draw(pathData string, attrs sketch.Attrs) error {
	subs := flattenPath(pathData)
	if len(subs) == 0 {
		return nil
	}
	sketch.Logger().Debug("rasterizing layer",
		slog.Int("subpaths", len(subs)),
		slog.String("fill", attrs["fill"]),
		slog.String("stroke", attrs["stroke"]))

	if fill := attrs["fill"]; fill != "" && fill != "none" {
		col, ok := parseColor(fill)
		if !ok {
			return fmt.Errorf("raster: unknown fill color %q", fill)
		}
		img.fill(subs, col)
	}

	if stroke := attrs["stroke"]; stroke != "" && stroke != "none" {
		col, ok := parseColor(stroke)
		if !ok {
			return fmt.Errorf("raster: unknown stroke color %q", stroke)
		}
		width := 1.0
		if sw := attrs["stroke-width"]; sw != "" {
			if v, err := strconv.ParseFloat(sw, 64); err == nil && v > 0 {
				width = v
			}
		}
		img.stroke(subs, col, width)
	}
	return nil
}

// EncodePNG writes the surface as PNG.
func (img *Image) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, img.rgba); err != nil {
		return fmt.Errorf("raster: encoding png: %w", err)
	}
	return nil
}

// fill rasterizes all subpaths as one shape so winding interacts
// across subpaths the way path fills do.
func (img *Image) fill(subs []subpath, col color.RGBA) {
	b := img.rgba.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	ras.DrawOp = draw.Over
	for _, sub := range subs {
		if len(sub.points) < 2 {
			continue
		}
		ras.MoveTo(float32(sub.points[0].X), float32(sub.points[0].Y))
		for _, p := range sub.points[1:] {
			ras.LineTo(float32(p.X), float32(p.Y))
		}
		ras.ClosePath()
	}
	ras.Draw(img.rgba, b, image.NewUniform(col), image.Point{})
}

// stroke draws every polyline segment as a filled quad of the given
// width. Butt caps, no joins: the layered sketch passes cover the
// corner gaps.
func (img *Image) stroke(subs []subpath, col color.RGBA, width float64) {
	b := img.rgba.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	ras.DrawOp = draw.Over
	half := width / 2

	for _, sub := range subs {
		pts := sub.points
		if sub.closed && len(pts) > 1 && pts[0] != pts[len(pts)-1] {
			pts = append(append([]sketch.Point(nil), pts...), pts[0])
		}
		for i := 0; i+1 < len(pts); i++ {
			p, q := pts[i], pts[i+1]
			d := q.Sub(p)
			l := d.Length()
			if l == 0 {
				continue
			}
			// Unit normal scaled to half the stroke width.
			n := sketch.Pt(-d.Y/l*half, d.X/l*half)
			ras.MoveTo(float32(p.X+n.X), float32(p.Y+n.Y))
			ras.LineTo(float32(q.X+n.X), float32(q.Y+n.Y))
			ras.LineTo(float32(q.X-n.X), float32(q.Y-n.Y))
			ras.LineTo(float32(p.X-n.X), float32(p.Y-n.Y))
			ras.ClosePath()
		}
	}
	ras.Draw(img.rgba, b, image.NewUniform(col), image.Point{})
}
