// Package raster paints wheel draw lists into in-memory images. Hosts use it
// for layers they cache and for PNG export.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/iburimskiy/colorator/internal/wheel"
)

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498307936

// Draw renders prims into a new width x height image. Pixels no primitive
// touches stay transparent.
func Draw(prims []wheel.Primitive, width, height int) *image.RGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	DrawInto(img, prims)
	return img
}

// DrawInto renders prims onto dst in order. Coordinates are relative to
// dst.Bounds().Min. The rasterizer always anti-aliases.
func DrawInto(dst draw.Image, prims []wheel.Primitive) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, p := range prims {
		drawPrimitive(dst, z, p)
	}
}

func drawPrimitive(dst draw.Image, z *vector.Rasterizer, p wheel.Primitive) {
	b := dst.Bounds()
	src := source(p.Paint, b.Min)

	switch p.Op {
	case wheel.OpFill:
		draw.Draw(dst, b, src, b.Min, draw.Over)
		return
	case wheel.OpCircle:
		z.Reset(b.Dx(), b.Dy())
		if !circlePath(z, p) {
			return
		}
	case wheel.OpPolygon:
		if len(p.Points) < 3 {
			return
		}
		z.Reset(b.Dx(), b.Dy())
		z.MoveTo(float32(p.Points[0].X), float32(p.Points[0].Y))
		for _, pt := range p.Points[1:] {
			z.LineTo(float32(pt.X), float32(pt.Y))
		}
		z.ClosePath()
	default:
		return
	}
	z.Draw(dst, b, src, b.Min)
}

// circlePath adds a filled disc, or an annulus for stroked circles, to z.
// It reports false when there is nothing to draw.
func circlePath(z *vector.Rasterizer, p wheel.Primitive) bool {
	cx, cy, r := p.Center.X, p.Center.Y, p.Radius
	if r <= 0 {
		return false
	}
	if p.Paint.Style != wheel.StyleStroke {
		addCircle(z, cx, cy, r, false)
		return true
	}
	half := p.Paint.StrokeWidth / 2
	if half <= 0 {
		return false
	}
	addCircle(z, cx, cy, r+half, false)
	if inner := r - half; inner > 0 {
		// Opposite winding cancels the coverage inside the outline.
		addCircle(z, cx, cy, inner, true)
	}
	return true
}

func addCircle(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	k := r * kappa
	f := func(v float64) float32 { return float32(v) }
	z.MoveTo(f(cx+r), f(cy))
	if !reverse {
		z.CubeTo(f(cx+r), f(cy+k), f(cx+k), f(cy+r), f(cx), f(cy+r))
		z.CubeTo(f(cx-k), f(cy+r), f(cx-r), f(cy+k), f(cx-r), f(cy))
		z.CubeTo(f(cx-r), f(cy-k), f(cx-k), f(cy-r), f(cx), f(cy-r))
		z.CubeTo(f(cx+k), f(cy-r), f(cx+r), f(cy-k), f(cx+r), f(cy))
	} else {
		z.CubeTo(f(cx+r), f(cy-k), f(cx+k), f(cy-r), f(cx), f(cy-r))
		z.CubeTo(f(cx-k), f(cy-r), f(cx-r), f(cy-k), f(cx-r), f(cy))
		z.CubeTo(f(cx-r), f(cy+k), f(cx-k), f(cy+r), f(cx), f(cy+r))
		z.CubeTo(f(cx+k), f(cy+r), f(cx+r), f(cy+k), f(cx+r), f(cy))
	}
	z.ClosePath()
}

func source(p wheel.Paint, origin image.Point) image.Image {
	if p.Shader == nil {
		return image.NewUniform(p.Color)
	}
	return shaderImage{shader: p.Shader, origin: origin}
}

// shaderImage exposes a shader as an unbounded image sampled at pixel centers.
type shaderImage struct {
	shader wheel.Shader
	origin image.Point
}

func (shaderImage) ColorModel() color.Model { return color.RGBAModel }

func (shaderImage) Bounds() image.Rectangle {
	return image.Rect(-1<<24, -1<<24, 1<<24, 1<<24)
}

func (s shaderImage) At(x, y int) color.Color {
	return s.shader.ColorAt(float64(x-s.origin.X)+0.5, float64(y-s.origin.Y)+0.5)
}
