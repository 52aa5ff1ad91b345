package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/colorator/internal/raster"
	"github.com/iburimskiy/colorator/internal/wheel"
)

// run is a stretch of consecutive primitives that are either all static or
// all dynamic.
type run struct {
	static bool
	prims  []wheel.Primitive
}

func splitRuns(prims []wheel.Primitive) []run {
	var runs []run
	for _, p := range prims {
		if n := len(runs); n > 0 && runs[n-1].static == p.Static {
			runs[n-1].prims = append(runs[n-1].prims, p)
			continue
		}
		runs = append(runs, run{static: p.Static, prims: []wheel.Primitive{p}})
	}
	return runs
}

// layerCache keeps one rasterized image per static run. The shaders in those
// runs are bound to the wheel center, so the images are rebuilt whenever the
// geometry changes.
type layerCache struct {
	geom   wheel.Geometry
	valid  bool
	images []*ebiten.Image
}

func (c *layerCache) sync(geom wheel.Geometry, runs []run) {
	if c.valid && c.geom == geom {
		return
	}
	c.release()
	w, h := layerSize(geom)
	for _, r := range runs {
		if !r.static {
			continue
		}
		var img *ebiten.Image
		if w > 0 && h > 0 {
			img = ebiten.NewImageFromImage(raster.Draw(r.prims, w, h))
		}
		c.images = append(c.images, img)
	}
	c.geom = geom
	c.valid = true
	logDebug("rebuilt %d static layers at %dx%d", len(c.images), w, h)
}

func (c *layerCache) release() {
	for _, img := range c.images {
		if img != nil {
			img.Deallocate()
		}
	}
	c.images = nil
	c.valid = false
}

func layerSize(geom wheel.Geometry) (int, int) {
	return int(math.Ceil(geom.Width)), int(math.Ceil(geom.Height))
}

// drawRuns paints the runs onto screen with the widget's origin at (ox, oy).
// Static runs come from the cache; dynamic ones are drawn live.
func (c *layerCache) drawRuns(screen *ebiten.Image, runs []run, ox, oy float64) {
	layer := 0
	for _, r := range runs {
		if r.static {
			if layer < len(c.images) && c.images[layer] != nil {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(ox, oy)
				screen.DrawImage(c.images[layer], op)
			}
			layer++
			continue
		}
		for _, p := range r.prims {
			drawLive(screen, p, ox, oy, c.geom)
		}
	}
}

// drawLive draws a selection-dependent primitive. Solid circles go straight
// to ebiten's vector package; anything else is rasterized for this frame.
func drawLive(screen *ebiten.Image, p wheel.Primitive, ox, oy float64, geom wheel.Geometry) {
	if p.Op == wheel.OpCircle && p.Paint.Shader == nil {
		if p.Radius <= 0 {
			return
		}
		cx := float32(p.Center.X + ox)
		cy := float32(p.Center.Y + oy)
		r := float32(p.Radius)
		if p.Paint.Style == wheel.StyleStroke {
			if p.Paint.StrokeWidth > 0 {
				vector.StrokeCircle(screen, cx, cy, r, float32(p.Paint.StrokeWidth), p.Paint.Color, p.Paint.AntiAlias)
			}
			return
		}
		vector.DrawFilledCircle(screen, cx, cy, r, p.Paint.Color, p.Paint.AntiAlias)
		return
	}

	w, h := layerSize(geom)
	if w <= 0 || h <= 0 {
		return
	}
	img := ebiten.NewImageFromImage(raster.Draw([]wheel.Primitive{p}, w, h))
	defer img.Deallocate()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(img, op)
}
