package wheel

import "math"

const (
	DefaultRingWidth  = 150
	DefaultRingStroke = 30

	// TriangleSpread pushes the second and third triangle corners outward
	// from the inner edge of the ring.
	TriangleSpread = 20
)

// Geometry is the layout of the wheel inside its bounding box. It is a plain
// value, so hosts can compare it to decide when cached layers are stale.
type Geometry struct {
	Width, Height float64

	CenterX, CenterY float64
	OuterRadius      float64

	RingWidth  int // width of the selection track
	RingStroke int // thickness of the knob outline and ring inset
}

// NewGeometry lays out a wheel in a width x height box. Negative or NaN sizes
// count as zero.
func NewGeometry(width, height float64, ringWidth, ringStroke int) Geometry {
	width = nonNegative(width)
	height = nonNegative(height)
	return Geometry{
		Width:       width,
		Height:      height,
		CenterX:     width / 2,
		CenterY:     height / 2,
		OuterRadius: math.Min(width, height) / 2,
		RingWidth:   ringWidth,
		RingStroke:  ringStroke,
	}
}

// Center returns the wheel center.
func (g Geometry) Center() Point {
	return Point{X: g.CenterX, Y: g.CenterY}
}

// GradientRadius is the radius of the sweep-filled disc.
func (g Geometry) GradientRadius() float64 {
	return nonNegative(g.OuterRadius - float64(g.RingStroke))
}

// HoleRadius is the radius of the background disc that leaves the hue ring.
func (g Geometry) HoleRadius() float64 {
	return nonNegative(g.OuterRadius - float64(g.RingWidth-g.RingStroke))
}

// KnobRadius is the radius of the selection knob. A zero-sized wheel has no
// knob.
func (g Geometry) KnobRadius() float64 {
	if g.OuterRadius <= 0 {
		return 0
	}
	return float64(g.RingWidth) / 2
}

// KnobDistance is how far the knob center sits from the wheel center. It is
// negative when the wheel is narrower than the ring, which puts the knob on
// the far side of the center.
func (g Geometry) KnobDistance() float64 {
	return g.OuterRadius - g.KnobRadius()
}

// KnobCenter returns the knob position for a selection angle.
func (g Geometry) KnobCenter(angle int) Point {
	return g.PointAt(float64(normalizeDegrees(angle)), g.KnobDistance())
}

// PointAt returns the point dist away from the center in the direction of
// deg degrees.
func (g Geometry) PointAt(deg, dist float64) Point {
	return g.polar(deg*math.Pi/180, dist)
}

// Triangle returns the three corners of the decorative triangle. The corners
// sit at 120, 240 and 360 degrees.
func (g Geometry) Triangle() [3]Point {
	base := 2 * math.Pi / 3
	inner := nonNegative(g.OuterRadius - float64(g.RingWidth))
	outer := nonNegative(g.OuterRadius - float64(g.RingWidth) + TriangleSpread)
	return [3]Point{
		g.polar(base, inner),
		g.polar(base*2, outer),
		g.polar(base*3, outer),
	}
}

func (g Geometry) polar(rad, dist float64) Point {
	return Point{
		X: g.CenterX + dist*math.Cos(rad),
		Y: g.CenterY + dist*math.Sin(rad),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
