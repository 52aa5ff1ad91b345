package wheel

import (
	"math"
	"testing"
)

func TestResizeRecenters(t *testing.T) {
	w := New(DefaultOptions())
	g := w.Resize(200, 200)
	if g.OuterRadius != 100 || g.CenterX != 100 || g.CenterY != 100 {
		t.Fatalf("unexpected geometry %+v", g)
	}
	g = w.Resize(400, 100)
	if g.OuterRadius != 50 {
		t.Fatalf("expected radius 50, got %v", g.OuterRadius)
	}
	if g.CenterX != 200 || g.CenterY != 50 {
		t.Fatalf("expected center (200,50), got (%v,%v)", g.CenterX, g.CenterY)
	}
	if w.Geometry() != g {
		t.Fatalf("widget geometry not updated")
	}
}

func TestGeometryDegenerate(t *testing.T) {
	for _, size := range [][2]float64{{0, 0}, {0, 300}, {-5, 10}, {math.NaN(), 4}} {
		g := NewGeometry(size[0], size[1], DefaultRingWidth, DefaultRingStroke)
		if g.OuterRadius != 0 {
			t.Fatalf("size %v: radius %v", size, g.OuterRadius)
		}
		if g.GradientRadius() != 0 || g.HoleRadius() != 0 || g.KnobRadius() != 0 {
			t.Fatalf("size %v: radii should collapse to 0", size)
		}
		c := g.Center()
		for _, p := range g.Triangle() {
			if math.Abs(p.X-c.X) > 1e-9 || math.Abs(p.Y-c.Y) > 1e-9 {
				t.Fatalf("size %v: triangle corner %v away from center %v", size, p, c)
			}
		}
	}
}

func TestGeometryRadii(t *testing.T) {
	g := NewGeometry(600, 400, 150, 30)
	if g.GradientRadius() != 170 {
		t.Fatalf("gradient radius %v", g.GradientRadius())
	}
	if g.HoleRadius() != 80 {
		t.Fatalf("hole radius %v", g.HoleRadius())
	}
	if g.KnobRadius() != 75 || g.KnobDistance() != 125 {
		t.Fatalf("knob radius %v distance %v", g.KnobRadius(), g.KnobDistance())
	}
}

func TestKnobCenter(t *testing.T) {
	g := NewGeometry(300, 300, 150, 30)
	p := g.KnobCenter(0)
	if math.Abs(p.X-225) > 1e-9 || math.Abs(p.Y-150) > 1e-9 {
		t.Fatalf("knob at 0: %v", p)
	}
	p = g.KnobCenter(90)
	if math.Abs(p.X-150) > 1e-9 || math.Abs(p.Y-225) > 1e-9 {
		t.Fatalf("knob at 90: %v", p)
	}
}

func TestKnobOnNarrowWheel(t *testing.T) {
	// Radius 50 is narrower than the ring, so the knob keeps its full size and
	// its center crosses to the opposite side of the wheel.
	g := NewGeometry(100, 100, 150, 30)
	if g.KnobRadius() != 75 || g.KnobDistance() != -25 {
		t.Fatalf("knob radius %v distance %v", g.KnobRadius(), g.KnobDistance())
	}
	p := g.KnobCenter(0)
	if math.Abs(p.X-25) > 1e-9 || math.Abs(p.Y-50) > 1e-9 {
		t.Fatalf("knob at 0: %v", p)
	}
	p = g.KnobCenter(180)
	if math.Abs(p.X-75) > 1e-9 || math.Abs(p.Y-50) > 1e-9 {
		t.Fatalf("knob at 180: %v", p)
	}
}

func TestTriangleCorners(t *testing.T) {
	g := NewGeometry(400, 400, 150, 30)
	tri := g.Triangle()
	// Inner radius 50, outer 70.
	want := [3]Point{
		{X: 200 + 50*math.Cos(2*math.Pi/3), Y: 200 + 50*math.Sin(2*math.Pi/3)},
		{X: 200 + 70*math.Cos(4*math.Pi/3), Y: 200 + 70*math.Sin(4*math.Pi/3)},
		{X: 270, Y: 200},
	}
	for i := range tri {
		if math.Abs(tri[i].X-want[i].X) > 1e-9 || math.Abs(tri[i].Y-want[i].Y) > 1e-9 {
			t.Fatalf("corner %d: got %v want %v", i, tri[i], want[i])
		}
	}
}
