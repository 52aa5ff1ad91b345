package wheel

// Background returns the fixed backdrop color. It also cuts the hole in the
// ring and outlines the knob.
func Background() RGB { return Black }

// Names of the primitives in a draw list.
const (
	NameBackground  = "background"
	NameHueRing     = "hue-ring"
	NameHole        = "hole"
	NameKnob        = "knob"
	NameKnobOutline = "knob-outline"
	NameTriangle    = "triangle"
)

// Render builds the draw list for a wheel. It is pure: the same geometry and
// selection always give the same list.
func Render(g Geometry, s Selection) []Primitive {
	knob := g.KnobCenter(s.Angle)
	return []Primitive{
		{
			Op:     OpFill,
			Name:   NameBackground,
			Paint:  Paint{Style: StyleFill, Color: Background(), AntiAlias: true},
			Static: true,
		},
		{
			Op:     OpCircle,
			Name:   NameHueRing,
			Center: g.Center(),
			Radius: g.GradientRadius(),
			Paint: Paint{
				Style:     StyleFill,
				Shader:    RingShader(g),
				AntiAlias: true,
			},
			Static: true,
		},
		{
			Op:     OpCircle,
			Name:   NameHole,
			Center: g.Center(),
			Radius: g.HoleRadius(),
			Paint:  Paint{Style: StyleFill, Color: Background(), AntiAlias: true},
			Static: true,
		},
		{
			Op:     OpCircle,
			Name:   NameKnob,
			Center: knob,
			Radius: g.KnobRadius(),
			Paint:  Paint{Style: StyleFill, Color: s.Color, AntiAlias: true},
		},
		{
			Op:     OpCircle,
			Name:   NameKnobOutline,
			Center: knob,
			Radius: g.KnobRadius(),
			Paint: Paint{
				Style:       StyleStroke,
				Color:       Background(),
				StrokeWidth: float64(g.RingStroke),
				AntiAlias:   true,
			},
		},
		triangle(g),
	}
}

// RingShader is the sweep gradient that paints the hue ring.
func RingShader(g Geometry) SweepGradient {
	return SweepGradient{Center: g.Center(), Colors: HueRing()}
}

func triangle(g Geometry) Primitive {
	corners := g.Triangle()
	return Primitive{
		Op:     OpPolygon,
		Name:   NameTriangle,
		Points: corners[:],
		Paint: Paint{
			Style:     StyleFill,
			Color:     White,
			Shader:    TriangleShader(corners),
			AntiAlias: true,
		},
		Static: true,
	}
}

// TriangleShader shades the decorative triangle: white fading to black along
// its first edge, multiplied with white fading to black along its second.
func TriangleShader(corners [3]Point) ComposeShader {
	return ComposeShader{
		Dst:  LinearGradient{From: corners[0], To: corners[1], FromColor: White, ToColor: Black},
		Src:  LinearGradient{From: corners[1], To: corners[2], FromColor: White, ToColor: Black},
		Mode: BlendMultiply,
	}
}
