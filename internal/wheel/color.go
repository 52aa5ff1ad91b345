package wheel

import (
	"fmt"
	"math"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Yellow  = RGB{255, 255, 0}
	Green   = RGB{0, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Blue    = RGB{0, 0, 255}
	Magenta = RGB{255, 0, 255}
)

// RGBA implements color.Color. The alpha channel is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// MarshalText encodes the color as #rrggbb so draw lists serialize compactly.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// HSV converts a hue in degrees plus saturation and value in [0,1] to RGB.
// The hue wraps, so 360 and 0 give the same color.
func HSV(h, s, v float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp(s, 0, 1)
	v = clamp(v, 0, 1)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB{channel(r + m), channel(g + m), channel(b + m)}
}

// AngleToColor maps a selection angle to the fully saturated, full value hue
// at that angle.
func AngleToColor(angle int) RGB {
	return HSV(float64(normalizeDegrees(angle)), 1, 1)
}

// lerp interpolates between two colors channel by channel.
func lerp(a, b RGB, t float64) RGB {
	t = clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return channel((float64(x) + (float64(y)-float64(x))*t) / 255)
	}
	return RGB{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B)}
}

// multiply blends two colors the way a multiply transfer mode does.
func multiply(a, b RGB) RGB {
	mul := func(x, y uint8) uint8 {
		return channel(float64(x) / 255 * float64(y) / 255)
	}
	return RGB{mul(a.R, b.R), mul(a.G, b.G), mul(a.B, b.B)}
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v*255, 0, 255)))
}

func clamp(v, min, max float64) float64 {
	if v < min || math.IsNaN(v) {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func normalizeDegrees(angle int) int {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return angle
}
