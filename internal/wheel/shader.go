package wheel

import (
	"encoding/json"
	"math"
)

// Point is a position in widget-local coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shader computes the fill color at a point. Shaders are plain values; hosts
// that want to reuse the rasterized result cache it themselves.
type Shader interface {
	ColorAt(x, y float64) RGB
	Kind() string
}

// SweepGradient varies color by angle around Center. Colors are spaced evenly
// over the full circle starting at angle 0 and running clockwise in y-down
// coordinates.
type SweepGradient struct {
	Center Point `json:"center"`
	Colors []RGB `json:"colors"`
}

func (SweepGradient) Kind() string { return "sweep" }

func (s SweepGradient) ColorAt(x, y float64) RGB {
	switch len(s.Colors) {
	case 0:
		return Black
	case 1:
		return s.Colors[0]
	}
	dx := x - s.Center.X
	dy := y - s.Center.Y
	if dx == 0 && dy == 0 {
		return s.Colors[0]
	}
	rad := math.Atan2(dy, dx)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	segments := len(s.Colors) - 1
	pos := rad / (2 * math.Pi) * float64(segments)
	i := int(pos)
	if i >= segments {
		return s.Colors[segments]
	}
	return lerp(s.Colors[i], s.Colors[i+1], pos-float64(i))
}

func (s SweepGradient) MarshalJSON() ([]byte, error) {
	type plain SweepGradient
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{s.Kind(), plain(s)})
}

// LinearGradient runs from FromColor at From to ToColor at To and clamps
// beyond both ends.
type LinearGradient struct {
	From      Point `json:"from"`
	To        Point `json:"to"`
	FromColor RGB   `json:"fromColor"`
	ToColor   RGB   `json:"toColor"`
}

func (LinearGradient) Kind() string { return "linear" }

func (l LinearGradient) ColorAt(x, y float64) RGB {
	vx := l.To.X - l.From.X
	vy := l.To.Y - l.From.Y
	lenSq := vx*vx + vy*vy
	if lenSq == 0 {
		return l.FromColor
	}
	t := ((x-l.From.X)*vx + (y-l.From.Y)*vy) / lenSq
	return lerp(l.FromColor, l.ToColor, t)
}

func (l LinearGradient) MarshalJSON() ([]byte, error) {
	type plain LinearGradient
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{l.Kind(), plain(l)})
}

// BlendMode selects how ComposeShader merges its two inputs.
type BlendMode int

const (
	BlendMultiply BlendMode = iota
)

func (m BlendMode) String() string {
	switch m {
	case BlendMultiply:
		return "multiply"
	}
	return "unknown"
}

func (m BlendMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ComposeShader blends the output of two shaders.
type ComposeShader struct {
	Dst  Shader    `json:"dst"`
	Src  Shader    `json:"src"`
	Mode BlendMode `json:"mode"`
}

func (ComposeShader) Kind() string { return "compose" }

func (c ComposeShader) ColorAt(x, y float64) RGB {
	if c.Dst == nil || c.Src == nil {
		return Black
	}
	return multiply(c.Dst.ColorAt(x, y), c.Src.ColorAt(x, y))
}

func (c ComposeShader) MarshalJSON() ([]byte, error) {
	type plain ComposeShader
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{c.Kind(), plain(c)})
}
