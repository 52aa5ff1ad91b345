package wheel

import "encoding/json"

// Op is the kind of shape a primitive draws.
type Op string

const (
	OpFill    Op = "fill"    // whole surface
	OpCircle  Op = "circle"  // Center and Radius
	OpPolygon Op = "polygon" // closed path through Points
)

// Style says whether a shape is filled or outlined.
type Style string

const (
	StyleFill   Style = "fill"
	StyleStroke Style = "stroke"
)

// Paint describes how a primitive is colored. Shader, when set, takes the
// place of Color.
type Paint struct {
	Style       Style   `json:"style"`
	Color       RGB     `json:"color"`
	Shader      Shader  `json:"shader,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	AntiAlias   bool    `json:"antiAlias"`
}

// ColorAt returns the paint color at a point.
func (p Paint) ColorAt(x, y float64) RGB {
	if p.Shader != nil {
		return p.Shader.ColorAt(x, y)
	}
	return p.Color
}

// Primitive is one drawing operation. A draw list is in painter's order,
// back to front.
type Primitive struct {
	Op     Op      `json:"op"`
	Name   string  `json:"name"`
	Center Point   `json:"center"`
	Radius float64 `json:"radius,omitempty"`
	Points []Point `json:"points,omitempty"`
	Paint  Paint   `json:"paint"`

	// Static primitives do not depend on the selection, only on the geometry.
	Static bool `json:"static"`
}

// DrawListJSON serializes a draw list.
func DrawListJSON(prims []Primitive) (string, error) {
	data, err := json.Marshal(prims)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
