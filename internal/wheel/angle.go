package wheel

import "math"

// ResolveAngle converts a pointer position into a selection angle in whole
// degrees, [0, 360), dropping any fraction of a degree. Angles grow clockwise
// in y-down coordinates: right is 0, down 90, left 180, up 270.
//
// There is no radius check. A pointer anywhere, even well outside the ring,
// selects the hue in its direction. A pointer exactly at the center resolves
// to 0.
func ResolveAngle(x, y float64, g Geometry) int {
	dx := x - g.CenterX
	dy := y - g.CenterY
	if math.IsNaN(dx) || math.IsNaN(dy) {
		return 0
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return normalizeDegrees(int(math.Floor(deg)))
}
