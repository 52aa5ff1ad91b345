package wheel

// HueRing returns the anchor colors of the hue ring gradient, evenly spaced
// around the circle starting at angle 0. The last anchor repeats the first to
// close the loop. Each call returns a fresh slice.
func HueRing() []RGB {
	return []RGB{Red, Yellow, Green, Cyan, Blue, Magenta, Red}
}

// HueRingSegment is the angular span in degrees between adjacent anchors.
const HueRingSegment = 360 / 6
