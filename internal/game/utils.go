package game

import (
	"fmt"

	"github.com/iburimskiy/colorator/internal/wheel"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// statusLine formats the selection for the on-screen readout.
func statusLine(sel wheel.Selection, state wheel.State, err error) string {
	s := fmt.Sprintf("%s  hue %d  %s", sel.Color.Hex(), sel.Angle, state)
	if err != nil {
		s += " | Error: " + err.Error()
	}
	return s
}
