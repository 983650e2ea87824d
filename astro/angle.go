package astro

import (
	"math"
)

const degreesToRadians = math.Pi / 180

// Normalize360 maps an angle in degrees onto [0, 360).
// Normalizing an already-normalized angle is a no-op.
func Normalize360(degrees float64) float64 {
	m := math.Mod(degrees, 360)
	if m < 0 {
		m += 360
	}
	// a tiny negative remainder rounds to exactly 360 above; the
	// half-open interval keeps segment indices in range
	if m >= 360 {
		m = 0
	}
	return m
}

func sinDeg(degrees float64) float64 {
	return math.Sin(degrees * degreesToRadians)
}
