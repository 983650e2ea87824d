package astro

// The Lahiri ayanamsa polynomial is anchored to the 1900 epoch, so
// century offsets from J2000.0 are shifted before evaluation.
const centuriesFrom1900 = 36523.5 / 36525.0

// Ayanamsa calculates the Lahiri precession offset between the
// tropical and sidereal zodiacs, in degrees: roughly 23.854 at
// J2000.0, growing by about 50.3 arcseconds per year. The two
// periodic terms are the classical nutation corrections in the
// longitude of the moon's ascending node and twice the sun's mean
// longitude.
func Ayanamsa(centuries float64) float64 {
	t := centuries + centuriesFrom1900

	node := 259.183275 - 1934.142008333206*t + 0.0020777778*t*t
	sun := 279.696678 + 36000.76892*t + 0.0003025*t*t

	arcseconds := (5025.64+1.11*t)*t + 80861.27 - 17.23*sinDeg(node) - 1.27*sinDeg(2*sun)
	return arcseconds / 3600
}

// ToSidereal converts a tropical ecliptic longitude to a sidereal
// one by removing the ayanamsa. The result is normalized to [0, 360).
func ToSidereal(tropical, ayanamsa float64) float64 {
	return Normalize360(tropical - ayanamsa)
}
