package astro

// Mean orbital elements of the Sun as polynomials in Julian
// centuries since J2000.0. Rates are per Julian century.
const (
	sunPerihelionAtEpoch    = 282.94047064025
	sunPerihelionPerCentury = 1.7200900875

	sunAnomalyAtEpoch    = 357.52540038775
	sunAnomalyPerCentury = 35999.0494417125
)

// SolarMeanAnomaly calculates the fraction of the sun's orbital
// period elapsed since perihelion, in degrees on [0, 360).
func SolarMeanAnomaly(centuries float64) float64 {
	return Normalize360(sunAnomalyAtEpoch + sunAnomalyPerCentury*centuries)
}

// EquationOfTheCenter calculates the angular difference between the
// position of the actual sun (with an elliptical orbit) and the mean
// sun (with a circular orbit), as a harmonic series in the mean
// anomaly.
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EquationOfTheCenter(meanAnomaly float64) float64 {
	firstOrder := 1.9148 * sinDeg(meanAnomaly)
	secondOrder := 0.0200 * sinDeg(2*meanAnomaly)
	thirdOrder := 0.0003 * sinDeg(3*meanAnomaly)

	return firstOrder + secondOrder + thirdOrder
}

// SunLongitude calculates the sun's geocentric tropical ecliptic
// longitude at the given century offset from J2000.0, in degrees on
// [0, 360). The calculation is pure and stateless, so it is safe to
// evaluate concurrently for independent inputs.
func SunLongitude(centuries float64) float64 {
	perihelion := sunPerihelionAtEpoch + sunPerihelionPerCentury*centuries
	anomaly := SolarMeanAnomaly(centuries)
	center := EquationOfTheCenter(anomaly)

	return Normalize360(perihelion + anomaly + center)
}
