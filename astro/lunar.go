package astro

// Mean orbital elements of the Moon as polynomials in Julian
// centuries since J2000.0. Rates are per Julian century.
const (
	moonAnomalyAtEpoch    = 134.96288942635
	moonAnomalyPerCentury = 477198.8675316225

	moonNodeAtEpoch    = 125.04336928755
	moonNodePerCentury = -1934.1378481575

	moonPerigeeAtEpoch    = 318.30993598345
	moonPerigeePerCentury = 6003.1511970075
)

// MoonLongitude calculates the moon's geocentric tropical ecliptic
// longitude at the given century offset from J2000.0, in degrees on
// [0, 360).
//
// The moon needs more periodic terms than the sun for comparable
// accuracy: after the equation of the center and the reduction to
// the ecliptic, the largest perturbations by the sun (evection,
// variation, the annual equation and the remaining principal
// inequalities) are summed from the four fundamental arguments. Term
// order is fixed so results are bit-reproducible.
func MoonLongitude(centuries float64) float64 {
	node := moonNodeAtEpoch + moonNodePerCentury*centuries
	perigee := moonPerigeeAtEpoch + moonPerigeePerCentury*centuries
	anomaly := Normalize360(moonAnomalyAtEpoch + moonAnomalyPerCentury*centuries)
	sunAnomaly := SolarMeanAnomaly(centuries)

	mean := node + perigee + anomaly
	sunMean := (sunPerihelionAtEpoch + sunPerihelionPerCentury*centuries) + sunAnomaly
	elongation := mean - sunMean
	latitudeArg := mean - node

	longitude := mean
	longitude += 6.2887 * sinDeg(anomaly) // equation of the center
	longitude += 0.2136 * sinDeg(2*anomaly)
	longitude += 0.0108 * sinDeg(3*anomaly)
	longitude += -0.1143 * sinDeg(2*latitudeArg) // reduction to the ecliptic
	longitude += -1.274 * sinDeg(anomaly - 2*elongation) // evection
	longitude += 0.658 * sinDeg(2*elongation) // variation
	longitude += -0.186 * sinDeg(sunAnomaly) // annual equation
	longitude += -0.059 * sinDeg(2*anomaly - 2*elongation)
	longitude += -0.057 * sinDeg(anomaly - 2*elongation + sunAnomaly)
	longitude += 0.053 * sinDeg(anomaly + 2*elongation)
	longitude += 0.046 * sinDeg(2*elongation - sunAnomaly)
	longitude += 0.041 * sinDeg(anomaly - sunAnomaly)
	longitude += -0.035 * sinDeg(elongation) // parallactic equation
	longitude += -0.031 * sinDeg(anomaly + sunAnomaly)
	longitude += -0.015 * sinDeg(2*latitudeArg - 2*elongation)
	longitude += 0.011 * sinDeg(anomaly - 4*elongation)

	return Normalize360(longitude)
}
