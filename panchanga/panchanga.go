// Package panchanga derives the five traditional Hindu calendrical
// elements (tithi, nakshatra, yoga, karana and rashi) for a civil
// timestamp from truncated solar and lunar longitude series.
//
// All five elements are derived from sidereal (Lahiri) longitudes.
// Some traditions sum tropical longitudes for yoga instead; this
// package uses the sidereal sum so that every derivation shares one
// frame of reference.
package panchanga

import (
	"math"

	"panchangad/astro"
)

// Paksha is a lunar fortnight: waxing while the moon pulls ahead of
// the sun through the first fifteen tithis, waning after.
type Paksha string

const (
	PakshaShukla  Paksha = "Shukla"
	PakshaKrishna Paksha = "Krishna"
)

// segmentArc is the nakshatra and yoga segment width, 13°20'.
const segmentArc = 360.0 / 27.0

// Result is the derived Panchanga for a single civil moment. All
// index fields are 1-based; names come from the fixed tables in this
// package. The value is terminal: nothing mutates it after Compute
// returns.
type Result struct {
	Tithi     int
	TithiName string
	Paksha    Paksha

	Nakshatra     int
	NakshatraName string

	Yoga     int
	YogaName string

	Karana     int
	KaranaName string

	Rashi     int
	RashiName string

	// Intermediate quantities, useful for logging and regression
	// comparison. Longitudes are sidereal degrees on [0, 360).
	JulianDay     float64
	Ayanamsa      float64
	SunLongitude  float64
	MoonLongitude float64
}

// Compute converts the civil moment to Julian centuries, evaluates
// the solar and lunar longitude series, applies the Lahiri ayanamsa
// and derives the five elements. It is a pure function: concurrent
// calls share nothing but the immutable name tables.
func Compute(moment astro.CivilMoment) (Result, error) {
	jm, err := astro.Convert(moment)
	if err != nil {
		return Result{}, err
	}

	ayanamsa := astro.Ayanamsa(jm.Centuries)
	sun := astro.ToSidereal(astro.SunLongitude(jm.Centuries), ayanamsa)
	moon := astro.ToSidereal(astro.MoonLongitude(jm.Centuries), ayanamsa)

	// The moon gains roughly 12° on the sun per lunar day; both
	// operands are normalized so the difference never goes negative.
	delta := astro.Normalize360(moon - sun)

	tithi := int(math.Floor(delta/12)) + 1
	paksha := PakshaShukla
	if tithi > 15 {
		paksha = PakshaKrishna
	}

	halfTithi := int(math.Floor(delta/6)) + 1
	karana := karanaIndex(halfTithi)

	nakshatra := int(math.Floor(moon/segmentArc)) + 1
	yoga := int(math.Floor(astro.Normalize360(sun+moon)/segmentArc)) + 1
	rashi := int(math.Floor(moon/30)) + 1

	return Result{
		Tithi:     tithi,
		TithiName: tithiNames[tithi-1],
		Paksha:    paksha,

		Nakshatra:     nakshatra,
		NakshatraName: nakshatraNames[nakshatra-1],

		Yoga:     yoga,
		YogaName: yogaNames[yoga-1],

		Karana:     karana,
		KaranaName: karanaNames[karana-1],

		Rashi:     rashi,
		RashiName: rashiNames[rashi-1],

		JulianDay:     jm.JulianDay,
		Ayanamsa:      ayanamsa,
		SunLongitude:  sun,
		MoonLongitude: moon,
	}, nil
}

// karanaIndex maps a half-tithi ordinal (1..60) to the 1-based
// karana index. The cycle is irregular by tradition: the first half
// of the first tithi is the fixed Kimstughna, the last three halves
// of the month are the fixed Shakuni, Chatushpada and Naga, and the
// 56 halves in between cycle through the seven movable names. The
// piecewise rule is deliberate; a single modulus cannot express it.
func karanaIndex(halfTithi int) int {
	switch halfTithi {
	case 1:
		return 11 // Kimstughna
	case 58:
		return 8 // Shakuni
	case 59:
		return 9 // Chatushpada
	case 60:
		return 10 // Naga
	default:
		return (halfTithi-2)%7 + 1
	}
}
