package astro

import (
	"math"
	"time"
)

const (
	// J2000 is the Julian date of the J2000.0 epoch,
	// 2000 January 1, 12:00 UTC
	J2000 = 2451545.0

	// DaysPerCentury is the length of a Julian century
	DaysPerCentury = 36525.0

	minutesPerDay = 24 * 60

	// The truncated longitude series lose accuracy far from
	// J2000.0, so conversion is bounded to four centuries on
	// either side of the epoch
	supportedCenturies = 4.0

	maxOffsetMinutes = 14 * 60
)

// CivilMoment is a civil wall-clock timestamp with a fixed numeric
// UTC offset. It carries calendar fields rather than an instant so
// that conversion owns the Gregorian arithmetic.
type CivilMoment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int

	// UTCOffsetMinutes is the signed offset of the civil clock
	// from UTC, e.g. +330 for +05:30
	UTCOffsetMinutes int
}

// JulianMoment is a CivilMoment converted to astronomical time
// coordinates: the Julian date and Julian centuries elapsed since
// the J2000.0 epoch.
type JulianMoment struct {
	JulianDay float64
	Centuries float64
}

// Convert validates a civil timestamp and converts it to Julian time
// coordinates, normalizing to UTC by removing the civil offset.
//
// The day count follows the standard Gregorian conversion:
// https://en.wikipedia.org/wiki/Julian_day
func Convert(m CivilMoment) (JulianMoment, error) {
	if err := m.Validate(); err != nil {
		return JulianMoment{}, err
	}

	year, month := m.Year, m.Month
	if month <= 2 {
		year--
		month += 12
	}

	century := year / 100
	gregorian := 2 - century + century/4

	day := math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(m.Day) + float64(gregorian) - 1524.5
	day += (float64(m.Hour)+float64(m.Minute)/60)/24 - float64(m.UTCOffsetMinutes)/minutesPerDay

	centuries := (day - J2000) / DaysPerCentury
	if math.Abs(centuries) > supportedCenturies {
		return JulianMoment{}, ErrUnsupportedTimeSpan.Appendf("julian day %.1f", day)
	}

	return JulianMoment{
		JulianDay: day,
		Centuries: centuries,
	}, nil
}

// CivilFromTime converts a time.Time into the equivalent CivilMoment,
// preserving the zone offset the time is expressed in.
func CivilFromTime(t time.Time) CivilMoment {
	_, offset := t.Zone()
	return CivilMoment{
		Year:             t.Year(),
		Month:            int(t.Month()),
		Day:              t.Day(),
		Hour:             t.Hour(),
		Minute:           t.Minute(),
		UTCOffsetMinutes: offset / 60,
	}
}

// Validate checks the calendar fields and UTC offset. Callers of
// Convert get this for free.
func (m CivilMoment) Validate() error {
	if m.Month < 1 || m.Month > 12 {
		return ErrInvalidCalendarField.Appendf("month %d", m.Month)
	}
	if m.Day < 1 || m.Day > daysInMonth(m.Year, m.Month) {
		return ErrInvalidCalendarField.Appendf("day %d of month %d", m.Day, m.Month)
	}
	if m.Hour < 0 || m.Hour > 23 {
		return ErrInvalidCalendarField.Appendf("hour %d", m.Hour)
	}
	if m.Minute < 0 || m.Minute > 59 {
		return ErrInvalidCalendarField.Appendf("minute %d", m.Minute)
	}
	if m.UTCOffsetMinutes < -maxOffsetMinutes || m.UTCOffsetMinutes > maxOffsetMinutes {
		return ErrOffsetOutOfRange.Appendf("%+d minutes", m.UTCOffsetMinutes)
	}
	return nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
