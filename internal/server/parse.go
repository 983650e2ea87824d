package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ansel1/merry"

	"panchangad/astro"
)

// Request field formats follow the wire contract: date DD/MM/YYYY,
// time HH:MM (24-hour), zone ±HH:MM. Malformed input is rejected
// here, before the core is called; range validation of the parsed
// fields belongs to the core.

func badRequest(format string, args ...interface{}) error {
	return merry.Errorf(format, args...).WithHTTPCode(http.StatusBadRequest)
}

// ParseMoment assembles a CivilMoment from the request's raw date,
// time and zone strings.
func ParseMoment(req PanchangRequest) (astro.CivilMoment, error) {
	day, month, year, err := parseDate(req.Date)
	if err != nil {
		return astro.CivilMoment{}, err
	}

	hour, minute, err := parseClock(req.Time)
	if err != nil {
		return astro.CivilMoment{}, merry.Prepend(err, "parse time")
	}

	offset, err := parseZone(req.Zone)
	if err != nil {
		return astro.CivilMoment{}, err
	}

	return astro.CivilMoment{
		Year:             year,
		Month:            month,
		Day:              day,
		Hour:             hour,
		Minute:           minute,
		UTCOffsetMinutes: offset,
	}, nil
}

func parseDate(s string) (day, month, year int, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, badRequest("parse date: expected DD/MM/YYYY, got %q", s)
	}

	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, badRequest("parse date: invalid day %q", parts[0])
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, badRequest("parse date: invalid month %q", parts[1])
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, badRequest("parse date: invalid year %q", parts[2])
	}

	return day, month, year, nil
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, badRequest("expected HH:MM, got %q", s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, badRequest("invalid hours %q", parts[0])
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, badRequest("invalid minutes %q", parts[1])
	}

	return hour, minute, nil
}

// parseZone converts a ±HH:MM offset into signed minutes east of
// UTC. A missing sign means east.
func parseZone(s string) (int, error) {
	sign := 1
	trimmed := s
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		trimmed = s[1:]
	case strings.HasPrefix(s, "+"):
		trimmed = s[1:]
	}

	hour, minute, err := parseClock(trimmed)
	if err != nil {
		return 0, merry.Prepend(err, "parse zone")
	}
	if hour < 0 || minute < 0 {
		return 0, badRequest("parse zone: misplaced sign in %q", s)
	}

	return sign * (hour*60 + minute), nil
}
