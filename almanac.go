// Package panchangad computes and records a daily Panchanga almanac
// for a fixed observer location. The Panchanga day traditionally
// begins at local sunrise, so the almanac runs as a cron job whose
// schedule tracks the sunrise at that location.
package panchangad

import (
	"context"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"go.uber.org/zap"

	"panchangad/astro"
	"panchangad/internal/store"
	"panchangad/panchanga"
)

// Location is an observer position with the fixed UTC offset its
// civil clock runs on.
type Location struct {
	Latitude         float64
	Longitude        float64
	UTCOffsetMinutes int
}

// Almanac computes the Panchanga for its location once per sunrise
// and records it.
type Almanac struct {
	Location Location
	Log      *zap.Logger
	Store    *store.Store
}

// Run computes the Panchanga for the current civil moment at the
// almanac's location, logs it, and records it when a store is
// configured.
//
// This implements robfig/cron.Job
func (a Almanac) Run() {
	local := a.localNow()
	moment := astro.CivilMoment{
		Year:             local.Year(),
		Month:            int(local.Month()),
		Day:              local.Day(),
		Hour:             local.Hour(),
		Minute:           local.Minute(),
		UTCOffsetMinutes: a.Location.UTCOffsetMinutes,
	}

	result, err := panchanga.Compute(moment)
	if err != nil {
		a.Log.Error("compute almanac", zap.Error(err))
		return
	}

	a.Log.Info("daily almanac",
		zap.String("date", local.Format("02/01/2006")),
		zap.String("tithi", result.TithiName),
		zap.String("paksha", string(result.Paksha)),
		zap.String("nakshatra", result.NakshatraName),
		zap.String("yoga", result.YogaName),
		zap.String("karana", result.KaranaName),
		zap.String("rashi", result.RashiName),
	)

	if a.Store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = a.Store.Save(ctx, store.Computation{
		CivilDate:        local.Format("02/01/2006"),
		CivilTime:        local.Format("15:04"),
		UTCOffsetMinutes: a.Location.UTCOffsetMinutes,
		JulianDay:        result.JulianDay,
		Tithi:            result.TithiName,
		Paksha:           string(result.Paksha),
		Nakshatra:        result.NakshatraName,
		Yoga:             result.YogaName,
		Karana:           result.KaranaName,
		Rashi:            result.RashiName,
	})
	if err != nil {
		a.Log.Warn("record almanac", zap.Error(err))
	}
}

// Next determines the next sunrise at the almanac's location, today
// or tomorrow in the location's civil day. The zero time is returned
// when the sun does not rise at all (polar latitudes), which stops
// further scheduling.
//
// This implements robfig/cron.Schedule
func (a Almanac) Next(now time.Time) time.Time {
	offset := time.Duration(a.Location.UTCOffsetMinutes) * time.Minute
	local := now.UTC().Add(offset)

	for days := 0; days <= 1; days++ {
		day := local.AddDate(0, 0, days)
		rise, _ := sunrise.SunriseSunset(
			a.Location.Latitude, a.Location.Longitude,
			day.Year(), day.Month(), day.Day(),
		)
		if rise.After(now) {
			return rise
		}
	}

	return time.Time{}
}

func (a Almanac) localNow() time.Time {
	offset := time.Duration(a.Location.UTCOffsetMinutes) * time.Minute
	return time.Now().UTC().Add(offset)
}
