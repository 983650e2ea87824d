package astro

import (
	"testing"
	"time"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		moment    CivilMoment
		julianDay float64
		centuries float64
	}{
		{
			name:      "j2000 epoch",
			moment:    CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 12},
			julianDay: 2451545.0,
			centuries: 0.0,
		},
		{
			name:      "india standard time",
			moment:    CivilMoment{Year: 2023, Month: 8, Day: 15, Hour: 12, Minute: 30, UTCOffsetMinutes: 330},
			julianDay: 2460171.7916666665,
			centuries: 0.2361886835500756,
		},
		{
			name:      "negative offset",
			moment:    CivilMoment{Year: 1991, Month: 9, Day: 9, Hour: 23, Minute: 45, UTCOffsetMinutes: -270},
			julianDay: 2448509.6770833335,
			centuries: -0.08310261236595513,
		},
		{
			name:      "evening with half-hour offset",
			moment:    CivilMoment{Year: 2024, Month: 4, Day: 10, Hour: 18, UTCOffsetMinutes: 330},
			julianDay: 2460411.0208333335,
			centuries: 0.24273842117271702,
		},
		{
			name:      "leap day",
			moment:    CivilMoment{Year: 2024, Month: 2, Day: 29, Hour: 0},
			julianDay: 2460369.5,
			centuries: 0.24160164271047227,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jm, err := Convert(tt.moment)
			require.NoError(t, err)
			assert.InDelta(t, tt.julianDay, jm.JulianDay, 1e-6)
			assert.InDelta(t, tt.centuries, jm.Centuries, 1e-12)
		})
	}
}

func TestConvertRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		moment CivilMoment
		want   error
	}{
		{
			name:   "month zero",
			moment: CivilMoment{Year: 2023, Month: 0, Day: 1},
			want:   ErrInvalidCalendarField,
		},
		{
			name:   "month thirteen",
			moment: CivilMoment{Year: 2023, Month: 13, Day: 1},
			want:   ErrInvalidCalendarField,
		},
		{
			name:   "day overflows month",
			moment: CivilMoment{Year: 2023, Month: 4, Day: 31},
			want:   ErrInvalidCalendarField,
		},
		{
			name:   "leap day in common year",
			moment: CivilMoment{Year: 2023, Month: 2, Day: 29},
			want:   ErrInvalidCalendarField,
		},
		{
			name:   "hour out of range",
			moment: CivilMoment{Year: 2023, Month: 8, Day: 15, Hour: 24},
			want:   ErrInvalidCalendarField,
		},
		{
			name:   "minute out of range",
			moment: CivilMoment{Year: 2023, Month: 8, Day: 15, Minute: 60},
			want:   ErrInvalidCalendarField,
		},
		{
			name:   "offset beyond fourteen hours",
			moment: CivilMoment{Year: 2023, Month: 8, Day: 15, UTCOffsetMinutes: 15 * 60},
			want:   ErrOffsetOutOfRange,
		},
		{
			name:   "offset beyond minus fourteen hours",
			moment: CivilMoment{Year: 2023, Month: 8, Day: 15, UTCOffsetMinutes: -15 * 60},
			want:   ErrOffsetOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.moment)
			require.Error(t, err)
			assert.True(t, merry.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestConvertRejectsDistantDates(t *testing.T) {
	for _, year := range []int{1595, 2405} {
		_, err := Convert(CivilMoment{Year: year, Month: 6, Day: 1})
		require.Error(t, err, "year %d", year)
		assert.True(t, merry.Is(err, ErrUnsupportedTimeSpan), "year %d: got %v", year, err)
	}

	// four centuries out, but still inside the window
	for _, year := range []int{1610, 2390} {
		_, err := Convert(CivilMoment{Year: year, Month: 6, Day: 1})
		assert.NoError(t, err, "year %d", year)
	}
}

func TestLeapDayAccepted(t *testing.T) {
	_, err := Convert(CivilMoment{Year: 2024, Month: 2, Day: 29})
	assert.NoError(t, err)

	_, err = Convert(CivilMoment{Year: 2000, Month: 2, Day: 29})
	assert.NoError(t, err, "century leap year")
}

func TestCivilFromTime(t *testing.T) {
	ist := time.FixedZone("IST", 330*60)
	moment := CivilFromTime(time.Date(2023, 8, 15, 12, 30, 0, 0, ist))

	assert.Equal(t, CivilMoment{
		Year:             2023,
		Month:            8,
		Day:              15,
		Hour:             12,
		Minute:           30,
		UTCOffsetMinutes: 330,
	}, moment)
}
