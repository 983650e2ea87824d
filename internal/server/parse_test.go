package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panchangad/astro"
)

func TestParseMoment(t *testing.T) {
	tests := []struct {
		name string
		req  PanchangRequest
		want astro.CivilMoment
	}{
		{
			name: "positive offset",
			req:  PanchangRequest{Date: "15/08/2023", Time: "12:30", Zone: "+05:30"},
			want: astro.CivilMoment{Year: 2023, Month: 8, Day: 15, Hour: 12, Minute: 30, UTCOffsetMinutes: 330},
		},
		{
			name: "negative offset",
			req:  PanchangRequest{Date: "09/09/1991", Time: "23:45", Zone: "-04:30"},
			want: astro.CivilMoment{Year: 1991, Month: 9, Day: 9, Hour: 23, Minute: 45, UTCOffsetMinutes: -270},
		},
		{
			name: "offset without sign",
			req:  PanchangRequest{Date: "01/01/2000", Time: "12:00", Zone: "05:30"},
			want: astro.CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 12, Minute: 0, UTCOffsetMinutes: 330},
		},
		{
			name: "utc",
			req:  PanchangRequest{Date: "01/01/2000", Time: "12:00", Zone: "+00:00"},
			want: astro.CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moment, err := ParseMoment(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, moment)
		})
	}
}

func TestParseMomentRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		req  PanchangRequest
	}{
		{"dashed date", PanchangRequest{Date: "15-08-2023", Time: "12:30", Zone: "+05:30"}},
		{"short date", PanchangRequest{Date: "15/08", Time: "12:30", Zone: "+05:30"}},
		{"alpha day", PanchangRequest{Date: "aa/08/2023", Time: "12:30", Zone: "+05:30"}},
		{"alpha month", PanchangRequest{Date: "15/bb/2023", Time: "12:30", Zone: "+05:30"}},
		{"alpha year", PanchangRequest{Date: "15/08/cccc", Time: "12:30", Zone: "+05:30"}},
		{"time with seconds", PanchangRequest{Date: "15/08/2023", Time: "12:30:00", Zone: "+05:30"}},
		{"alpha time", PanchangRequest{Date: "15/08/2023", Time: "xx:30", Zone: "+05:30"}},
		{"empty zone", PanchangRequest{Date: "15/08/2023", Time: "12:30", Zone: ""}},
		{"zone missing minutes", PanchangRequest{Date: "15/08/2023", Time: "12:30", Zone: "+05"}},
		{"doubled sign", PanchangRequest{Date: "15/08/2023", Time: "12:30", Zone: "+-05:30"}},
		{"interior sign", PanchangRequest{Date: "15/08/2023", Time: "12:30", Zone: "05:-30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMoment(tt.req)
			assert.Error(t, err)
		})
	}
}
