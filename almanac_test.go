package panchangad

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"panchangad/internal/store"
)

var chennai = Location{
	Latitude:         13.0827,
	Longitude:        80.2707,
	UTCOffsetMinutes: 330,
}

func TestAlmanacNext(t *testing.T) {
	almanac := Almanac{Location: chennai, Log: zap.NewNop()}

	now := time.Date(2023, 8, 15, 0, 0, 0, 0, time.UTC)
	next := almanac.Next(now)

	require.False(t, next.IsZero())
	assert.True(t, next.After(now), "next sunrise must be in the future")
	assert.True(t, next.Before(now.Add(24*time.Hour)), "next sunrise within a day")

	// scheduling from that sunrise lands on the following one
	after := almanac.Next(next)
	require.False(t, after.IsZero())
	assert.True(t, after.After(next))
	assert.True(t, after.Sub(next) > 23*time.Hour)
	assert.True(t, after.Sub(next) < 25*time.Hour)
}

func TestAlmanacNextPolarNight(t *testing.T) {
	svalbard := Almanac{
		Location: Location{Latitude: 78.22, Longitude: 15.65, UTCOffsetMinutes: 60},
		Log:      zap.NewNop(),
	}

	// mid polar night: the sun does not rise, scheduling stops
	next := svalbard.Next(time.Date(2023, 12, 21, 12, 0, 0, 0, time.UTC))
	assert.True(t, next.IsZero())
}

func TestAlmanacRunRecords(t *testing.T) {
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	almanac := Almanac{Location: chennai, Log: zap.NewNop(), Store: st}
	almanac.Run()

	count, err := st.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	records, err := st.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 330, records[0].UTCOffsetMinutes)
	assert.NotEmpty(t, records[0].Tithi)
	assert.NotEmpty(t, records[0].Rashi)
}

func TestAlmanacRunWithoutStore(t *testing.T) {
	almanac := Almanac{Location: chennai, Log: zap.NewNop()}
	assert.NotPanics(t, almanac.Run)
}
