package timemath

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "06:30", "08:05", "12:00", "21:10", "23:59"} {
		m, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, Format(m))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "06:30", want: 390},
		{in: "6:5", want: 365},
		{in: "25:10", want: 1510},
		{in: " 13:00 ", want: 780},
		{in: "", wantErr: true},
		{in: "0630", wantErr: true},
		{in: "06:30:00", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDoesNotWrap(t *testing.T) {
	assert.Equal(t, "25:10", Format(1510))
	assert.Equal(t, "24:00", Format(MinutesPerDay))
	assert.Equal(t, "-00:15", Format(-15))
}

func TestParseMinuteOfDay(t *testing.T) {
	m, err := ParseMinuteOfDay("23:59")
	require.NoError(t, err)
	assert.Equal(t, MinuteOfDay(1439), m)
	assert.Equal(t, "23:59", m.String())

	_, err = ParseMinuteOfDay("24:00")
	assert.Error(t, err)
	_, err = ParseMinuteOfDay("10:75")
	assert.Error(t, err)

	_, err = NewMinuteOfDay(-1)
	assert.ErrorIs(t, err, ErrMinuteOutOfRange)
	_, err = NewMinuteOfDay(MinutesPerDay)
	assert.ErrorIs(t, err, ErrMinuteOutOfRange)
}

func TestNormalizeAndISODate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	// 20:00 UTC is already the next day in IST.
	ts := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	day := NormalizeDate(ts, ist)
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, 0, day.Minute())
	assert.Equal(t, "2026-03-10", ISODate(ts, ist))

	parsed, err := ParseISODate("2026-03-10", ist)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(day))

	_, err = ParseISODate("10/03/2026", ist)
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	a := time.Date(2026, 3, 28, 0, 0, 0, 0, loc)
	b := time.Date(2026, 3, 30, 0, 0, 0, 0, loc) // across the DST switch
	assert.Equal(t, 2, DaysBetween(a, b))
	assert.Equal(t, -2, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 7, DaysBetween(a, AddDays(a, 7)))
}
