package natal

import (
	"errors"
	"testing"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToUTC_ShiftsByLongitudeHours(t *testing.T) {
	date := time.Date(1990, time.July, 15, 0, 0, 0, 0, time.UTC)

	utc, err := ConvertToUTC(date, "14:30", 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, time.July, 15, 12, 30, 0, 0, time.UTC), utc)

	utc, err = ConvertToUTC(date, "22:00", -5)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, time.July, 16, 3, 0, 0, 0, time.UTC), utc)
}

func TestConvertToUTC_IgnoresClockOfDate(t *testing.T) {
	date := time.Date(1990, time.July, 15, 23, 59, 0, 0, time.UTC)

	utc, err := ConvertToUTC(date, "00:00", 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, time.July, 15, 0, 0, 0, 0, time.UTC), utc)
}

func TestConvertToUTC_InvalidTime(t *testing.T) {
	date := time.Date(1990, time.July, 15, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"", "24:00", "12:60", "7:30", "12-30", "ab:cd", "12:300"} {
		_, err := ConvertToUTC(date, in, 0)
		assert.Truef(t, errors.Is(err, domain.ErrInvalidInput), "input %q", in)
	}
}

func TestSiderealTime_AtJ2000(t *testing.T) {
	assert.InDelta(t, 280.46061837/15, SiderealTime(J2000), 1e-9)
}

func TestSiderealTime_AlwaysWithinDay(t *testing.T) {
	start := time.Date(1850, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		instant := start.Add(time.Duration(i) * 37 * time.Hour * 24)
		h := SiderealTime(instant)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 24.0)
	}
}

func TestAdjustSiderealTimeByLongitude(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		lon      float64
		expected float64
	}{
		{"east wraps past midnight", 23, 30, 1},
		{"west wraps below zero", 1, -45, 22},
		{"antimeridian", 0, -180, 12},
		{"no shift", 5.5, 0, 5.5},
		{"big negative input", -100, -170, 8.6666666667},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AdjustSiderealTimeByLongitude(tt.hours, tt.lon), 1e-6)
		})
	}
}

func TestAdjustSiderealTimeByLongitude_AlwaysWithinDay(t *testing.T) {
	for h := -72.0; h <= 72; h += 0.7 {
		for lon := -540.0; lon <= 540; lon += 13.3 {
			got := AdjustSiderealTimeByLongitude(h, lon)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 24.0)
		}
	}
}

func TestAscendant(t *testing.T) {
	tests := []struct {
		name   string
		hours  float64
		lat    float64
		sign   domain.Sign
		degree int
	}{
		{"zero", 0, 0, domain.SignAries, 0},
		{"mid aries", 1, 0, domain.SignAries, 15},
		{"start of taurus", 2, 0, domain.SignTaurus, 0},
		{"southern latitude wraps to pisces", 0, -40, domain.SignPisces, 10},
		{"past full circle", 23.9, 90, domain.SignTaurus, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sign, degree := Ascendant(tt.hours, tt.lat)
			assert.Equal(t, tt.sign, sign)
			assert.Equal(t, tt.degree, degree)
		})
	}
}

func TestAscendant_AlwaysCanonicalSign(t *testing.T) {
	for h := 0.0; h < 24; h += 0.25 {
		for lat := -90.0; lat <= 90; lat += 7.5 {
			sign, degree := Ascendant(h, lat)
			assert.True(t, sign.IsValid())
			assert.GreaterOrEqual(t, degree, 0)
			assert.Less(t, degree, domain.DegreesPerSign)
		}
	}
}
