package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResponse() *ForecastResponse {
	return &ForecastResponse{
		Timezone:         "America/New_York",
		UTCOffsetSeconds: -14400,
		Current:          &Current{Temperature2m: 72.3, WeatherCode: 0},
		Daily: &Daily{
			Time:             []string{"2025-07-25", "2025-07-26"},
			Temperature2mMax: []float64{81.4, 79.0},
			Temperature2mMin: []float64{64.0, 62.5},
			WeatherCode:      []int{0, 61},
		},
	}
}

func TestForecastResponse_Validate(t *testing.T) {
	assert.NoError(t, validResponse().Validate(2))
	assert.NoError(t, validResponse().Validate(0))

	tests := []struct {
		name   string
		mutate func(r *ForecastResponse)
		days   int
		msg    string
	}{
		{"missing timezone", func(r *ForecastResponse) { r.Timezone = "" }, 2, "missing timezone"},
		{"missing current", func(r *ForecastResponse) { r.Current = nil }, 2, "missing current block"},
		{"missing daily", func(r *ForecastResponse) { r.Daily = nil }, 2, "missing daily block"},
		{"empty daily", func(r *ForecastResponse) { r.Daily = &Daily{} }, 0, "no forecast days"},
		{"wrong horizon", func(r *ForecastResponse) {}, 8, "expected 8 forecast days, got 2"},
		{"short codes", func(r *ForecastResponse) { r.Daily.WeatherCode = []int{0} }, 2, "daily arrays differ in length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResponse()
			tt.mutate(r)

			err := r.Validate(tt.days)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestForecastResponse_ValidateProviderError(t *testing.T) {
	r := &ForecastResponse{Error: true, Reason: "Invalid latitude"}
	assert.NoError(t, r.Validate(8))
}

func TestForecastResponse_Location(t *testing.T) {
	r := validResponse()
	assert.Equal(t, "America/New_York", r.Location().String())

	r.Timezone = "Not/AZone"
	r.TimezoneAbbreviation = "GMT-4"
	loc := r.Location()
	assert.Equal(t, "GMT-4", loc.String())

	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, -14400, offset)
}

func TestDaily_Days(t *testing.T) {
	loc := time.UTC
	days, err := validResponse().Daily.Days(loc)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, time.Date(2025, 7, 25, 0, 0, 0, 0, loc), days[0].Date)
	assert.Equal(t, 81.4, days[0].TempMax)
	assert.Equal(t, 64.0, days[0].TempMin)
	assert.Equal(t, 61, days[1].WeatherCode)
}

func TestDaily_DaysBadDate(t *testing.T) {
	d := &Daily{
		Time:             []string{"25/07/2025"},
		Temperature2mMax: []float64{1},
		Temperature2mMin: []float64{0},
		WeatherCode:      []int{0},
	}

	_, err := d.Days(time.UTC)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "failed to parse date 25/07/2025")
}
