package models

import (
	"time"
	// Location resolves IANA names reported by the provider.
	_ "time/tzdata"

	"github.com/pkg/errors"
)

// ErrMalformedResponse is returned when the provider payload does not have
// the expected shape.
var ErrMalformedResponse = errors.New("malformed forecast response")

// ForecastResponse is the Open-Meteo forecast payload. When Error is set
// only Reason is meaningful.
type ForecastResponse struct {
	Error  bool   `json:"error,omitempty"`
	Reason string `json:"reason,omitempty" example:"Latitude must be in range of -90 to 90°. Given: 91.0."`

	Latitude             float64  `json:"latitude" example:"40.0"`
	Longitude            float64  `json:"longitude" example:"-75.0"`
	Timezone             string   `json:"timezone" example:"America/New_York"`
	TimezoneAbbreviation string   `json:"timezone_abbreviation" example:"EDT"`
	UTCOffsetSeconds     int      `json:"utc_offset_seconds" example:"-14400"`
	Current              *Current `json:"current,omitempty"`
	Daily                *Daily   `json:"daily,omitempty"`
}

type Current struct {
	Time          string  `json:"time" example:"2025-07-25T14:15"`
	Temperature2m float64 `json:"temperature_2m" example:"72.3"`
	WeatherCode   int     `json:"weather_code" example:"0"`
}

// Daily holds parallel arrays, one element per forecast day.
type Daily struct {
	Time             []string  `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	WeatherCode      []int     `json:"weather_code"`
}

// Validate checks the fields the page renders. days is the expected
// forecast horizon; zero accepts any non-empty horizon.
func (r *ForecastResponse) Validate(days int) error {
	if r.Error {
		return nil
	}
	if r.Timezone == "" {
		return errors.Wrap(ErrMalformedResponse, "missing timezone")
	}
	if r.Current == nil {
		return errors.Wrap(ErrMalformedResponse, "missing current block")
	}
	if r.Daily == nil {
		return errors.Wrap(ErrMalformedResponse, "missing daily block")
	}

	n := len(r.Daily.Time)
	if n == 0 {
		return errors.Wrap(ErrMalformedResponse, "no forecast days")
	}
	if days > 0 && n != days {
		return errors.Wrapf(ErrMalformedResponse, "expected %d forecast days, got %d", days, n)
	}
	if len(r.Daily.Temperature2mMax) != n || len(r.Daily.Temperature2mMin) != n || len(r.Daily.WeatherCode) != n {
		return errors.Wrapf(ErrMalformedResponse,
			"daily arrays differ in length: time=%d max=%d min=%d code=%d",
			n, len(r.Daily.Temperature2mMax), len(r.Daily.Temperature2mMin), len(r.Daily.WeatherCode))
	}

	return nil
}

// Location returns the time zone the forecast was computed for.
func (r *ForecastResponse) Location() *time.Location {
	if loc, err := time.LoadLocation(r.Timezone); err == nil && r.Timezone != "" {
		return loc
	}

	name := r.TimezoneAbbreviation
	if name == "" {
		name = r.Timezone
	}
	return time.FixedZone(name, r.UTCOffsetSeconds)
}
