package models

import (
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

type DayForecast struct {
	Date        time.Time `json:"date" example:"2025-07-25"`
	TempMax     float64   `json:"temp_max" example:"81.4"`
	TempMin     float64   `json:"temp_min" example:"64.0"`
	WeatherCode int       `json:"weather_code" example:"3"`
}

// Days converts the daily arrays into per-day values, keeping their order.
// Dates are calendar days in loc.
func (d *Daily) Days(loc *time.Location) ([]DayForecast, error) {
	days := make([]DayForecast, 0, len(d.Time))

	for i := range d.Time {
		day, err := d.day(i, loc)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, nil
}

func (d *Daily) day(index int, loc *time.Location) (DayForecast, error) {
	if index >= len(d.Temperature2mMax) || index >= len(d.Temperature2mMin) || index >= len(d.WeatherCode) {
		return DayForecast{}, errors.Wrapf(ErrMalformedResponse, "no values for day %d", index)
	}

	date, err := time.ParseInLocation(dateLayout, d.Time[index], loc)
	if err != nil {
		return DayForecast{}, errors.Wrapf(ErrMalformedResponse, "failed to parse date %s: %v", d.Time[index], err)
	}

	return DayForecast{
		Date:        date,
		TempMax:     d.Temperature2mMax[index],
		TempMin:     d.Temperature2mMin[index],
		WeatherCode: d.WeatherCode[index],
	}, nil
}
