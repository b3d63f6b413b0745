package repositories

import (
	"context"
	"errors"
	"net/http"

	"weather-page/config"
	"weather-page/internal/geolocation"
	"weather-page/internal/models"
	"weather-page/pkg/logger"
)

// ErrNetwork marks failures to reach the provider or read its answer.
var ErrNetwork = errors.New("forecast provider unreachable")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ForecastRepository fetches a forecast for one location. A response with
// its Error flag set is a provider error and is returned without a Go error.
type ForecastRepository interface {
	Name() string
	FetchForecast(ctx context.Context, coords geolocation.Coordinates) (*models.ForecastResponse, error)
}

func InitForecastRepository(cfg *config.Config, l *logger.Logger) ForecastRepository {
	client := &http.Client{Timeout: cfg.Forecast.Timeout}

	return NewOpenMeteoRepository(l, client, OpenMeteoOptions{
		BaseURL:           cfg.Forecast.BaseURL,
		ForecastDays:      cfg.Forecast.Days,
		TemperatureUnit:   cfg.Forecast.TemperatureUnit,
		WindSpeedUnit:     cfg.Forecast.WindSpeedUnit,
		PrecipitationUnit: cfg.Forecast.PrecipitationUnit,
	})
}
