package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"weather-page/internal/geolocation"
	"weather-page/internal/models"
	"weather-page/pkg/logger"
)

const (
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

	dailyVariables   = "temperature_2m_max,temperature_2m_min,weather_code"
	currentVariables = "temperature_2m,weather_code"

	maxResponseBytes = 1 << 20
)

type OpenMeteoOptions struct {
	BaseURL           string
	ForecastDays      int
	TemperatureUnit   string
	WindSpeedUnit     string
	PrecipitationUnit string
}

func DefaultOpenMeteoOptions() OpenMeteoOptions {
	return OpenMeteoOptions{
		BaseURL:           OpenMeteoBaseURL,
		ForecastDays:      8,
		TemperatureUnit:   "fahrenheit",
		WindSpeedUnit:     "mph",
		PrecipitationUnit: "inch",
	}
}

func (o OpenMeteoOptions) withDefaults() OpenMeteoOptions {
	d := DefaultOpenMeteoOptions()
	if o.BaseURL == "" {
		o.BaseURL = d.BaseURL
	}
	if o.ForecastDays <= 0 {
		o.ForecastDays = d.ForecastDays
	}
	if o.TemperatureUnit == "" {
		o.TemperatureUnit = d.TemperatureUnit
	}
	if o.WindSpeedUnit == "" {
		o.WindSpeedUnit = d.WindSpeedUnit
	}
	if o.PrecipitationUnit == "" {
		o.PrecipitationUnit = d.PrecipitationUnit
	}
	return o
}

type OpenMeteoRepository struct {
	httpClient HTTPClient
	opts       OpenMeteoOptions
	l          *logger.Logger
}

func NewOpenMeteoRepository(l *logger.Logger, httpClient HTTPClient, opts OpenMeteoOptions) *OpenMeteoRepository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenMeteoRepository{
		httpClient: httpClient,
		opts:       opts.withDefaults(),
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

// ForecastDays is the horizon requested from the provider.
func (o *OpenMeteoRepository) ForecastDays() int {
	return o.opts.ForecastDays
}

// RequestURL builds the forecast endpoint for coords.
func (o *OpenMeteoRepository) RequestURL(coords geolocation.Coordinates) (string, error) {
	u, err := url.Parse(o.opts.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", o.opts.BaseURL, err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("daily", dailyVariables)
	q.Set("forecast_days", strconv.Itoa(o.opts.ForecastDays))
	q.Set("current", currentVariables)
	q.Set("timezone", "auto")
	q.Set("wind_speed_unit", o.opts.WindSpeedUnit)
	q.Set("temperature_unit", o.opts.TemperatureUnit)
	q.Set("precipitation_unit", o.opts.PrecipitationUnit)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (o *OpenMeteoRepository) FetchForecast(ctx context.Context, coords geolocation.Coordinates) (*models.ForecastResponse, error) {
	endpoint, err := o.RequestURL(coords)
	if err != nil {
		return nil, err
	}

	o.l.Info("making openmeteo API request", map[string]any{
		"params": coords.String(),
		"days":   o.opts.ForecastDays,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to do request: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	o.l.Info("received openmeteo API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrNetwork, err)
	}

	var forecast models.ForecastResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: HTTP error (status %d): %s", ErrNetwork, resp.StatusCode, resp.Status)
		}
		return nil, fmt.Errorf("%w: failed to parse JSON response: %w", models.ErrMalformedResponse, err)
	}

	// Open-Meteo reports bad parameters as {"error": true, "reason": ...}
	// with a 400 status.
	if forecast.Error {
		o.l.Warning("openmeteo API reported an error", map[string]any{
			"status": resp.StatusCode,
			"reason": forecast.Reason,
		})
		return &forecast, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP error (status %d): %s", ErrNetwork, resp.StatusCode, resp.Status)
	}

	if err := forecast.Validate(o.opts.ForecastDays); err != nil {
		return nil, err
	}

	o.l.Info("parsed API response", map[string]any{
		"timezone": forecast.Timezone,
		"days":     len(forecast.Daily.Time),
	})

	return &forecast, nil
}
