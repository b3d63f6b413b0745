package forecast

import (
	"context"

	"github.com/pkg/errors"

	"weather-page/internal/geolocation"
	"weather-page/internal/models"
	"weather-page/internal/render"
	"weather-page/internal/repositories"
	"weather-page/pkg/logger"
)

const (
	MessageUnsupported    = "Geolocation is not supported by your browser"
	MessageLocationFailed = "Unable to retrieve your location"
	MessageFetchFailed    = "Unable to retrieve the weather forecast. Please try again later."
)

// Result is the outcome of one page load.
type Result struct {
	State State
	// Trace lists every state visited, starting with StateIdle.
	Trace       []State
	Coordinates *geolocation.Coordinates
	Err         error
}

// ForecastService runs the page load pipeline: locate, fetch, render.
type ForecastService struct {
	repo     repositories.ForecastRepository
	renderer *render.Renderer
	l        *logger.Logger
}

func NewForecastService(repo repositories.ForecastRepository, renderer *render.Renderer, l *logger.Logger) *ForecastService {
	return &ForecastService{
		repo:     repo,
		renderer: renderer,
		l:        l,
	}
}

// Load drives a single page load and writes its outcome into doc. Every
// failure is terminal; nothing is retried.
func (s *ForecastService) Load(ctx context.Context, locator geolocation.Locator, doc *render.Document) Result {
	res := Result{State: StateIdle, Trace: []State{StateIdle}}

	s.advance(&res, StateLocationRequested)
	coords, err := locator.Locate(ctx)
	if err != nil {
		return s.locationFailed(&res, doc, err)
	}
	res.Coordinates = &coords
	s.advance(&res, StateLocationAcquired)

	s.advance(&res, StateFetchInFlight)
	resp, err := s.repo.FetchForecast(ctx, coords)
	if err != nil {
		return s.fetchFailed(&res, doc, err)
	}

	if resp != nil && resp.Error {
		s.l.Warning("forecast provider reported an error", map[string]any{
			"provider": s.repo.Name(),
			"reason":   resp.Reason,
			"coords":   coords.String(),
		})
	}

	// A response that cannot be rendered counts as a failed fetch.
	if err := s.renderer.Render(doc, resp); err != nil {
		return s.fetchFailed(&res, doc, err)
	}
	s.advance(&res, StateFetchSucceeded)
	s.advance(&res, StateRendered)

	s.l.Info("forecast rendered", map[string]any{
		"provider":      s.repo.Name(),
		"coords":        coords.String(),
		"timezone":      resp.Timezone,
		"providerError": resp.Error,
	})

	return res
}

func (s *ForecastService) locationFailed(res *Result, doc *render.Document, err error) Result {
	res.Err = err

	if errors.Is(err, geolocation.ErrUnsupported) {
		s.advance(res, StateLocationUnsupported)
		doc.SetText(render.RegionForecast, MessageUnsupported)
		s.l.Info("geolocation unsupported")
		return *res
	}

	s.advance(res, StateLocationDenied)

	reason := err.Error()
	var failure *geolocation.FailureError
	if errors.As(err, &failure) && failure.Reason != "" {
		reason = failure.Reason
	}
	doc.SetText(render.RegionForecast, MessageLocationFailed+": "+reason)

	s.l.Warning("geolocation failed", map[string]any{
		"err":    err.Error(),
		"denied": errors.Is(err, geolocation.ErrDenied),
	})

	return *res
}

func (s *ForecastService) fetchFailed(res *Result, doc *render.Document, err error) Result {
	res.Err = err
	s.advance(res, StateFetchFailed)

	fields := map[string]any{
		"provider":  s.repo.Name(),
		"malformed": errors.Is(err, models.ErrMalformedResponse),
		"network":   errors.Is(err, repositories.ErrNetwork),
	}
	if res.Coordinates != nil {
		fields["coords"] = res.Coordinates.String()
	}
	s.l.Error(errors.Wrap(err, "forecast unavailable"), fields)

	doc.SetText(render.RegionCurrent, MessageFetchFailed)

	return *res
}

func (s *ForecastService) advance(res *Result, next State) {
	s.l.Debug("forecast state", map[string]any{
		"from": res.State.String(),
		"to":   next.String(),
	})
	res.State = next
	res.Trace = append(res.Trace, next)
}
