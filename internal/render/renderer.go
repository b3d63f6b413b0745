package render

import (
	"bytes"
	"html/template"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"

	"weather-page/internal/conditions"
	"weather-page/internal/models"
	"weather-page/pkg/logger"
)

var (
	currentTemplate = template.Must(template.New("current").Parse(
		`<h3>{{.Timezone}}</h3>
<p>{{.Weekday}}, {{.Date}}</p>
<img src="{{.IconURL}}" alt="{{.Description}}">
<p><b>Current Weather: </b>{{.Temperature}}° and {{.Description}}</p>
`))

	forecastTemplate = template.Must(template.New("forecast").Parse(
		`{{range .}}<section class="day">
<h3><span>{{.Weekday}}</span> {{.Date}}</h3>
<img src="{{.IconURL}}" alt="{{.Description}}">
<p><b>High: </b>{{.High}}</p>
<p><b>Low: </b>{{.Low}}</p>
<p>{{.Description}}</p>
</section>
{{end}}`))

	providerErrorTemplate = template.Must(template.New("provider-error").Parse(
		`<p>There was an error: {{.}}. Please try again later.</p>`))
)

type currentView struct {
	Timezone    string
	Weekday     string
	Date        string
	IconURL     string
	Description string
	Temperature int
}

type dayView struct {
	Weekday     string
	Date        string
	IconURL     string
	Description string
	High        int
	Low         int
}

type Option func(*Renderer)

// WithClock replaces time.Now, the source of "today" in the current block.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithLogger makes the renderer report weather codes missing from its table.
func WithLogger(l *logger.Logger) Option {
	return func(r *Renderer) {
		r.l = l
	}
}

// Renderer turns forecast responses into region markup.
type Renderer struct {
	table       *conditions.Table
	iconBaseURL string
	now         func() time.Time
	l           *logger.Logger
}

func NewRenderer(table *conditions.Table, iconBaseURL string, opts ...Option) *Renderer {
	r := &Renderer{
		table:       table,
		iconBaseURL: strings.TrimRight(iconBaseURL, "/"),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IconURL resolves a logical icon name to the asset URL.
func (r *Renderer) IconURL(icon conditions.Icon) string {
	return r.iconBaseURL + "/" + string(icon) + ".svg"
}

// Round is the rounding applied to displayed temperatures: nearest integer,
// halves away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// Render writes resp into doc. A provider error replaces the current region
// only. A successful response replaces both regions. A malformed response
// returns an error wrapping models.ErrMalformedResponse and leaves doc as it
// was.
func (r *Renderer) Render(doc *Document, resp *models.ForecastResponse) error {
	if resp == nil {
		return errors.Wrap(models.ErrMalformedResponse, "empty response")
	}

	if resp.Error {
		var buf bytes.Buffer
		if err := providerErrorTemplate.Execute(&buf, resp.Reason); err != nil {
			return errors.Wrap(err, "render provider error")
		}
		doc.SetHTML(RegionCurrent, template.HTML(buf.String()))
		return nil
	}

	if err := resp.Validate(0); err != nil {
		return err
	}

	loc := resp.Location()

	current, err := r.renderCurrent(resp, loc)
	if err != nil {
		return err
	}

	forecast, err := r.renderForecast(resp.Daily, loc)
	if err != nil {
		return err
	}

	doc.SetHTML(RegionCurrent, current)
	doc.SetHTML(RegionForecast, forecast)

	return nil
}

func (r *Renderer) renderCurrent(resp *models.ForecastResponse, loc *time.Location) (template.HTML, error) {
	today := r.now().In(loc)
	entry := r.describe(resp.Current.WeatherCode)

	view := currentView{
		Timezone:    resp.Timezone,
		Weekday:     today.Format("Monday"),
		Date:        today.Format("January 2"),
		IconURL:     r.IconURL(entry.Icon),
		Description: entry.Description,
		Temperature: Round(resp.Current.Temperature2m),
	}

	var buf bytes.Buffer
	if err := currentTemplate.Execute(&buf, view); err != nil {
		return "", errors.Wrap(err, "render current weather")
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) renderForecast(daily *models.Daily, loc *time.Location) (template.HTML, error) {
	days, err := daily.Days(loc)
	if err != nil {
		return "", err
	}

	views := make([]dayView, 0, len(days))
	for _, day := range days {
		entry := r.describe(day.WeatherCode)
		views = append(views, dayView{
			Weekday:     day.Date.Format("Monday"),
			Date:        day.Date.Format("January 2"),
			IconURL:     r.IconURL(entry.Icon),
			Description: entry.Description,
			High:        Round(day.TempMax),
			Low:         Round(day.TempMin),
		})
	}

	var buf bytes.Buffer
	if err := forecastTemplate.Execute(&buf, views); err != nil {
		return "", errors.Wrap(err, "render forecast")
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) describe(code int) conditions.Entry {
	entry, ok := r.table.Lookup(code)
	if ok {
		return entry
	}

	if r.l != nil {
		r.l.Warning("unknown weather code", map[string]any{"code": code})
	}
	return conditions.Unknown
}
