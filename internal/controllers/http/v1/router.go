package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/swagger"

	"weather-page/internal/conditions"
	"weather-page/internal/render"
	"weather-page/internal/services/forecast"
	"weather-page/pkg/logger"
	"weather-page/web"
)

const (
	staticPrefix     = "/static"
	forecastEndpoint = "/api/v1/forecast"
)

type Options struct {
	Title   string
	AppName string
}

type routes struct {
	service  *forecast.ForecastService
	page     *render.Page
	table    *conditions.Table
	renderer *render.Renderer
	opts     Options
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	forecastService *forecast.ForecastService,
	page *render.Page,
	table *conditions.Table,
	renderer *render.Renderer,
	opts Options,
	l *logger.Logger,
) {
	r := &routes{
		service:  forecastService,
		page:     page,
		table:    table,
		renderer: renderer,
		opts:     opts,
		l:        l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	// Page and assets
	app.Get("/", r.handleIndex)
	app.Use(staticPrefix, filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))

	// API routes
	api := app.Group("/api/v1")
	api.Get("/forecast", r.handleForecastCall)
	api.Get("/conditions", r.handleConditionsCall)
}
