package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-page/config"
	_ "weather-page/docs"
	"weather-page/internal/conditions"
	v1 "weather-page/internal/controllers/http/v1"
	"weather-page/internal/render"
	"weather-page/internal/repositories"
	"weather-page/internal/services/forecast"
	"weather-page/pkg/httpserver"
	"weather-page/pkg/logger"
	"weather-page/pkg/observe"
	"weather-page/web"
)

// @title Weather Page API
// @version 1.0.0
// @description Renders the current conditions and eight-day outlook for the position reported by the browser.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Forecast
// @tag.description Geolocated forecast page operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		panic(fmt.Errorf("cannot load config: %w", err))
	}

	hook := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
	l := logger.New(logger.Config{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
	}, os.Stdout, hook)
	hook.SetLogger(l)

	page, err := render.ParsePage(web.Templates())
	if err != nil {
		l.Fatal("cannot parse page template", map[string]any{"err": err})
	}

	table := conditions.Default()
	renderer := render.NewRenderer(table, cnf.Page.IconBaseURL, render.WithLogger(l))

	repo := repositories.InitForecastRepository(cnf, l)

	service := forecast.NewForecastService(repo, renderer, l)

	app := httpserver.InitFiberServer(httpserver.Config{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
	})

	v1.NewRouter(
		app,
		service,
		page,
		table,
		renderer,
		v1.Options{Title: cnf.Page.Title, AppName: cnf.App.Name},
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"env":      cnf.App.Env,
		"provider": repo.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		hook.Flush()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
