package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-chart/config"
	v1 "weather-chart/internal/controllers/http/v1"
	"weather-chart/internal/repositories"
	"weather-chart/internal/services/weatherchart"
	"weather-chart/pkg/httpserver"
	"weather-chart/pkg/logger"
	"weather-chart/pkg/observe"
)

// @title Weather Chart
// @version 1.0.0
// @description Server-side line chart of daily maximum temperatures over a freezing band.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Chart
// @tag.description Temperature chart rendering
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	hook := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.MaxErrorDepth, cnf.Sentry.Debug, cnf.Sentry.DSN)

	l := logger.NewZapLoggerWithOptions(cnf.App.Name, logger.Options{
		AppEnv: cnf.App.Env,
		Level:  cnf.Log.Level,
	}, os.Stdout, hook)
	hook.SetLogger(l)

	app := httpserver.InitFiberServer(cnf, l)

	source, err := repositories.InitWeatherSource(cnf, l)
	if err != nil {
		l.Fatal("cannot init weather source", map[string]any{"err": err.Error()})
	}

	renderer := weatherchart.NewChartRenderer(source, weatherchart.NewSettings(cnf), l)

	v1.NewRouter(
		app,
		renderer,
		v1.RouterConfig{
			Title:         cnf.App.Name,
			ViewportWidth: cnf.Chart.ViewportWidth,
			Geometry:      weatherchart.NewGeometrySettings(cnf),
		},
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":   cnf.Server.Port,
		"source": source.Name(),
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
