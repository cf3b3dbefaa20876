// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"dialcodes-server/commons"
	"dialcodes-server/commons/matcher"
	"dialcodes-server/datasets"
	"dialcodes-server/handlers"
	"dialcodes-server/quiz"
	"dialcodes-server/routes"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()

	cfg, err := commons.LoadConfig(commons.ArgValue(os.Args[1:], "--config"))
	if err != nil {
		commons.Logger.Fatalf("Failed to load configuration: %v", err)
	}

	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
				v.RequestID,
			)
			return nil
		},
	}))
	debugMode := slices.Contains(os.Args[1:], "--debug")
	if debugMode {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
		commons.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())

	store, err := datasets.NewStore(cfg.Datasets.Dir, cfg.Datasets.CacheSize)
	if err != nil {
		commons.Logger.Fatalf("Failed to create dataset store: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Datasets.Watch || slices.Contains(os.Args[1:], "--watch") {
		go func() {
			if err := store.Watch(ctx); err != nil {
				commons.Logger.Errorf("Dataset watcher stopped: %v", err)
			}
		}()
	}

	api := &handlers.API{
		Store:          store,
		Picker:         quiz.NewRandomPicker(),
		Matcher:        matcher.NewMatcher(cfg.Quiz.Synonyms),
		DefaultCountry: cfg.Datasets.DefaultCountry,
		StaticDir:      cfg.Server.StaticDir,
		Shutdown:       stop,
	}
	routes.RegisterRoutes(e, api, debugMode)

	go func() {
		commons.Logger.Infof("Serving %s on %s", cfg.Datasets.Dir, cfg.Server.Port)
		if err := e.Start(cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			commons.Logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	commons.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
