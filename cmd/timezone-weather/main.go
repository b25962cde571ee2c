package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/timezone-weather/internal/api/http"
	"github.com/i474232898/timezone-weather/internal/config"
	"github.com/i474232898/timezone-weather/internal/logger"
	"github.com/i474232898/timezone-weather/internal/scheduler"
	"github.com/i474232898/timezone-weather/internal/selection"
	"github.com/i474232898/timezone-weather/internal/store"
	"github.com/i474232898/timezone-weather/internal/timezone"
	"github.com/i474232898/timezone-weather/internal/weather"
	"github.com/i474232898/timezone-weather/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.ErrorLevel).Fatalw("failed to load config", "err", err)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// Session state lives in sqlite, or in memory when STORE_PATH is empty.
	kv, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalw("failed to open store", "path", cfg.StorePath, "err", err)
	}
	defer func() {
		if cerr := kv.Close(); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()

	session := selection.NewSession(kv, log.Named("selection"))
	session.Initialize(context.Background())

	zones, err := timezone.NewTZDB()
	if err != nil {
		log.Fatalw("failed to load timezone database", "err", err)
	}
	catalog := timezone.NewCatalog(zones)
	log.Infow("timezone catalog ready", "zones", catalog.Len())

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Open-Meteo needs no API key; one attempt per fetch behind a circuit breaker.
	forecast := providers.NewOpenMeteoProvider(httpClient, cfg.ForecastBaseURL)
	service := weather.NewService(forecast, weather.NewResolver(zones), cfg.FetchTimeout, log.Named("weather"))

	sched := scheduler.New(session, service, cfg.ProbeInterval, log)
	if err := sched.Start(); err != nil {
		log.Fatalw("failed to start scheduler", "err", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "timezone-weather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          cfg.FetchTimeout + 5*time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(httpapi.RequestID())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "timezone-weather",
			"zones":   catalog.Len(),
		})
	})

	httpapi.RegisterRoutes(app, httpapi.Deps{
		Zones:         zones,
		Catalog:       catalog,
		Converter:     timezone.NewConverter(zones, catalog),
		Session:       session,
		Weather:       service,
		ReferenceZone: cfg.ReferenceZone,
		Log:           log.Named("http"),
	})

	go func() {
		log.Infow("listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorw("fiber server stopped", "err", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorw("error during shutdown", "err", err)
	}
}
