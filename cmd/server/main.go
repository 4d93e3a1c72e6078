package main

import (
	"context"
	"errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-viewer/config"
	"ulascansenturk/weather-viewer/internal/api/v1/handlers"
	"ulascansenturk/weather-viewer/internal/providers"
	"ulascansenturk/weather-viewer/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("env", conf.Env).
		Timestamp().
		Logger()

	if conf.OpenWeatherAPIKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY is not set, lookups will fail until it is configured")
	}

	weatherClient := providers.NewOpenWeatherClient(conf.OpenWeatherBaseURL, conf.OpenWeatherTimeoutDuration())
	weatherService := service.NewWeatherService(weatherClient, conf.OpenWeatherAPIKey)

	handler := handlers.NewWeatherHandler(weatherService, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Msgf("started server on %s", conf.ServerAddress)
		serverErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	if err := shutdown(httpServer); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// shutdown drains in-flight lookups, giving up after shutdownTimeout.
func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(ctx)
}
