package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
	"ulascansenturk/weather-viewer/config"
	"ulascansenturk/weather-viewer/internal/display"
	"ulascansenturk/weather-viewer/internal/providers"
	"ulascansenturk/weather-viewer/internal/service"
)

func main() {
	city := flag.StringP("city", "c", "", "city to look up (positional arguments are joined otherwise)")
	verbose := flag.BoolP("verbose", "v", false, "log lookups to stderr")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if *city == "" {
		*city = strings.Join(flag.Args(), " ")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	weatherClient := providers.NewOpenWeatherClient(conf.OpenWeatherBaseURL, conf.OpenWeatherTimeoutDuration())
	weatherService := service.NewWeatherService(weatherClient, conf.OpenWeatherAPIKey)

	os.Exit(run(context.Background(), weatherService, *city, os.Stdout, os.Stderr))
}

// run performs one lookup and renders it, returning the process exit status.
func run(ctx context.Context, weatherService service.WeatherService, city string, stdout, stderr io.Writer) int {
	result, err := weatherService.GetWeather(ctx, city)
	if err != nil {
		fmt.Fprintln(stderr, display.FromError(city, err))
		return 1
	}

	fmt.Fprintln(stdout, display.FromResult(strings.TrimSpace(city), result))
	return 0
}
