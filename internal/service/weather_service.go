package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-viewer/internal/providers"
	"ulascansenturk/weather-viewer/internal/weather"
)

var (
	ErrEmptyCity     = errors.New("city cannot be empty")
	ErrMissingAPIKey = errors.New("openweather api key is not configured")
)

type WeatherService interface {
	GetWeather(ctx context.Context, city string) (weather.WeatherResult, error)
}

type weatherService struct {
	client providers.WeatherClient
	apiKey string
}

func NewWeatherService(client providers.WeatherClient, apiKey string) WeatherService {
	return &weatherService{
		client: client,
		apiKey: strings.TrimSpace(apiKey),
	}
}

// GetWeather checks the caller-side preconditions and performs exactly one lookup.
// Lookup failures come back as *providers.LookupError, unchanged.
func (s *weatherService) GetWeather(ctx context.Context, city string) (weather.WeatherResult, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return weather.WeatherResult{}, ErrEmptyCity
	}

	if s.apiKey == "" {
		log.Error().Msg("OPENWEATHER_API_KEY is not set")
		return weather.WeatherResult{}, ErrMissingAPIKey
	}

	log.Debug().Str("city", city).Msg("looking up current weather")

	result, err := s.client.Fetch(ctx, city, s.apiKey)
	if err != nil {
		kind, _ := providers.KindOf(err)
		log.Warn().Err(err).Str("city", city).Stringer("kind", kind).Msg("weather lookup failed")
		return weather.WeatherResult{}, err
	}

	log.Info().
		Str("city", city).
		Float64("temperature_celsius", result.TemperatureCelsius).
		Str("icon_category", string(result.IconCategory)).
		Msg("weather lookup succeeded")

	return result, nil
}
