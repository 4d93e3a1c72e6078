package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-viewer/internal/display"
	"ulascansenturk/weather-viewer/internal/mocks"
	"ulascansenturk/weather-viewer/internal/providers"
	"ulascansenturk/weather-viewer/internal/service"
	"ulascansenturk/weather-viewer/internal/weather"
)

func TestRunPrintsWeather(t *testing.T) {
	weatherService := mocks.NewMockWeatherService(t)
	weatherService.On("GetWeather", mock.Anything, "Lisbon").Return(weather.Classify(21.5, "few clouds", 801), nil)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), weatherService, "Lisbon", &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Equal(t, "Lisbon\n21.50°C\n☁️\nFew Clouds\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestRunPrintsUnknownCategoryWithoutIcon(t *testing.T) {
	weatherService := mocks.NewMockWeatherService(t)
	weatherService.On("GetWeather", mock.Anything, " Hilo ").Return(weather.Classify(-1.234, "hurricane", 902), nil)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), weatherService, " Hilo ", &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Equal(t, "Hilo\n-1.23°C\nHurricane\n", stdout.String())
}

func TestRunPrintsLookupFailure(t *testing.T) {
	weatherService := mocks.NewMockWeatherService(t)
	weatherService.On("GetWeather", mock.Anything, "Atlantis").
		Return(weather.WeatherResult{}, &providers.LookupError{Kind: providers.KindProviderError, Message: "city not found"})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), weatherService, "Atlantis", &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
	require.Equal(t, "Error: city not found\n", stderr.String())
}

func TestRunPrintsMissingKey(t *testing.T) {
	weatherService := mocks.NewMockWeatherService(t)
	weatherService.On("GetWeather", mock.Anything, "Oslo").Return(weather.WeatherResult{}, service.ErrMissingAPIKey)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), weatherService, "Oslo", &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Equal(t, display.MsgMissingAPIKey+"\n", stderr.String())
}
