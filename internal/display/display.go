// Package display turns lookup outcomes into what a user sees: formatted temperature,
// an icon glyph, and a message for every failure kind.
package display

import (
	"errors"
	"fmt"

	"ulascansenturk/weather-viewer/internal/providers"
	"ulascansenturk/weather-viewer/internal/service"
	"ulascansenturk/weather-viewer/internal/weather"
)

const (
	MsgEmptyCity         = "Please enter a city name."
	MsgMissingAPIKey     = "API key not set. Please set the 'OPENWEATHER_API_KEY' environment variable."
	MsgConnectionFailure = "Connection Error: Check your internet connection."
	MsgTimeout           = "Timeout Error: The request timed out."
	MsgUnexpected        = "An unexpected error occurred."
)

var icons = map[weather.IconCategory]string{
	weather.IconThunderstorm: "⛈️",
	weather.IconDrizzle:      "🌦️",
	weather.IconRain:         "🌧️",
	weather.IconSnow:         "🌨️❄️",
	weather.IconAtmosphere:   "🌫️",
	weather.IconVolcanicAsh:  "🌋",
	weather.IconSquall:       "💨",
	weather.IconTornado:      "🌪",
	weather.IconClear:        "🌞",
	weather.IconClouds:       "☁️",
}

// Icon returns the glyph for a category, or "" for IconUnknown.
func Icon(category weather.IconCategory) string {
	return icons[category]
}

func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%.2f°C", celsius)
}

// ErrorMessage renders err as user-facing text.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrEmptyCity):
		return MsgEmptyCity
	case errors.Is(err, service.ErrMissingAPIKey):
		return MsgMissingAPIKey
	}

	var lookupErr *providers.LookupError
	if !errors.As(err, &lookupErr) {
		return MsgUnexpected
	}

	switch lookupErr.Kind {
	case providers.KindHTTPStatus:
		return fmt.Sprintf("HTTP Error: %d - %s", lookupErr.Code, lookupErr.Reason)
	case providers.KindConnectionFailure:
		return MsgConnectionFailure
	case providers.KindTimeout:
		return MsgTimeout
	case providers.KindProviderError:
		return fmt.Sprintf("Error: %s", lookupErr.Message)
	case providers.KindTransportError:
		return fmt.Sprintf("Request Error: %s", lookupErr.Detail)
	default:
		return MsgUnexpected
	}
}

// View is one rendered lookup. A view built from an error has every weather field empty.
type View struct {
	City         string               `json:"city"`
	Temperature  string               `json:"temperature,omitempty"`
	Description  string               `json:"description,omitempty"`
	IconCategory weather.IconCategory `json:"icon_category,omitempty"`
	Icon         string               `json:"icon,omitempty"`
	Error        string               `json:"error,omitempty"`
}

func FromResult(city string, result weather.WeatherResult) View {
	return View{
		City:         city,
		Temperature:  FormatTemperature(result.TemperatureCelsius),
		Description:  result.Description,
		IconCategory: result.IconCategory,
		Icon:         Icon(result.IconCategory),
	}
}

func FromError(city string, err error) View {
	return View{
		City:  city,
		Error: ErrorMessage(err),
	}
}

func (v View) Failed() bool {
	return v.Error != ""
}

// String renders the view the way the widget stacked its labels.
func (v View) String() string {
	if v.Failed() {
		return v.Error
	}
	if v.Icon == "" {
		return fmt.Sprintf("%s\n%s\n%s", v.City, v.Temperature, v.Description)
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s", v.City, v.Temperature, v.Icon, v.Description)
}
