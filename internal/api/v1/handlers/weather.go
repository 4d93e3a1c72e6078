package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-viewer/internal/display"
	"ulascansenturk/weather-viewer/internal/service"
)

// DefaultTimeout bounds a lookup when the handler is built without a positive timeout.
const DefaultTimeout = 15 * time.Second

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path != "/weather":
		respondWithError(w, http.StatusNotFound, "not found")
	default:
		h.GetWeather(w, r)
	}
}

// GetWeather serves /weather; path routing happens in ServeHTTP.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := r.URL.Query().Get("q")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "location parameter 'q' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.weatherService.GetWeather(ctx, city)
	if err != nil {
		log.Error().Err(err).Str("location", city).Msg("failed to get weather data")
		respondWithError(w, statusForError(err), display.ErrorMessage(err))
		return
	}

	view := display.FromResult(city, result)

	respondWithJSON(w, http.StatusOK, WeatherResponse{
		Location:           city,
		Temperature:        result.TemperatureCelsius,
		TemperatureDisplay: view.Temperature,
		Description:        view.Description,
		IconCategory:       string(view.IconCategory),
		Icon:               view.Icon,
	})
}
