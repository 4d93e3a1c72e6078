package handlers

import (
	"encoding/json"
	"errors"
	"github.com/rs/zerolog/log"
	"net/http"
	"ulascansenturk/weather-viewer/internal/providers"
	"ulascansenturk/weather-viewer/internal/service"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	case http.StatusServiceUnavailable:
		errorCode = "SERVICE_UNAVAILABLE"
		title = "Service Unavailable"
	case http.StatusGatewayTimeout:
		errorCode = "GATEWAY_TIMEOUT"
		title = "Gateway Timeout"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// statusForError picks the response status for a failed lookup. Provider errors are
// user-input problems such as an unknown city; the other kinds are upstream trouble.
func statusForError(err error) int {
	if errors.Is(err, service.ErrEmptyCity) {
		return http.StatusBadRequest
	}

	kind, ok := providers.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch kind {
	case providers.KindProviderError:
		return http.StatusNotFound
	case providers.KindConnectionFailure:
		return http.StatusServiceUnavailable
	case providers.KindTimeout:
		return http.StatusGatewayTimeout
	case providers.KindHTTPStatus, providers.KindTransportError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
