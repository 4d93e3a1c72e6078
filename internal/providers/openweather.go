package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ulascansenturk/weather-viewer/internal/weather"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org"
	DefaultTimeout = 10 * time.Second

	currentWeatherPath    = "/data/2.5/weather"
	unknownProviderError  = "An unknown error occurred"
	maxErrorBodySize      = 4 << 10
	providerSuccessStatus = 200
)

type WeatherClient interface {
	Fetch(ctx context.Context, city, apiKey string) (weather.WeatherResult, error)
}

type OpenWeatherClient struct {
	baseURL string
	client  *http.Client
}

func NewOpenWeatherClient(baseURL string, timeout time.Duration) *OpenWeatherClient {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &OpenWeatherClient{
		baseURL: base,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type currentWeatherResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message json.RawMessage `json:"message"`
	Main    struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"weather"`
}

// Fetch performs one current-weather lookup in metric units. Every failure is returned
// as a *LookupError; on success the payload has already been classified.
func (c *OpenWeatherClient) Fetch(ctx context.Context, city, apiKey string) (weather.WeatherResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(city, apiKey), nil)
	if err != nil {
		return weather.WeatherResult{}, newTransportError(fmt.Sprintf("build request: %v", err), err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return weather.WeatherResult{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return weather.WeatherResult{}, newHTTPStatusError(resp.StatusCode, statusReason(resp), errorBodyMessage(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.WeatherResult{}, classifyTransportError(fmt.Errorf("read response: %w", err))
	}

	var apiResp currentWeatherResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return weather.WeatherResult{}, newTransportError(fmt.Sprintf("malformed JSON: %v", err), err)
	}

	if !isSuccessCod(apiResp.Cod) {
		message := rawString(apiResp.Message)
		if message == "" {
			message = unknownProviderError
		}
		return weather.WeatherResult{}, newProviderError(message)
	}

	if len(apiResp.Weather) == 0 {
		return weather.WeatherResult{}, newTransportError("malformed response: no weather conditions", nil)
	}

	condition := apiResp.Weather[0]

	return weather.Classify(apiResp.Main.Temp, condition.Description, condition.ID), nil
}

func (c *OpenWeatherClient) buildURL(city, apiKey string) string {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", apiKey)
	query.Set("units", "metric")

	return c.baseURL + currentWeatherPath + "?" + query.Encode()
}

// classifyTransportError orders the checks so that a connect-phase timeout still counts
// as a connection failure.
func classifyTransportError(err error) *LookupError {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &LookupError{Kind: KindConnectionFailure, Err: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &LookupError{Kind: KindConnectionFailure, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		return &LookupError{Kind: KindTimeout, Err: err}
	}

	return newTransportError(err.Error(), err)
}

func isTimeout(err error) bool {
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}

// isSuccessCod reports whether cod is the JSON number 200. The provider sends error
// codes as strings, so "200" does not count.
func isSuccessCod(raw json.RawMessage) bool {
	var cod float64
	if err := json.Unmarshal(raw, &cod); err != nil {
		return false
	}
	return cod == providerSuccessStatus
}

func statusReason(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

func errorBodyMessage(body []byte) string {
	var apiErr struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return ""
	}
	return rawString(apiErr.Message)
}

// rawString returns a JSON string value unquoted and any other JSON value as written.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
