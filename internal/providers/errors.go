package providers

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindHTTPStatus ErrorKind = iota + 1
	KindConnectionFailure
	KindTimeout
	KindProviderError
	KindTransportError
)

func (k ErrorKind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http_status"
	case KindConnectionFailure:
		return "connection_failure"
	case KindTimeout:
		return "timeout"
	case KindProviderError:
		return "provider_error"
	case KindTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// LookupError is the only error type Fetch returns. Which fields are set depends on Kind:
// HTTPStatus uses Code, Reason and Message; ProviderError uses Message; TransportError
// uses Detail. Err holds the underlying transport error when there is one.
type LookupError struct {
	Kind    ErrorKind
	Code    int
	Reason  string
	Message string
	Detail  string
	Err     error
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		if e.Message != "" {
			return fmt.Sprintf("openweather returned status %d %s: %s", e.Code, e.Reason, e.Message)
		}
		return fmt.Sprintf("openweather returned status %d %s", e.Code, e.Reason)
	case KindConnectionFailure:
		return fmt.Sprintf("openweather connection failed: %v", e.Err)
	case KindTimeout:
		return fmt.Sprintf("openweather request timed out: %v", e.Err)
	case KindProviderError:
		return fmt.Sprintf("openweather error: %s", e.Message)
	default:
		return fmt.Sprintf("openweather request failed: %s", e.Detail)
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is matches another *LookupError by kind only, so errors.Is(err, &LookupError{Kind: KindTimeout})
// works as a kind check.
func (e *LookupError) Is(target error) bool {
	t, ok := target.(*LookupError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf reports the lookup kind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind, true
	}
	return 0, false
}

func newHTTPStatusError(code int, reason, message string) *LookupError {
	return &LookupError{Kind: KindHTTPStatus, Code: code, Reason: reason, Message: message}
}

func newProviderError(message string) *LookupError {
	return &LookupError{Kind: KindProviderError, Message: message}
}

func newTransportError(detail string, err error) *LookupError {
	return &LookupError{Kind: KindTransportError, Detail: detail, Err: err}
}
