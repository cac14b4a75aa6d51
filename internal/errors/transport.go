// Package errors defines the error kinds shared by the upstream API layers.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// TransportError represents a network or HTTP-status failure when calling
// the upstream metadata API.
type TransportError struct {
	URL        string
	StatusCode int // 0 when the request never produced a response
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream request %s failed (HTTP %d)", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("upstream request %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError for a request that never got a response.
func NewTransportError(url string, err error) *TransportError {
	return &TransportError{URL: url, Err: err}
}

// NewHTTPStatusError creates a TransportError for a non-2xx response.
func NewHTTPStatusError(url string, statusCode int) *TransportError {
	return &TransportError{URL: url, StatusCode: statusCode}
}

// IsTransportError reports whether err is a TransportError (even when wrapped).
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return stdErrors.As(err, &transportErr)
}
