package cloudpdf

import (
	"errors"
	"fmt"

	"github.com/nickabs/cloudpdf/internal/transport"
)

// ErrConfiguration matches every *ConfigError with errors.Is
var ErrConfiguration = errors.New("cloudpdf: configuration error")

// ConfigError is returned before any network activity when the client is
// built with invalid settings or asked to sign without signing secrets.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cloudpdf: %s: %v", e.Message, e.Err)
	}
	return "cloudpdf: " + e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// TransportError is returned when a request fails on the network or the API
// answers with a non-2xx status. StatusCode is 0 when no response was received.
type TransportError = transport.Error

// StatusCode returns the HTTP status carried by err, or 0 when err is not a
// TransportError or no response was received.
func StatusCode(err error) int {
	var trErr *TransportError
	if errors.As(err, &trErr) {
		return trErr.StatusCode
	}
	return 0
}
