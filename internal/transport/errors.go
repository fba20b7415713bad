package transport

import (
	"fmt"
	"net/http"

	"github.com/nickabs/cloudpdf/internal/apperrors"
)

// Error is returned for every failed call.
// StatusCode 0 = network/connection error, >0 = HTTP response received
type Error struct {
	StatusCode int
	Message    string

	// Body is the unparsed response body of a non-2xx response
	Body []byte

	// Err is the underlying network or encoding error, if any
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("status: %d. message: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code classifies the failure
func (e *Error) Code() apperrors.ErrorCode {
	return apperrors.FromStatus(e.StatusCode)
}

func newConnectionError(err error) *Error {
	return &Error{
		Message: fmt.Sprintf("network error: %v", err),
		Err:     err,
	}
}

// newInternalError wraps errors raised before the request was sent, supply the error and what was being done when it occurred
func newInternalError(err error, while string) *Error {
	return &Error{
		Message: fmt.Sprintf("internal error: %v while %v", err, while),
		Err:     err,
	}
}

func newStatusError(method, path string, res *http.Response, body []byte) *Error {
	return &Error{
		StatusCode: res.StatusCode,
		Message:    fmt.Sprintf("%s %s returned %s", method, path, res.Status),
		Body:       body,
	}
}
