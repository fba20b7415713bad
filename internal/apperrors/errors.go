package apperrors

import "net/http"

type ErrorCode string

const (
	ErrCodeAuthenticationFailure ErrorCode = "authentication_error"
	ErrCodeForbidden             ErrorCode = "forbidden"
	ErrCodeInternalError         ErrorCode = "internal_error"
	ErrCodeInvalidRequest        ErrorCode = "invalid_request"
	ErrCodeMalformedBody         ErrorCode = "malformed_body"
	ErrCodeNetworkError          ErrorCode = "network_error"
	ErrCodeRateLimited           ErrorCode = "rate_limited"
	ErrCodeResourceNotFound      ErrorCode = "resource_not_found"
	ErrCodeServiceUnavailable    ErrorCode = "service_unavailable"
	ErrCodeTokenExpired          ErrorCode = "token_expired"
	ErrCodeUnexpectedStatus      ErrorCode = "unexpected_status"
)

type ErrorResponse struct {
	StatusCode int       `json:"-"`
	ErrorCode  ErrorCode `json:"error_code" example:"example_error_code"`
	Message    string    `json:"message"`
	ReqID      string    `json:"-"`
}

// FromStatus classifies an HTTP status. A zero status means no response was received.
func FromStatus(status int) ErrorCode {
	switch {
	case status == 0:
		return ErrCodeNetworkError
	case status == http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case status == http.StatusUnauthorized:
		return ErrCodeAuthenticationFailure
	case status == http.StatusForbidden:
		return ErrCodeForbidden
	case status == http.StatusNotFound:
		return ErrCodeResourceNotFound
	case status == http.StatusTooManyRequests:
		return ErrCodeRateLimited
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		return ErrCodeServiceUnavailable
	case status >= 500:
		return ErrCodeInternalError
	default:
		return ErrCodeUnexpectedStatus
	}
}
