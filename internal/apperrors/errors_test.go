package apperrors

import "testing"

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorCode
	}{
		{"no response", 0, ErrCodeNetworkError},
		{"bad request", 400, ErrCodeInvalidRequest},
		{"unauthorized", 401, ErrCodeAuthenticationFailure},
		{"forbidden", 403, ErrCodeForbidden},
		{"not found", 404, ErrCodeResourceNotFound},
		{"conflict", 409, ErrCodeUnexpectedStatus},
		{"too many requests", 429, ErrCodeRateLimited},
		{"internal error", 500, ErrCodeInternalError},
		{"bad gateway", 502, ErrCodeServiceUnavailable},
		{"unavailable", 503, ErrCodeServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromStatus(tt.status); got != tt.want {
				t.Errorf("FromStatus(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
