package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nickabs/cloudpdf/internal/apperrors"
	"github.com/nickabs/cloudpdf/internal/auth"
	"github.com/nickabs/cloudpdf/internal/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationMiddleware(t *testing.T) {
	creds := Credentials{APIKey: "key", CloudName: "cloud", SigningSecret: "secret"}

	mint := func(keyID, secret string, expiresIn time.Duration) string {
		token, err := auth.NewSigner(keyID, secret).GenerateToken("APIV2GetAccount", nil, expiresIn)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantCode      apperrors.ErrorCode
		wantMode      string
	}{
		{"api key", "key", http.StatusOK, "", "api_key"},
		{"signed token", mint("cloud", "secret", time.Minute), http.StatusOK, "", "signed"},
		{"missing header", "", http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, ""},
		{"wrong api key", "nope", http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, ""},
		{"wrong secret", mint("cloud", "other", time.Minute), http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, ""},
		{"wrong cloud", mint("elsewhere", "secret", time.Minute), http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, ""},
		{"expired token", mint("cloud", "secret", -time.Minute), http.StatusUnauthorized, apperrors.ErrCodeTokenExpired, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMode string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMode, _ = context.AuthMode(r.Context())
				if gotMode == "signed" {
					claims, ok := context.Claims(r.Context())
					require.True(t, ok)
					assert.Equal(t, "APIV2GetAccount", claims.Function)
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/account", nil)
			if tt.authorization != "" {
				req.Header.Set("X-Authorization", tt.authorization)
			}
			rr := httptest.NewRecorder()

			AuthorizationMiddleware(creds)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMode, gotMode)
			if tt.wantCode != "" {
				var res apperrors.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
				assert.Equal(t, tt.wantCode, res.ErrorCode)
			}
		})
	}
}

func TestRequireJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		contentType string
		wantStatus  int
	}{
		{"application/json", http.StatusNoContent},
		{"application/json; charset=utf-8", http.StatusNoContent},
		{"text/plain", http.StatusUnsupportedMediaType},
		{"", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/documents", nil)
		if tt.contentType != "" {
			req.Header.Set("Content-Type", tt.contentType)
		}
		rr := httptest.NewRecorder()

		RequireJSON(next).ServeHTTP(rr, req)
		assert.Equal(t, tt.wantStatus, rr.Code, "content type %q", tt.contentType)
	}
}
