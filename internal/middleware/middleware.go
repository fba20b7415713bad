package middleware

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nickabs/cloudpdf/internal/apperrors"
	"github.com/nickabs/cloudpdf/internal/auth"
	"github.com/nickabs/cloudpdf/internal/context"
	"github.com/nickabs/cloudpdf/internal/response"
	"github.com/rs/zerolog"
)

// Credentials accepted by AuthorizationMiddleware. Signed tokens are only
// accepted when SigningSecret is set.
type Credentials struct {
	APIKey        string
	CloudName     string
	SigningSecret string
}

func LoggerMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := middleware.GetReqID(r.Context())
			reqLogger := logger.With().
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Logger()

			ctx := context.WithRequestLogger(r.Context(), &reqLogger)

			reqLogger.Debug().Msg("Request started")

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info().
				Int("status", ww.Status()).
				Dur("duration_ms", time.Since(start)).
				Int("bytes_written", ww.BytesWritten()).
				Msg("Request completed")
		})
	}
}

// RequireJSON rejects requests that do not declare a JSON content type
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			response.RespondWithError(w, r, http.StatusUnsupportedMediaType, apperrors.ErrCodeInvalidRequest, "Content-Type must be application/json")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AuthorizationMiddleware accepts the X-Authorization header when it is the raw
// API key or a token signed with the signing secret whose kid is the cloud name.
// The claims of accepted tokens are stored in the request context.
func AuthorizationMiddleware(creds Credentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqLogger, ok := context.RequestLogger(ctx)
			if !ok {
				nop := zerolog.Nop()
				reqLogger = &nop
			}

			authorization := r.Header.Get("X-Authorization")

			switch {
			case authorization == "":
				response.RespondWithError(w, r, http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, "X-Authorization header is missing")
				return

			case creds.APIKey != "" && authorization == creds.APIKey:
				ctx = context.WithAuthMode(ctx, "api_key")
				reqLogger.Debug().Msg("authorized with api key")

			case creds.SigningSecret != "":
				claims, err := auth.ValidateToken(authorization, creds.SigningSecret)
				if err != nil {
					if errors.Is(err, jwt.ErrTokenExpired) {
						response.RespondWithError(w, r, http.StatusUnauthorized, apperrors.ErrCodeTokenExpired, "signed token expired")
						return
					}
					response.RespondWithError(w, r, http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, fmt.Sprintf("unauthorized: %v", err))
					return
				}
				if claims.KeyID != creds.CloudName {
					response.RespondWithError(w, r, http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, fmt.Sprintf("unauthorized: unknown cloud %q", claims.KeyID))
					return
				}
				ctx = context.WithClaims(ctx, claims)
				ctx = context.WithAuthMode(ctx, "signed")
				reqLogger.Debug().Str("function", claims.Function).Msg("authorized with signed token")

			default:
				response.RespondWithError(w, r, http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure, "unauthorized: invalid api key")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
