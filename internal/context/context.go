package context

import (
	"context"

	"github.com/nickabs/cloudpdf/internal/auth"
	"github.com/rs/zerolog"
)

// Common context keys
type contextKey struct {
	name string
}

var (
	requestLogger = contextKey{"request-logger"}
	tokenClaims   = contextKey{"token-claims"}
	authMode      = contextKey{"auth-mode"}
)

// WithClaims stores the claims of the signed token that authorised the request
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, tokenClaims, claims)
}

func Claims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(tokenClaims).(*auth.Claims)
	return claims, ok
}

// WithAuthMode records how the request was authorised ("api_key" or "signed")
func WithAuthMode(ctx context.Context, mode string) context.Context {
	return context.WithValue(ctx, authMode, mode)
}

func AuthMode(ctx context.Context) (string, bool) {
	mode, ok := ctx.Value(authMode).(string)
	return mode, ok
}

func WithRequestLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, requestLogger, logger)
}

func RequestLogger(ctx context.Context) (*zerolog.Logger, bool) {
	logger, ok := ctx.Value(requestLogger).(*zerolog.Logger)
	return logger, ok
}
