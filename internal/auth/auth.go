package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a signed CloudPDF token: the API function being
// authorised, the parameters it is called with and the expiry.
type Claims struct {
	Function string         `json:"function"`
	Params   map[string]any `json:"params"`
	jwt.RegisteredClaims

	// KeyID is copied from the kid header when a token is validated
	KeyID string `json:"-"`
}

var ErrMissingSecret = errors.New("signing secret is not set")

type Signer struct {
	keyID  string
	secret []byte
}

// NewSigner returns a Signer that stamps keyID (the cloud name) into the kid header.
func NewSigner(keyID, secret string) *Signer {
	return &Signer{keyID: keyID, secret: []byte(secret)}
}

// create a JWT signed with HS256 using the signer's secret
func (s *Signer) GenerateToken(function string, params map[string]any, expiresIn time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}
	if params == nil {
		params = map[string]any{}
	}

	claims := &Claims{
		Function: function,
		Params:   params,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	unsignedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	unsignedToken.Header["kid"] = s.keyID

	signedToken, err := unsignedToken.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}
	return signedToken, nil
}

// validate a token using the supplied secret, extract and return the claims.
// Tokens without an expiry or signed with anything other than HS256 are rejected.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}

	if kid, ok := token.Header["kid"].(string); ok {
		claims.KeyID = kid
	}
	return claims, nil
}
