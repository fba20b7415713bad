package cloudpdf_test

import (
	"testing"
	"time"

	"github.com/nickabs/cloudpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetViewerToken(t *testing.T) {
	srv := newServer(t)
	c := newClient(t, srv, true)

	tests := []struct {
		name       string
		expiresIn  time.Duration
		wantExpiry time.Duration
	}{
		{"explicit expiry", 120 * time.Second, 120 * time.Second},
		{"default expiry", 0, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := c.GetViewerToken(cloudpdf.Params{"docId": "abc"}, tt.expiresIn)
			require.NoError(t, err)

			claims, err := cloudpdf.ParseToken(token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, "APIGetDocument", claims.Function)
			assert.Equal(t, map[string]any{"docId": "abc"}, claims.Params)
			assert.Equal(t, testCloud, claims.KeyID)
			assert.WithinDuration(t, time.Now().Add(tt.wantExpiry), claims.ExpiresAt.Time, time.Second)
		})
	}

	assert.Empty(t, srv.Requests(), "viewer tokens must not call the API")
}

func TestGetViewerTokenIgnoresAuthMode(t *testing.T) {
	srv := newServer(t)
	c := newClient(t, srv, true)
	require.NoError(t, c.SetSigned(false))

	token, err := c.GetViewerToken(nil, time.Minute)
	require.NoError(t, err)

	claims, err := cloudpdf.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, claims.Params)
}

func TestGetViewerTokenRequiresSigningSecrets(t *testing.T) {
	c, err := cloudpdf.New(cloudpdf.Config{APIKey: "key"})
	require.NoError(t, err)

	_, err = c.GetViewerToken(cloudpdf.Params{"docId": "abc"}, time.Minute)
	assert.ErrorIs(t, err, cloudpdf.ErrConfiguration)

	_, err = c.MintSignedToken(cloudpdf.FuncGetAccount, nil, time.Minute)
	assert.ErrorIs(t, err, cloudpdf.ErrConfiguration)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	c, err := cloudpdf.New(cloudpdf.Config{APIKey: "key", CloudName: testCloud, SigningSecret: testSecret})
	require.NoError(t, err)

	token, err := c.MintSignedToken(cloudpdf.FuncGetAccount, cloudpdf.Params{}, time.Minute)
	require.NoError(t, err)

	_, err = cloudpdf.ParseToken(token, "not-the-secret")
	assert.Error(t, err)
}
