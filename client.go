package cloudpdf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/nickabs/cloudpdf/internal/auth"
	"github.com/nickabs/cloudpdf/internal/transport"
	"github.com/rs/zerolog"
)

type AuthMode int

const (
	AuthModeAPIKey AuthMode = iota
	AuthModeSigned
)

func (m AuthMode) String() string {
	switch m {
	case AuthModeAPIKey:
		return "api_key"
	case AuthModeSigned:
		return "signed"
	default:
		return fmt.Sprintf("AuthMode(%d)", int(m))
	}
}

// Params is the parameter bag of one call. It is sent as the JSON body of
// POST, PUT and PATCH requests and, in signed mode, as the token's params claim.
type Params map[string]any

// Claims is the payload of a signed token
type Claims = auth.Claims

// ErrEmptyID is returned when a resource id needed in the request path is empty
var ErrEmptyID = errors.New("cloudpdf: resource id is required")

// Client handles communication with the CloudPDF API
type Client struct {
	cfg        Config
	signer     *auth.Signer
	signed     atomic.Bool
	httpClient *http.Client
	logger     zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client (which only sets Config.Timeout)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger enables debug logging of requests. The client is silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a client. It returns a *ConfigError when cfg.APIKey is empty or cfg is otherwise invalid.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:    cfg,
		signer: auth.NewSigner(cfg.CloudName, cfg.SigningSecret),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.signed.Store(cfg.CanSign())
	return c, nil
}

// NewFromEnv creates a client from the CLOUDPDF_* environment variables
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// SetSigned switches between signed tokens and the raw API key.
// Enabling signed mode fails unless both cloud name and signing secret were configured.
//
// The mode is read once per call; switching it while calls are in flight is
// safe but which mode those calls use depends on the caller's ordering.
func (c *Client) SetSigned(enabled bool) error {
	if enabled && !c.cfg.CanSign() {
		return &ConfigError{Message: "cloudName and signingSecret should be set"}
	}

	c.signed.Store(enabled)
	c.logger.Debug().Str("auth_mode", c.AuthMode().String()).Msg("auth mode set")
	return nil
}

func (c *Client) IsSigned() bool {
	return c.signed.Load()
}

func (c *Client) AuthMode() AuthMode {
	if c.IsSigned() {
		return AuthModeSigned
	}
	return AuthModeAPIKey
}

// MintSignedToken returns an HS256 token authorising function with params,
// valid for expiresIn from now. The kid header is the cloud name.
func (c *Client) MintSignedToken(function string, params Params, expiresIn time.Duration) (string, error) {
	if !c.cfg.CanSign() {
		return "", &ConfigError{Message: "cloudName and signingSecret should be set to mint signed tokens"}
	}

	token, err := c.signer.GenerateToken(function, params, expiresIn)
	if err != nil {
		return "", fmt.Errorf("minting %s token: %w", function, err)
	}
	return token, nil
}

// ParseToken verifies a token minted with secret and returns its claims
func ParseToken(token, secret string) (*Claims, error) {
	return auth.ValidateToken(token, secret)
}

// transport builds the Transport for one call, authorised for function with params
func (c *Client) transport(function string, params Params) (*transport.Transport, error) {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	if c.IsSigned() {
		token, err := c.MintSignedToken(function, params, RequestTokenExpiry)
		if err != nil {
			return nil, err
		}
		headers.Set("X-Authorization", token)
	} else {
		headers.Set("X-Authorization", c.cfg.APIKey)
	}

	return transport.New(c.cfg.BaseURL, headers,
		transport.WithHTTPClient(c.httpClient),
		transport.WithLogger(c.logger.With().Str("function", function).Logger()),
	), nil
}

// call sends one request. When withBody is set params is also the request body.
func (c *Client) call(ctx context.Context, function, method, path string, params Params, withBody bool) (json.RawMessage, error) {
	if params == nil {
		params = Params{}
	}

	tr, err := c.transport(function, params)
	if err != nil {
		return nil, err
	}

	var body any
	if withBody {
		body = params
	}

	switch method {
	case http.MethodGet:
		return tr.Get(ctx, path)
	case http.MethodPost:
		return tr.Post(ctx, path, body)
	case http.MethodPatch:
		return tr.Patch(ctx, path, body)
	case http.MethodPut:
		return tr.Put(ctx, path, body)
	case http.MethodDelete:
		return tr.Delete(ctx, path)
	default:
		return nil, fmt.Errorf("cloudpdf: unsupported method %s", method)
	}
}

// merge copies params and sets the path identifiers over any same-named keys
func merge(ids Params, params Params) Params {
	merged := make(Params, len(ids)+len(params))
	for k, v := range params {
		merged[k] = v
	}
	for k, v := range ids {
		merged[k] = v
	}
	return merged
}
