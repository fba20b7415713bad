package cloudpdf

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Netflix/go-env"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

/*
config holds the settings shared by the client and the cli:
- Config: credentials and endpoint for one client, loadable from CLOUDPDF_* environment variables
- common constants - the API base url and token lifetimes
*/

// Config is the client configuration. Only APIKey is required.
// Signed mode becomes the default when both CloudName and SigningSecret are set.
type Config struct {
	APIKey        string        `env:"CLOUDPDF_API_KEY" json:"-"`
	CloudName     string        `env:"CLOUDPDF_CLOUD_NAME" json:"cloudName,omitempty"`
	SigningSecret string        `env:"CLOUDPDF_SIGNING_SECRET" json:"-"`
	BaseURL       string        `env:"CLOUDPDF_API_URL,default=https://api.cloudpdf.io/v2" json:"baseUrl,omitempty"`
	Timeout       time.Duration `env:"CLOUDPDF_TIMEOUT,default=30s" json:"timeout,omitempty"`
}

// common constants
const (
	APIBase = "https://api.cloudpdf.io/v2"

	DefaultTimeout = 30 * time.Second

	// lifetime of the token minted for each API call in signed mode
	RequestTokenExpiry = 15 * time.Second

	// default lifetime of viewer tokens
	ViewerTokenExpiry = time.Hour
)

// ConfigFromEnv loads the CLOUDPDF_* environment variables. The result is not validated; New does that.
func ConfigFromEnv() (Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return Config{}, &ConfigError{Message: "failed to unmarshal environment variables", Err: err}
	}
	return cfg, nil
}

// Validate checks the configuration, returning a *ConfigError describing every invalid field
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required.Error("apiKey is required")),
		validation.Field(&c.BaseURL, validation.By(validBaseURL)),
		validation.Field(&c.Timeout, validation.By(nonNegativeDuration)),
	)
	if err != nil {
		return &ConfigError{Message: "invalid configuration", Err: err}
	}
	return nil
}

// CanSign reports whether both signing credentials are present
func (c Config) CanSign() bool {
	return c.CloudName != "" && c.SigningSecret != ""
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = APIBase
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

func validBaseURL(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}

	parsedURL, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base url must use http or https scheme, got: %q", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return errors.New("base url has no host")
	}
	return nil
}

func nonNegativeDuration(value interface{}) error {
	d, _ := value.(time.Duration)
	if d < 0 {
		return fmt.Errorf("must not be negative, got %v", d)
	}
	return nil
}
