package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nickabs/cloudpdf"
	"github.com/nickabs/cloudpdf/internal/logger"
	"github.com/nickabs/cloudpdf/internal/version"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
// Flags win over CLOUDPDF_* environment variables, which win over the env file.
type options struct {
	apiKey        string
	cloudName     string
	signingSecret string
	apiURL        string
	timeout       time.Duration
	signed        string
	logLevel      string
	envFile       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "cloudpdf",
		Short: "CloudPDF API client",
		Long: `Calls the CloudPDF v2 API and prints the raw JSON response.

Credentials are read from CLOUDPDF_API_KEY, CLOUDPDF_CLOUD_NAME and
CLOUDPDF_SIGNING_SECRET (or a .env file), and can be overridden with flags.
When a cloud name and signing secret are available requests are signed.`,
		SilenceUsage: true,
		Version:      version.Get().String(),
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiKey, "api-key", "", "API key (default $CLOUDPDF_API_KEY)")
	flags.StringVar(&opts.cloudName, "cloud-name", "", "cloud name used as the signed token kid (default $CLOUDPDF_CLOUD_NAME)")
	flags.StringVar(&opts.signingSecret, "signing-secret", "", "secret used to sign tokens (default $CLOUDPDF_SIGNING_SECRET)")
	flags.StringVar(&opts.apiURL, "api-url", "", "API base url (default $CLOUDPDF_API_URL or "+cloudpdf.APIBase+")")
	flags.DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout (default $CLOUDPDF_TIMEOUT or 30s)")
	flags.StringVar(&opts.signed, "signed", "auto", "auth mode: auto, true (signed tokens) or false (api key)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default $CLOUDPDF_LOG_LEVEL or warn)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "env file to load if present, empty to skip")

	cmd.AddCommand(
		newAccountCmd(opts),
		newAuthCmd(opts),
		newDocumentsCmd(opts),
		newWebhooksCmd(opts),
		newViewerTokenCmd(opts),
	)

	return cmd
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// client builds a client from the env file, the environment and the flags
func (o *options) client(cmd *cobra.Command) (*cloudpdf.Client, error) {
	if err := loadEnvFile(o.envFile); err != nil {
		return nil, err
	}

	levelName := o.logLevel
	if levelName == "" {
		levelName = os.Getenv("CLOUDPDF_LOG_LEVEL")
	}
	level, ok := logger.ParseLevel(levelName)
	log := logger.New(cmd.ErrOrStderr(), level)
	if !ok && levelName != "" {
		log.Warn().Msgf("invalid log level %q, defaulting to %s", levelName, level)
	}

	cfg, err := cloudpdf.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if o.apiKey != "" {
		cfg.APIKey = o.apiKey
	}
	if o.cloudName != "" {
		cfg.CloudName = o.cloudName
	}
	if o.signingSecret != "" {
		cfg.SigningSecret = o.signingSecret
	}
	if o.apiURL != "" {
		cfg.BaseURL = o.apiURL
	}
	if o.timeout != 0 {
		cfg.Timeout = o.timeout
	}

	c, err := cloudpdf.New(cfg, cloudpdf.WithLogger(log))
	if err != nil {
		return nil, err
	}

	switch o.signed {
	case "auto":
	case "true":
		err = c.SetSigned(true)
	case "false":
		err = c.SetSigned(false)
	default:
		err = fmt.Errorf("invalid --signed value %q (expects auto, true or false)", o.signed)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Str("auth_mode", c.AuthMode().String()).Str("api_url", cfg.BaseURL).Msg("client ready")
	return c, nil
}

type callFunc func(ctx context.Context, c *cloudpdf.Client, args []string) (json.RawMessage, error)

// runCall returns a cobra RunE that performs call and prints the response
func runCall(opts *options, call callFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := opts.client(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		res, err := call(ctx, c, args)
		if err != nil {
			return err
		}
		return writeResponse(cmd.OutOrStdout(), res)
	}
}

func writeResponse(w io.Writer, res []byte) error {
	if len(res) == 0 {
		return nil
	}
	if _, err := w.Write(res); err != nil {
		return err
	}
	if res[len(res)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// parseParams decodes the --data flag, which must be a JSON object
func parseParams(data string) (cloudpdf.Params, error) {
	params := cloudpdf.Params{}
	if data == "" {
		return params, nil
	}
	if err := json.Unmarshal([]byte(data), &params); err != nil {
		return nil, fmt.Errorf("--data must be a JSON object: %w", err)
	}
	return params, nil
}
