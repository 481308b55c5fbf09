package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

const (
	DefaultClientServerURL      = "http://localhost:3000"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// CopyToken makes the client put an issued token into the system
	// clipboard.
	// Env: CLIENT_COPY_TOKEN
	CopyToken bool `env:"COPY_TOKEN"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the authentication server.
	// Env: CLIENT_SERVER_URL
	HTTPAddress string `env:"SERVER_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the terminal client.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp `envPrefix:"CLIENT_"`
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
}

// GetClientConfig builds and validates the client configuration from
// environment variables and command-line flags. Flags win over env.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(commandLineArgs())
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("go-phone-auth-client", flag.ContinueOnError)
	serverURL := fs.String("s", "", "Authentication server base URL")
	timeout := fs.Duration("t", 0, "Request timeout (e.g., 15s)")
	copyToken := fs.Bool("copy-token", false, "Copy issued token into the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if *serverURL != "" {
		cfg.Adapter.HTTPAddress = *serverURL
	}
	if *timeout != 0 {
		cfg.Adapter.RequestTimeout = *timeout
	}
	if *copyToken {
		cfg.App.CopyToken = true
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientServerURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return errors.Join(ErrInvalidAdapterConfigs, errors.New("request timeout must be positive"))
	}

	return nil
}
