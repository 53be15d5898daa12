package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
// It is loaded once at startup and never reloaded.
type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"Sapphire Wallet API"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`
	Debug      bool   `envconfig:"DEBUG" default:"false"`
	Port       string `envconfig:"PORT" default:"8000"`

	CoinGeckoAPIURL string        `envconfig:"COINGECKO_API_URL" default:"https://api.coingecko.com/api/v3"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"30s"`

	SupportedNetworks []string `envconfig:"SUPPORTED_NETWORKS" default:"ethereum,binance-smart-chain,tron,filecoin"`
	NetworkStrategy   string   `envconfig:"NETWORK_STRATEGY" default:"platform"`

	// CacheTTL bounds how long upstream responses are reused. 0 disables caching.
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// LogPretty forces console output on or off; unset means "if stdout is a terminal".
	LogPretty *bool `envconfig:"LOG_PRETTY"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Load reads an optional .env file, then the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks values envconfig cannot.
// Network names and the strategy are checked against the registry when the
// aggregator is built.
func (c *Config) Validate() error {
	u, err := url.Parse(c.CoinGeckoAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("COINGECKO_API_URL must be an absolute http(s) URL, got %q", c.CoinGeckoAPIURL)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", c.UpstreamTimeout)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	if len(c.SupportedNetworks) == 0 {
		return errors.New("SUPPORTED_NETWORKS must not be empty")
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// EffectiveLogLevel returns the log level, raised to debug when Debug is set.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}
