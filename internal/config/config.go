// Package config loads the dashboard configuration from defaults, an
// optional YAML file, an optional .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "BOTWARS_"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds configuration for the dashboard.
type Config struct {
	// BackendURL is the base URL of the simulation API.
	BackendURL string `yaml:"backend_url" env:"BACKEND_URL"`
	// RequestTimeout bounds every backend request.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`

	// TickInterval is the full snapshot polling cadence.
	TickInterval time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	// PriceInterval is the price-only polling cadence. Zero disables it.
	PriceInterval time.Duration `yaml:"price_interval" env:"PRICE_INTERVAL"`
	// StartRetryDelay is the constant backoff between failed session starts.
	StartRetryDelay time.Duration `yaml:"start_retry_delay" env:"START_RETRY_DELAY"`
	// ResultsDelay is the pause between the terminal snapshot and the results view.
	ResultsDelay time.Duration `yaml:"results_delay" env:"RESULTS_DELAY"`
	// RestartDelay is how long the results stay up before a new session starts.
	RestartDelay time.Duration `yaml:"restart_delay" env:"RESTART_DELAY"`
	// BannerDuration is how long a breaking news banner stays up.
	BannerDuration time.Duration `yaml:"banner_duration" env:"BANNER_DURATION"`

	FeedCapacity  int           `yaml:"feed_capacity" env:"FEED_CAPACITY"`
	BarFloor      float64       `yaml:"bar_floor" env:"BAR_FLOOR"`
	WinTarget     float64       `yaml:"win_target" env:"WIN_TARGET"`
	PriceCacheTTL time.Duration `yaml:"price_cache_ttl" env:"PRICE_CACHE_TTL"`

	// LogFile receives JSON logs. Empty disables logging.
	LogFile  string `yaml:"log_file" env:"LOG_FILE"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		BackendURL:      "http://localhost:5000/api",
		RequestTimeout:  5 * time.Second,
		TickInterval:    4 * time.Second,
		PriceInterval:   time.Second,
		StartRetryDelay: 2 * time.Second,
		ResultsDelay:    1500 * time.Millisecond,
		RestartDelay:    10 * time.Second,
		BannerDuration:  4 * time.Second,
		FeedCapacity:    80,
		BarFloor:        5,
		WinTarget:       10000,
		PriceCacheTTL:   time.Minute,
		LogFile:         "botwars.log",
		LogLevel:        "info",
	}
}

// Load builds the config from defaults, the YAML file at path (skipped when
// path is empty), ./.env and the process environment, in increasing order of
// precedence.
func Load(path string) (Config, error) {
	return LoadFiles(path, ".env")
}

// LoadFiles is Load with an explicit .env location. A missing .env file is
// not an error; a missing YAML file is.
func LoadFiles(path, dotenv string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}

	environ := environment()
	if dotenv != "" {
		vars, err := godotenv.Read(dotenv)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read env file %q: %w", dotenv, err)
		default:
			// the process environment wins over the file
			for k, v := range vars {
				if _, ok := environ[k]; !ok {
					environ[k] = v
				}
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func environment() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			out[k] = v
		}
	}
	return out
}

// withDefaults fills zero values that have no meaning of their own.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BackendURL == "" {
		c.BackendURL = def.BackendURL
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = def.RequestTimeout
	}
	if c.TickInterval == 0 {
		c.TickInterval = def.TickInterval
	}
	if c.StartRetryDelay == 0 {
		c.StartRetryDelay = def.StartRetryDelay
	}
	if c.RestartDelay == 0 {
		c.RestartDelay = def.RestartDelay
	}
	if c.BannerDuration == 0 {
		c.BannerDuration = def.BannerDuration
	}
	if c.FeedCapacity == 0 {
		c.FeedCapacity = def.FeedCapacity
	}
	if c.WinTarget == 0 {
		c.WinTarget = def.WinTarget
	}
	if c.PriceCacheTTL == 0 {
		c.PriceCacheTTL = def.PriceCacheTTL
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}

// Validate checks the config for invalid values.
func (c Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: backend_url %q must be an absolute URL", ErrInvalid, c.BackendURL)
	}

	positive := []struct {
		field string
		value time.Duration
	}{
		{"request_timeout", c.RequestTimeout},
		{"tick_interval", c.TickInterval},
		{"start_retry_delay", c.StartRetryDelay},
		{"restart_delay", c.RestartDelay},
		{"banner_duration", c.BannerDuration},
		{"price_cache_ttl", c.PriceCacheTTL},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be greater than 0", ErrInvalid, p.field)
		}
	}
	if c.PriceInterval < 0 {
		return fmt.Errorf("%w: price_interval must not be negative", ErrInvalid)
	}
	if c.ResultsDelay < 0 {
		return fmt.Errorf("%w: results_delay must not be negative", ErrInvalid)
	}
	if c.FeedCapacity < 1 {
		return fmt.Errorf("%w: feed_capacity must be at least 1", ErrInvalid)
	}
	if c.BarFloor < 0 || c.BarFloor > 100 {
		return fmt.Errorf("%w: bar_floor %.2f must be within [0, 100]", ErrInvalid, c.BarFloor)
	}
	if c.WinTarget <= 0 {
		return fmt.Errorf("%w: win_target must be greater than 0", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}
