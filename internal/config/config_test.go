package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFiles("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	assert.Equal(t, "http://localhost:5000/api", cfg.BackendURL)
	assert.Equal(t, 4*time.Second, cfg.TickInterval)
	assert.Equal(t, 2*time.Second, cfg.StartRetryDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.ResultsDelay)
	assert.Equal(t, 10*time.Second, cfg.RestartDelay)
	assert.Equal(t, 4*time.Second, cfg.BannerDuration)
	assert.Equal(t, 80, cfg.FeedCapacity)
}

func TestYAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "botwars.yaml", `
backend_url: http://sim:9000/api
tick_interval: 2s
price_interval: 0s
feed_capacity: 40
log_file: ""
`)
	cfg, err := LoadFiles(path, "")
	require.NoError(t, err)

	assert.Equal(t, "http://sim:9000/api", cfg.BackendURL)
	assert.Equal(t, 2*time.Second, cfg.TickInterval)
	assert.Equal(t, time.Duration(0), cfg.PriceInterval, "zero disables price polling")
	assert.Equal(t, 40, cfg.FeedCapacity)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 10*time.Second, cfg.RestartDelay, "unset keys keep defaults")
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "botwars.yaml", "tick_interval: 2s\nbar_floor: 8\n")
	t.Setenv("BOTWARS_TICK_INTERVAL", "3s")
	t.Setenv("BOTWARS_WIN_TARGET", "25000")

	cfg, err := LoadFiles(path, "")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.TickInterval)
	assert.Equal(t, 8.0, cfg.BarFloor, "YAML survives when the variable is unset")
	assert.Equal(t, 25000.0, cfg.WinTarget)
}

func TestDotenvFile(t *testing.T) {
	dotenv := writeFile(t, ".env", "BOTWARS_RESTART_DELAY=30s\nBOTWARS_LOG_LEVEL=debug\n")
	t.Setenv("BOTWARS_LOG_LEVEL", "warn")

	cfg, err := LoadFiles("", dotenv)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RestartDelay)
	assert.Equal(t, "warn", cfg.LogLevel, "process environment wins over .env")

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)
}

func TestMissingFiles(t *testing.T) {
	_, err := LoadFiles(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)

	_, err = LoadFiles("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err, "a missing .env is ignored")
}

func TestBadInput(t *testing.T) {
	_, err := LoadFiles(writeFile(t, "bad.yaml", "tick_interval: [1, 2"), "")
	assert.Error(t, err)

	t.Setenv("BOTWARS_FEED_CAPACITY", "lots")
	_, err = LoadFiles("", "")
	assert.Error(t, err)
}

func TestWithDefaultsFillsZeros(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultConfig().TickInterval, cfg.TickInterval)
	assert.Equal(t, DefaultConfig().FeedCapacity, cfg.FeedCapacity)
	assert.Equal(t, time.Duration(0), cfg.PriceInterval)
	assert.Equal(t, time.Duration(0), cfg.ResultsDelay)
	assert.Empty(t, cfg.LogFile)
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := map[string]func(*Config){
		"relative url":    func(c *Config) { c.BackendURL = "/api" },
		"negative tick":   func(c *Config) { c.TickInterval = -time.Second },
		"negative prices": func(c *Config) { c.PriceInterval = -1 },
		"empty feed":      func(c *Config) { c.FeedCapacity = 0 },
		"floor too high":  func(c *Config) { c.BarFloor = 101 },
		"no target":       func(c *Config) { c.WinTarget = -5 },
		"bad level":       func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
