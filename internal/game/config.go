package game

import (
	"time"

	"github.com/zappabad/botwars/internal/config"
	"github.com/zappabad/botwars/internal/feed"
	"github.com/zappabad/botwars/internal/leaderboard"
	"github.com/zappabad/botwars/internal/pricecache"
	"github.com/zappabad/botwars/internal/results"
)

// Config holds configuration for the controller.
type Config struct {
	// TickInterval is the cadence of full snapshot polls.
	TickInterval time.Duration
	// PriceInterval is the cadence of price-only polls. Zero disables them.
	PriceInterval time.Duration
	// StartRetryDelay is the constant delay before a failed start is retried.
	StartRetryDelay time.Duration
	// ResultsDelay is the pause between a terminal snapshot and the results view.
	ResultsDelay time.Duration
	// RestartDelay is how long results stay up before the next session.
	RestartDelay time.Duration
	// BannerDuration is how long a breaking news banner is displayed.
	BannerDuration time.Duration
	// FeedCapacity bounds the trade feed.
	FeedCapacity int
	// BarFloor is the minimum leaderboard bar width in percent.
	BarFloor float64
	// WinTarget is the net worth named in the target-reached title.
	WinTarget float64
	// PriceCacheTTL is how long a previous price stays comparable.
	PriceCacheTTL time.Duration
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		TickInterval:    4 * time.Second,
		PriceInterval:   time.Second,
		StartRetryDelay: 2 * time.Second,
		ResultsDelay:    1500 * time.Millisecond,
		RestartDelay:    10 * time.Second,
		BannerDuration:  4 * time.Second,
		FeedCapacity:    feed.DefaultCapacity,
		BarFloor:        leaderboard.DefaultFloor,
		WinTarget:       results.DefaultWinTarget,
		PriceCacheTTL:   pricecache.DefaultTTL,
	}
}

// ConfigFrom picks the controller settings out of the application config.
func ConfigFrom(c config.Config) Config {
	return Config{
		TickInterval:    c.TickInterval,
		PriceInterval:   c.PriceInterval,
		StartRetryDelay: c.StartRetryDelay,
		ResultsDelay:    c.ResultsDelay,
		RestartDelay:    c.RestartDelay,
		BannerDuration:  c.BannerDuration,
		FeedCapacity:    c.FeedCapacity,
		BarFloor:        c.BarFloor,
		WinTarget:       c.WinTarget,
		PriceCacheTTL:   c.PriceCacheTTL,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TickInterval <= 0 {
		c.TickInterval = def.TickInterval
	}
	if c.PriceInterval < 0 {
		c.PriceInterval = 0
	}
	if c.StartRetryDelay <= 0 {
		c.StartRetryDelay = def.StartRetryDelay
	}
	if c.ResultsDelay < 0 {
		c.ResultsDelay = 0
	}
	if c.RestartDelay <= 0 {
		c.RestartDelay = def.RestartDelay
	}
	if c.BannerDuration <= 0 {
		c.BannerDuration = def.BannerDuration
	}
	if c.FeedCapacity <= 0 {
		c.FeedCapacity = def.FeedCapacity
	}
	if c.WinTarget <= 0 {
		c.WinTarget = def.WinTarget
	}
	if c.PriceCacheTTL <= 0 {
		c.PriceCacheTTL = def.PriceCacheTTL
	}
	return c
}
