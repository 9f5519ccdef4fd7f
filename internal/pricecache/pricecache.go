// Package pricecache remembers the last displayed price per symbol so price
// updates can flash up or down.
package pricecache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// DefaultTTL is how long a remembered price stays comparable.
const DefaultTTL = time.Minute

// MaxSymbols is the number of symbols the cache remembers.
const MaxSymbols = 1 << 10

// Flash is the direction of a price change relative to the cached price.
type Flash int

const (
	FlashNone Flash = iota
	FlashUp
	FlashDown
)

func (f Flash) String() string {
	switch f {
	case FlashUp:
		return "up"
	case FlashDown:
		return "down"
	default:
		return "none"
	}
}

// Cache is the previous-price cache.
type Cache struct {
	c   *ristretto.Cache
	ttl time.Duration
}

// New creates a cache whose entries expire after ttl.
func New(ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	// one unit of cost per symbol; ristretto's own per-item overhead would
	// otherwise cap the cache at a handful of symbols
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        1e4,
		MaxCost:            MaxSymbols,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("price cache: %w", err)
	}
	return &Cache{c: c, ttl: ttl}, nil
}

// Observe records price for symbol and returns its direction against the
// previously recorded price. The first observation of a symbol is FlashNone.
func (c *Cache) Observe(symbol string, price float64) Flash {
	flash := FlashNone
	if prev, ok := c.Get(symbol); ok {
		switch {
		case price > prev:
			flash = FlashUp
		case price < prev:
			flash = FlashDown
		}
	}
	c.c.SetWithTTL(symbol, price, 1, c.ttl)
	// make the write visible to the next Observe
	c.c.Wait()
	return flash
}

// Get returns the cached price of symbol.
func (c *Cache) Get(symbol string) (float64, bool) {
	v, ok := c.c.Get(symbol)
	if !ok {
		return 0, false
	}
	price, ok := v.(float64)
	return price, ok
}

// Clear forgets every price.
func (c *Cache) Clear() {
	c.c.Clear()
}

// Close releases the cache goroutines.
func (c *Cache) Close() {
	c.c.Close()
}
