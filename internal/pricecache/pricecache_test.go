package pricecache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(time.Minute)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestObserve(t *testing.T) {
	c := newCache(t)

	assert.Equal(t, FlashNone, c.Observe("BTC", 50000))
	assert.Equal(t, FlashUp, c.Observe("BTC", 50100))
	assert.Equal(t, FlashDown, c.Observe("BTC", 49900))
	assert.Equal(t, FlashNone, c.Observe("BTC", 49900))

	assert.Equal(t, FlashNone, c.Observe("ETH", 2700), "symbols are tracked independently")

	price, ok := c.Get("BTC")
	require.True(t, ok)
	assert.Equal(t, 49900.0, price)
}

func TestObserveKeepsManySymbols(t *testing.T) {
	c := newCache(t)
	const n = 200
	for i := 0; i < n; i++ {
		c.Observe(fmt.Sprintf("SYM%d", i), 100)
	}

	missing := 0
	for i := 0; i < n; i++ {
		if _, ok := c.Get(fmt.Sprintf("SYM%d", i)); !ok {
			missing++
		}
	}
	assert.Zero(t, missing, "every symbol keeps its previous price")
	assert.Equal(t, FlashUp, c.Observe("SYM0", 101))
}

func TestClear(t *testing.T) {
	c := newCache(t)
	c.Observe("SOL", 100)
	c.Clear()

	_, ok := c.Get("SOL")
	assert.False(t, ok)
	assert.Equal(t, FlashNone, c.Observe("SOL", 90))
}

func TestFlashString(t *testing.T) {
	assert.Equal(t, "up", FlashUp.String())
	assert.Equal(t, "down", FlashDown.String())
	assert.Equal(t, "none", FlashNone.String())
}
