package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/botwars/internal/config"
)

const snapshotJSON = `{
	"round": 3, "total_rounds": 30, "game_over": false, "win_reason": null,
	"market_mood": 0.4, "market_mood_label": "Greedy",
	"assets": {
		"SOL": {"symbol": "SOL", "name": "Solana", "price": 98.5, "change_pct": -1.2, "history": [100, 98.5]},
		"BTC": {"symbol": "BTC", "name": "Bitcoin", "price": 50000, "change_pct": 1.01, "history": []}
	},
	"bots": [
		{"name": "Bot1", "personality": "whale", "net_worth": 1200.5, "pnl": 200.5, "trades_made": 4}
	],
	"active_events": [],
	"new_event": null,
	"round_actions": [{"bot_name": "Bot1", "action": "BUY", "asset": "BTC", "amount": 1, "price": 50000}]
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.BackendURL = server.URL + "/api"
	return NewClient(nil, cfg)
}

func TestNewClient(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.BackendURL = "http://example.com/api/"
	cfg.RequestTimeout = 0

	client := NewClient(nil, cfg)
	assert.NotNil(t, client.logger)
	assert.Equal(t, "http://example.com/api", client.baseURL)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

func TestTick(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tick", r.URL.Path)
		w.Write([]byte(snapshotJSON))
	})

	snap, err := client.Tick(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Round)
	assert.Equal(t, []string{"SOL", "BTC"}, snap.Instruments.Symbols())

	btc, ok := snap.Instruments.Get("BTC")
	require.True(t, ok)
	assert.Equal(t, []float64{50000}, btc.History, "empty history is normalized")

	require.Len(t, snap.Bots, 1)
	assert.Equal(t, 4, snap.Bots[0].Trades)
	require.Len(t, snap.Actions, 1)
	assert.Nil(t, snap.NewEvent)
}

func TestTickRejectedSnapshot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "engine crashed"}`))
	})

	_, err := client.Tick(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotRejected)
	assert.Contains(t, err.Error(), "engine crashed")
}

func TestTickStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Tick(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStatus)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, PathTick, se.Endpoint)
	assert.Equal(t, "boom", se.Body)
}

func TestTickMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"round": `))
	})

	_, err := client.Tick(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStatus)
}

func TestNewGame(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/new_game", r.URL.Path)
		w.Write([]byte(`not even json`))
	})

	require.NoError(t, client.NewGame(context.Background()), "the body is ignored")
	assert.True(t, called)
}

func TestNewGameFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := client.NewGame(context.Background())
	assert.ErrorIs(t, err, ErrStatus)
}

func TestPrices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/prices", r.URL.Path)
		w.Write([]byte(`{"BTC": 50100.25, "ETH": 2701}`))
	})

	prices, err := client.Prices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"BTC": 50100.25, "ETH": 2701}, prices)
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	cfg := config.DefaultConfig()
	cfg.BackendURL = server.URL
	server.Close()

	_, err := NewClient(nil, cfg).Prices(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStatus)
}

func TestContextCancel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(snapshotJSON))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Tick(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
