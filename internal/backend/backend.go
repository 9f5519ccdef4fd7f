// Package backend is the HTTP client of the trading simulation API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zappabad/botwars/internal/config"
	"github.com/zappabad/botwars/internal/market"
)

// Endpoints, relative to the base URL.
const (
	PathNewGame = "new_game"
	PathTick    = "tick"
	PathPrices  = "prices"
)

var (
	// ErrStatus is wrapped by every non-2xx response error.
	ErrStatus = errors.New("unexpected status")
	// ErrSnapshotRejected is returned when the backend flags a snapshot as an error.
	ErrSnapshotRejected = errors.New("snapshot rejected")
)

// maxErrorBody caps the response text kept in a StatusError.
const maxErrorBody = 256

// StatusError is a non-2xx backend response.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status=%d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("%s: status=%d body=%s", e.Endpoint, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrStatus }

// Client talks to the simulation backend.
type Client struct {
	logger     *zap.Logger
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for cfg.BackendURL.
func NewClient(logger *zap.Logger, cfg config.Config) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		logger: logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(cfg.BackendURL, "/"),
	}
}

// NewGame resets the session server-side. The response body is ignored.
func (c *Client) NewGame(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, PathNewGame, nil); err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	return nil
}

// Tick advances the simulation one round and returns the normalized snapshot.
func (c *Client) Tick(ctx context.Context) (*market.Snapshot, error) {
	var snap market.Snapshot
	if err := c.do(ctx, http.MethodPost, PathTick, &snap); err != nil {
		return nil, fmt.Errorf("tick: %w", err)
	}
	if snap.Error != "" {
		return nil, fmt.Errorf("tick: %w: %s", ErrSnapshotRejected, snap.Error)
	}
	snap.Normalize()
	return &snap, nil
}

// Prices returns the current symbol to price map.
func (c *Client) Prices(ctx context.Context) (map[string]float64, error) {
	var prices map[string]float64
	if err := c.do(ctx, http.MethodGet, PathPrices, &prices); err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}
	return prices, nil
}

func (c *Client) endpoint(path string) (string, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	return u, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	u, err := c.endpoint(path)
	if err != nil {
		return err
	}

	var body io.Reader
	if method == http.MethodPost {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode/100 != 2 {
		text := strings.TrimSpace(string(data))
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		return &StatusError{Endpoint: path, Code: resp.StatusCode, Body: text}
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
