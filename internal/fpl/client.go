package fpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const snapshotCacheKey = "fpl:bootstrap-static"

// Client fetches the season snapshot from the FPL API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	cache      CacheProvider
	cacheTTL   time.Duration
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

// ClientOptions configures the snapshot client.
type ClientOptions struct {
	BaseURL         string
	UserAgent       string
	Timeout         time.Duration
	RateLimit       float64 // requests per second
	BreakerMaxFails uint32
	Cache           CacheProvider // nil disables snapshot caching
	CacheTTL        time.Duration
}

// NewClient creates a new FPL API client.
func NewClient(opts ClientOptions, logger *logrus.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://fantasy.premierleague.com/api"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 2.0
	}
	if opts.BreakerMaxFails == 0 {
		opts.BreakerMaxFails = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "fpl-api",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerMaxFails
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("Circuit breaker %s changed from %s to %s", name, from, to)
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		cache:      opts.Cache,
		cacheTTL:   opts.CacheTTL,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		breaker:    breaker,
		logger:     logger,
	}
}

// Bootstrap fetches the bootstrap-static snapshot, consulting the cache first
// when one is configured.
func (c *Client) Bootstrap(ctx context.Context) (*Bootstrap, error) {
	if c.cache != nil {
		var cached Bootstrap
		if err := c.cache.GetSimple(snapshotCacheKey, &cached); err == nil && len(cached.Elements) > 0 {
			c.logger.Debugf("Using cached snapshot (%d players)", len(cached.Elements))
			return &cached, nil
		}
	}

	body, err := c.get(ctx, "/bootstrap-static/")
	if err != nil {
		return nil, err
	}

	var snapshot Bootstrap
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.SetSimple(snapshotCacheKey, &snapshot, c.cacheTTL); err != nil {
			c.logger.Warnf("Failed to cache snapshot: %v", err)
		}
	}

	c.logger.Infof("Fetched snapshot: %d teams, %d players", len(snapshot.Teams), len(snapshot.Elements))
	return &snapshot, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("GET %s returned %d", path, resp.StatusCode)
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// LoadSnapshot reads a bootstrap snapshot from a local JSON file.
func LoadSnapshot(path string) (*Bootstrap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshot Bootstrap
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file %s: %w", path, err)
	}

	return &snapshot, nil
}
