package bgg

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client fetches a user's collection from the BGG XML API.
//
// All requests respect a minimum inter-request spacing (BGG throttles
// aggressively at anything under ~5 seconds) and the retryable response
// codes (202 "export queued", 429, 5xx) are retried with exponential
// backoff up to a bounded number of attempts.
type Client struct {
	cfg    Config
	http   *http.Client
	limit  *rate.Limiter
	logger *zap.Logger
}

// NewClient creates a new BGG client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	interval := cfg.MinRequestInterval()
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
		// Burst of 1: every request waits out the full spacing floor.
		limit:  rate.NewLimiter(rate.Every(interval), 1),
		logger: logger,
	}
}

// FetchCollection retrieves the configured user's collection and returns a
// lazy, non-restartable sequence of items. The caller must Close the
// returned Collection.
//
// Error contract: ErrAuthRejected is fatal and never retried;
// ErrRemoteUnavailable wraps any failure that survived the retry budget.
func (c *Client) FetchCollection(ctx context.Context) (*Collection, error) {
	reqURL, err := c.collectionURL()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	degraded := c.cfg.Token == ""
	if degraded {
		c.logger.Warn("No BGG token configured, fetching unauthenticated (degraded mode)")
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.MinRequestInterval()
	if c.cfg.BackoffMultiplier > 1 {
		bo.Multiplier = c.cfg.BackoffMultiplier
	}
	bo.MaxElapsedTime = 0 // attempts are bounded by MaxAttempts, not wall time
	bo.Reset()

	maxAttempts := c.cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		// Spacing floor applies to every request, retries included.
		if err := c.limit.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.get(ctx, reqURL)
		if err != nil {
			lastErr = err
			c.logger.Warn("Collection request failed",
				zap.Int("attempt", attempt),
				zap.Error(err))
			if err := sleepCtx(ctx, bo.NextBackOff()); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			coll, err := newCollection(resp.Body, degraded)
			if err != nil {
				return nil, err
			}
			return coll, nil

		case resp.StatusCode == http.StatusAccepted:
			// BGG computes collection exports asynchronously and answers
			// 202 until the export is ready.
			resp.Body.Close()
			lastErr = fmt.Errorf("collection export still processing")
			delay := bo.NextBackOff()
			c.logger.Info("Collection export not ready, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, err
			}

		case resp.StatusCode == http.StatusTooManyRequests:
			delay := retryAfter(resp)
			if delay <= 0 {
				delay = bo.NextBackOff()
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("rate limited")
			c.logger.Warn("Rate limited by BGG, backing off",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, err
			}

		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			resp.Body.Close()
			return nil, fmt.Errorf("%w: status %d", ErrAuthRejected, resp.StatusCode)

		case resp.StatusCode >= 500:
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: status %d", resp.StatusCode)
			if err := sleepCtx(ctx, bo.NextBackOff()); err != nil {
				return nil, err
			}

		default:
			resp.Body.Close()
			return nil, fmt.Errorf("%w: unexpected status %d", ErrRemoteUnavailable, resp.StatusCode)
		}
	}

	return nil, fmt.Errorf("%w: %v (after %d attempts)", ErrRemoteUnavailable, lastErr, maxAttempts)
}

func (c *Client) collectionURL() (string, error) {
	if c.cfg.Username == "" {
		return "", fmt.Errorf("no username configured")
	}

	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %v", c.cfg.BaseURL, err)
	}
	u = u.JoinPath("collection")

	q := u.Query()
	q.Set("username", c.cfg.Username)
	q.Set("subtype", "boardgame")
	q.Set("excludesubtype", "boardgameexpansion")
	if c.cfg.OwnedOnly {
		q.Set("own", "1")
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (c *Client) get(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	return c.http.Do(req)
}

// retryAfter parses the Retry-After response header (seconds form only).
func retryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// sleepCtx waits for d, returning early with the context error on cancel.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
