package bgg

import "time"

// Config holds configuration for the BoardGameGeek collection client.
type Config struct {
	// BaseURL is the root of the BGG XML API.
	BaseURL string `mapstructure:"base_url" default:"https://boardgamegeek.com/xmlapi2"`
	// Username is the BGG account whose collection is synced.
	// The collection feature is disabled when empty.
	Username string `mapstructure:"username" default:""`
	// Token is an optional bearer credential. Without it the client runs
	// unauthenticated (degraded mode, more likely to be throttled).
	Token string `mapstructure:"token" default:""`
	// OwnedOnly limits the fetch to owned games (excludes wishlist etc.).
	OwnedOnly bool `mapstructure:"owned_only" default:"true"`
	// MinRequestSpacing is the minimum spacing between requests to BGG,
	// enforced regardless of response codes. BGG throttles anything
	// faster than about 5 seconds.
	MinRequestSpacing time.Duration `mapstructure:"min_request_spacing" default:"5s"`
	// MaxAttempts bounds retries for "not ready" (202), rate-limit (429)
	// and server-error responses.
	MaxAttempts int `mapstructure:"max_attempts" default:"5"`
	// BackoffMultiplier is the exponential backoff growth factor.
	BackoffMultiplier float64 `mapstructure:"backoff_multiplier" default:"2"`
}

// IsEnabled reports whether collection sync is configured.
func (c Config) IsEnabled() bool {
	return c.Username != ""
}

// MinRequestInterval returns the request spacing floor, defaulting to 5s.
func (c Config) MinRequestInterval() time.Duration {
	if c.MinRequestSpacing <= 0 {
		return 5 * time.Second
	}
	return c.MinRequestSpacing
}
