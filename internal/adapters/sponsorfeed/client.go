// Package sponsorfeed fetches the externally hosted sponsor-logo feed. All
// reads go through the TTL cache and degrade to cached-or-empty data; the
// rendering layer never sees a fetch failure.
package sponsorfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"mainstreet/internal/cache"
)

const cacheKey = "sponsor-feed"

// emptyFeed is the default payload when nothing was ever fetched.
const emptyFeed = `{"logos":[]}`

// Logo is one entry in the external sponsor-logo feed.
type Logo struct {
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`
	WebsiteURL string `json:"websiteUrl,omitempty"`
}

// feedDocument is the upstream JSON shape.
type feedDocument struct {
	Logos []Logo `json:"logos"`
}

// Client fetches and caches the sponsor feed.
type Client struct {
	http   *resty.Client
	url    string
	cache  *cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// New returns a feed client. url may be empty, in which case Logos always
// returns the cached-or-empty result.
func New(url string, ttl time.Duration, c *cache.Cache, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetRetryCount(3).
		SetRetryWaitTime(2 * time.Second).
		SetTimeout(10 * time.Second)
	return &Client{http: httpClient, url: url, cache: c, ttl: ttl, logger: logger}
}

// Logos returns the current sponsor logos, served from cache within the TTL
// and refreshed from upstream otherwise. On upstream failure the stale cached
// feed (any age) or an empty list is returned; errors are never surfaced.
func (c *Client) Logos(ctx context.Context) []Logo {
	raw := c.cache.GetOrFetch(ctx, cacheKey, c.ttl, c.fetch, emptyFeed)
	var doc feedDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		c.logger.Warn("sponsor feed payload unparsable", "err", err)
		return []Logo{}
	}
	if doc.Logos == nil {
		return []Logo{}
	}
	return doc.Logos
}

func (c *Client) fetch(ctx context.Context) (string, error) {
	if c.url == "" {
		return "", fmt.Errorf("no sponsor feed url configured")
	}
	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return "", fmt.Errorf("fetch sponsor feed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("sponsor feed returned status %d", resp.StatusCode())
	}
	// Validate before caching so a bad upstream body can't poison the cache.
	var doc feedDocument
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return "", fmt.Errorf("decode sponsor feed: %w", err)
	}
	return string(resp.Body()), nil
}
