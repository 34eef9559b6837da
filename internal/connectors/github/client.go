package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/ledgerline-labs/harvest-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize is the listing page size.
	DefaultPageSize = 100
)

// ClientConfig configures the API client.
type ClientConfig struct {
	// Token is an optional bearer credential. Its absence only shrinks
	// the quota ceiling; the client still works anonymously.
	Token string

	// BaseURL overrides the API base URL. Used in tests.
	BaseURL string

	// PageSize is the listing page size. Defaults to DefaultPageSize.
	PageSize int

	// Quota is the admission gate. Defaults to a NewRateLimiter with
	// the default low-water mark.
	Quota QuotaGate
}

// Client wraps the go-github client with the pipeline's fetching,
// resolution and quota bookkeeping.
type Client struct {
	gh       *gh.Client
	quota    QuotaGate
	pageSize int
}

var _ driven.RepositoryService = (*Client)(nil)

// NewClient creates an API client. With an empty token the client is
// anonymous and runs against the reduced quota.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	var ghc *gh.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		tc := oauth2.NewClient(ctx, ts)
		tc.Timeout = DefaultTimeout
		ghc = gh.NewClient(tc)
	} else {
		ghc = gh.NewClient(nil)
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
		ghc.BaseURL = base
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	quota := cfg.Quota
	if quota == nil {
		quota = NewRateLimiter(DefaultLowWater)
	}

	return &Client{gh: ghc, quota: quota, pageSize: pageSize}, nil
}

// Quota returns the client's admission gate.
func (c *Client) Quota() QuotaGate {
	return c.quota
}

// updateQuota records rate limit headers from a response.
func (c *Client) updateQuota(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.quota.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
			URL:        ghErr.Response.Request.URL.String(),
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}
