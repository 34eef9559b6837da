package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// AuthenticatedRateLimit is the hourly quota with a bearer token.
	AuthenticatedRateLimit = 5000

	// AnonymousRateLimit is the hourly quota without credentials.
	AnonymousRateLimit = 60

	// ProactiveRate is the proactive throttle rate (~1.2 req/sec).
	ProactiveRate = 1.2

	// DefaultLowWater is the remaining-quota threshold below which
	// Wait blocks until the reset instant.
	DefaultLowWater = 10

	// ResetMargin is the safety margin added to the reset instant.
	ResetMargin = 2 * time.Second

	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"
)

// QuotaGate is the admission-control seam between the fetcher and the
// quota state. Wait must be called before every paginated request and
// UpdateFromResponse after every response, otherwise the gate can
// under- or over-estimate the remaining budget.
type QuotaGate interface {
	Wait(ctx context.Context) error
	UpdateFromResponse(resp *http.Response)
}

// RateLimiter implements dual-strategy rate limiting for the API:
// a proactive token bucket keeps the request rate polite, and the
// reactive header-driven check blocks until reset when the remaining
// budget drops below the low-water mark.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	limit     int
	resetTime time.Time
	bucket    *rate.Limiter
	lowWater  int
}

var _ QuotaGate = (*RateLimiter)(nil)

// NewRateLimiter creates a rate limiter assuming a full authenticated
// quota. lowWater <= 0 selects DefaultLowWater.
func NewRateLimiter(lowWater int) *RateLimiter {
	if lowWater <= 0 {
		lowWater = DefaultLowWater
	}
	return &RateLimiter{
		remaining: AuthenticatedRateLimit,
		limit:     AuthenticatedRateLimit,
		bucket:    rate.NewLimiter(rate.Limit(ProactiveRate), 1),
		lowWater:  lowWater,
	}
}

// Wait blocks until it is safe to make a request. Called before every
// page request, not once per principal: a single principal's pagination
// can exhaust the remaining budget mid-run.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	remaining := r.remaining
	resetTime := r.resetTime
	r.mu.Unlock()

	if remaining < r.lowWater && time.Now().Before(resetTime) {
		waitDuration := time.Until(resetTime) + ResetMargin
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitDuration):
		}
	}

	return nil
}

// UpdateFromResponse updates quota state from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
		}
	}

	if limit := resp.Header.Get(HeaderRateLimit); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			r.limit = val
		}
	}

	if reset := resp.Header.Get(HeaderRateReset); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.resetTime = time.Unix(val, 0)
		}
	}
}

// Record sets quota state directly. Used when the state comes from an
// explicit quota query rather than response headers, and by tests.
func (r *RateLimiter) Record(remaining int, resetAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remaining = remaining
	r.resetTime = resetAt
}

// Remaining returns the current remaining requests.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Limit returns the rate limit ceiling.
func (r *RateLimiter) Limit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// ResetTime returns the rate limit reset instant.
func (r *RateLimiter) ResetTime() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetTime
}
