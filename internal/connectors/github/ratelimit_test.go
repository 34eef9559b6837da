package github

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_WaitAboveLowWater(t *testing.T) {
	r := NewRateLimiter(10)
	r.Record(100, time.Now().Add(time.Hour))

	start := time.Now()
	err := r.Wait(context.Background())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiter_WaitBelowLowWaterBlocksUntilReset(t *testing.T) {
	r := NewRateLimiter(10)
	reset := time.Now().Add(100 * time.Millisecond)
	r.Record(5, reset)

	start := time.Now()
	err := r.Wait(context.Background())

	require.NoError(t, err)
	// Waits past the reset instant (plus the safety margin).
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	assert.True(t, time.Now().After(reset.Add(ResetMargin)))
}

func TestRateLimiter_WaitBelowLowWaterPastResetReturns(t *testing.T) {
	r := NewRateLimiter(10)
	r.Record(0, time.Now().Add(-time.Minute))

	start := time.Now()
	err := r.Wait(context.Background())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiter_WaitHonoursCancellation(t *testing.T) {
	r := NewRateLimiter(10)
	r.Record(0, time.Now().Add(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Wait(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	r := NewRateLimiter(0)
	reset := time.Now().Add(30 * time.Minute).Unix()

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateRemaining, "42")
	resp.Header.Set(HeaderRateLimit, "5000")
	resp.Header.Set(HeaderRateReset, strconv.FormatInt(reset, 10))

	r.UpdateFromResponse(resp)

	assert.Equal(t, 42, r.Remaining())
	assert.Equal(t, 5000, r.Limit())
	assert.Equal(t, time.Unix(reset, 0), r.ResetTime())
}

func TestRateLimiter_UpdateIgnoresMissingHeaders(t *testing.T) {
	r := NewRateLimiter(0)
	r.Record(42, time.Unix(1000, 0))

	r.UpdateFromResponse(&http.Response{Header: http.Header{}})
	r.UpdateFromResponse(nil)

	assert.Equal(t, 42, r.Remaining())
	assert.Equal(t, time.Unix(1000, 0), r.ResetTime())
}

func TestNewRateLimiter_DefaultLowWater(t *testing.T) {
	r := NewRateLimiter(0)
	assert.Equal(t, DefaultLowWater, r.lowWater)

	r = NewRateLimiter(25)
	assert.Equal(t, 25, r.lowWater)
}
