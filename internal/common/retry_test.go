package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryOptions {
	return RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2,
	}
}

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("flaky")
		}
		return nil
	}, fastRetry())

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return boom
	}, fastRetry())

	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_PermanentStopsImmediately(t *testing.T) {
	boom := errors.New("bad request")
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return Permanent(boom)
	}, fastRetry())

	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := fastRetry()
	opts.InitialDelay = time.Second
	err := WithRetry(ctx, func() error {
		return errors.New("fail")
	}, opts)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateLimit))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: true}))
	assert.False(t, IsRetryable(Permanent(errors.New("x"))))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestUserError(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewUserError("Could not load deals", inner)

	assert.Equal(t, "Could not load deals: connection refused", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "just text", NewUserError("just text", nil).Error())
}
