package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider wraps a Provider with exponential backoff on transient
// failures.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps the provider with retry behavior.
func WithRetry(inner Provider, cfg RetryConfig) *RetryProvider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: inner, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidRetried := false

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, fmt.Errorf("giving up after %d attempts: %w", r.cfg.MaxAttempts, lastErr)
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// shouldRetry decides if an error is worth another attempt. Context
// cancellation and token-limit overruns never are. A schema-invalid
// response gets exactly one retry.
func shouldRetry(err error, invalidRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTokens *ErrMaxTokensExceeded
	if errors.As(err, &maxTokens) {
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	return true
}

// backoff computes the wait before the next attempt, honoring a server
// supplied Retry-After when present.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rateLimit *ErrRateLimit
	if errors.As(err, &rateLimit) && rateLimit.RetryAfter > 0 {
		return rateLimit.RetryAfter
	}

	wait := time.Duration(float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt-1)))
	if wait > r.cfg.MaxWait {
		wait = r.cfg.MaxWait
	}

	// +-20% jitter
	jitter := 1 + (rand.Float64()*0.4 - 0.2)
	return time.Duration(float64(wait) * jitter)
}
