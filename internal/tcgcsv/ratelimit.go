package tcgcsv

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimiter bounds the request rate against the pricing source using
// a token bucket. tcgcsv is a community mirror; staying well under its
// informal limits keeps the data flowing.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter with the given per-second rate and
// burst size.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Wait blocks until the limiter allows a call or the context ends.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}
