// Package ratelimit keeps one token bucket per client key.
package ratelimit

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxKeys = 10000
)

// Limiter allows max requests per window for each key. Buckets of idle keys
// expire after one window, so memory stays bounded.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter allowing max requests per window.
func New(max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxKeys, nil, window),
		rate:     rate.Limit(float64(max) / window.Seconds()),
		burst:    max,
	}
}

// Allow consumes one token for key and reports whether the request may proceed.
func (l *Limiter) Allow(key string) bool {
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// Remaining reports the whole tokens left for key.
func (l *Limiter) Remaining(key string) int {
	limiter, ok := l.limiters.Peek(key)
	if !ok {
		return l.burst
	}
	if n := int(limiter.Tokens()); n > 0 {
		return n
	}
	return 0
}

// Limit is the burst size, the number of requests allowed in one window.
func (l *Limiter) Limit() int {
	return l.burst
}
