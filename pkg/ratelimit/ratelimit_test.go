package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tour-booking-api/pkg/ratelimit"
)

func TestAllow(t *testing.T) {
	l := ratelimit.New(3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d should pass", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"), "fourth request should be limited")

	// Other clients keep their own bucket.
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestRemaining(t *testing.T) {
	l := ratelimit.New(5, time.Hour)
	assert.Equal(t, 5, l.Remaining("a"))
	assert.Equal(t, 5, l.Limit())

	l.Allow("a")
	l.Allow("a")
	assert.Equal(t, 3, l.Remaining("a"))
}

func TestDefaults(t *testing.T) {
	l := ratelimit.New(0, 0)
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))
}
