package middleware

import (
	"context"

	"tour-booking-api/internal/model"
	"tour-booking-api/pkg/log"
	"tour-booking-api/pkg/ratelimit"
)

// Authenticator resolves a bearer token to the scope of its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Scope, error)
}

type Middleware struct {
	l       log.Logger
	auth    Authenticator
	limiter *ratelimit.Limiter
	verbose bool
}

// New creates the middleware set. verbose exposes internal error messages.
func New(l log.Logger, auth Authenticator, limiter *ratelimit.Limiter, verbose bool) Middleware {
	return Middleware{
		l:       l,
		auth:    auth,
		limiter: limiter,
		verbose: verbose,
	}
}
