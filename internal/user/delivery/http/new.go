package http

import (
	"time"

	"tour-booking-api/internal/user"
	"tour-booking-api/pkg/log"
)

// Config tunes the user handlers.
type Config struct {
	Verbose bool
	// SecureCookie marks the jwt cookie Secure (production).
	SecureCookie bool
	// CookieTTL is the lifetime of the jwt cookie.
	CookieTTL time.Duration
	// PublicURL overrides the host used in password reset links.
	PublicURL string
	// UploadLimit caps a multipart photo upload, in bytes.
	UploadLimit int64
}

type handler struct {
	l   log.Logger
	uc  user.UseCase
	cfg Config
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase, cfg Config) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
	}
}
