package http

import (
	"tour-booking-api/internal/tour"
	"tour-booking-api/pkg/log"
)

// Config tunes the tour handlers.
type Config struct {
	// Verbose exposes internal error messages.
	Verbose bool
	// UploadLimit caps a multipart image upload, in bytes.
	UploadLimit int64
}

type handler struct {
	l   log.Logger
	uc  tour.UseCase
	cfg Config
}

// New creates a new HTTP handler for the tour domain.
func New(l log.Logger, uc tour.UseCase, cfg Config) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
	}
}
