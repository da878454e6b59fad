package http

import (
	"tour-booking-api/internal/review"
	"tour-booking-api/pkg/log"
)

type handler struct {
	l       log.Logger
	uc      review.UseCase
	verbose bool
}

// New creates a new HTTP handler for the review domain.
func New(l log.Logger, uc review.UseCase, verbose bool) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		verbose: verbose,
	}
}
