package usecase

import (
	"io"
	"time"

	"tour-booking-api/internal/tour/repository"
	"tour-booking-api/pkg/log"
	"tour-booking-api/pkg/photo"
)

// ImageStore resizes and persists uploaded images.
type ImageStore interface {
	Save(r io.Reader, size photo.Size, name string) (string, error)
}

// implUseCase is the private implementation of tour.UseCase.
type implUseCase struct {
	repo   repository.Repository
	images ImageStore
	l      log.Logger
	clock  func() time.Time
}

// New creates a new tour UseCase implementation.
func New(repo repository.Repository, images ImageStore, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		images: images,
		l:      l,
		clock:  time.Now,
	}
}
