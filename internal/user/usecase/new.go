package usecase

import (
	"io"
	"time"

	"tour-booking-api/internal/user/repository"
	"tour-booking-api/pkg/email"
	"tour-booking-api/pkg/log"
	"tour-booking-api/pkg/photo"
	"tour-booking-api/pkg/scope"
)

// ImageStore resizes and persists uploaded images.
type ImageStore interface {
	Save(r io.Reader, size photo.Size, name string) (string, error)
}

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo   repository.Repository
	tokens scope.Manager
	mailer email.Sender
	images ImageStore
	l      log.Logger
	clock  func() time.Time
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, tokens scope.Manager, mailer email.Sender, images ImageStore, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		tokens: tokens,
		mailer: mailer,
		images: images,
		l:      l,
		clock:  time.Now,
	}
}
