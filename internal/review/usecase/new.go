package usecase

import (
	"context"

	"tour-booking-api/internal/review/repository"
	"tour-booking-api/internal/tour"
	tourRepo "tour-booking-api/internal/tour/repository"
	"tour-booking-api/pkg/log"
)

// TourStore is the part of the tour store reviews depend on: checking that a
// tour exists and keeping its rating aggregate current.
type TourStore interface {
	GetOneTour(ctx context.Context, opt tourRepo.GetOneTourOptions) (tour.Tour, error)
	SetRatings(ctx context.Context, opt tourRepo.SetRatingsOptions) error
}

// implUseCase is the private implementation of review.UseCase.
type implUseCase struct {
	repo  repository.Repository
	tours TourStore
	l     log.Logger
}

// New creates a new review UseCase implementation.
func New(repo repository.Repository, tours TourStore, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		tours: tours,
		l:     l,
	}
}
