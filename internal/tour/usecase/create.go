package usecase

import (
	"context"

	"tour-booking-api/internal/tour"
	repo "tour-booking-api/internal/tour/repository"
)

// Create validates and stores a new Tour after checking for name uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input tour.CreateInput) (tour.CreateOutput, error) {
	if err := validateTour(input.Difficulty, input.Price, input.PriceDiscount); err != nil {
		return tour.CreateOutput{}, err
	}

	existing, err := uc.repo.GetOneTour(ctx, repo.GetOneTourOptions{Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneTour: %v", err)
		return tour.CreateOutput{}, err
	}
	if existing.ID != "" {
		return tour.CreateOutput{}, tour.ErrDuplicateName
	}

	t, err := uc.repo.CreateTour(ctx, repo.CreateTourOptions{Tour: tour.Tour{
		Name:          input.Name,
		Slug:          tour.Slugify(input.Name),
		Duration:      input.Duration,
		MaxGroupSize:  input.MaxGroupSize,
		Difficulty:    input.Difficulty,
		Price:         input.Price,
		PriceDiscount: input.PriceDiscount,
		Summary:       input.Summary,
		Description:   input.Description,
		ImageCover:    input.ImageCover,
		Images:        input.Images,
		StartDates:    input.StartDates,
		SecretTour:    input.SecretTour,
		StartLocation: input.StartLocation,
		Locations:     input.Locations,
		CreatedAt:     uc.clock().UTC(),
	}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTour: %v", err)
		return tour.CreateOutput{}, domainErr(err)
	}

	return tour.CreateOutput{Tour: t}, nil
}
