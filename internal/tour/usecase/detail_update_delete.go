package usecase

import (
	"context"

	"tour-booking-api/internal/tour"
	repo "tour-booking-api/internal/tour/repository"
)

// Detail retrieves a single visible Tour by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (tour.DetailOutput, error) {
	t, err := uc.repo.GetOneTour(ctx, repo.GetOneTourOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTour: %v", err)
		return tour.DetailOutput{}, domainErr(err)
	}
	if t.ID == "" {
		return tour.DetailOutput{}, tour.ErrTourNotFound
	}
	return tour.DetailOutput{Tour: t}, nil
}

// Update modifies an existing Tour. The slug follows the name.
func (uc *implUseCase) Update(ctx context.Context, input tour.UpdateInput) (tour.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTour(ctx, repo.GetOneTourOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTour: %v", err)
		return tour.UpdateOutput{}, domainErr(err)
	}
	if existing.ID == "" {
		return tour.UpdateOutput{}, tour.ErrTourNotFound
	}

	err = validateTour(
		coalesce(input.Difficulty, existing.Difficulty),
		coalesce(input.Price, existing.Price),
		coalesce(input.PriceDiscount, existing.PriceDiscount),
	)
	if err != nil {
		return tour.UpdateOutput{}, err
	}

	opt := repo.UpdateTourOptions{
		ID:            input.ID,
		Name:          input.Name,
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
	}
	if input.Name != nil {
		slug := tour.Slugify(*input.Name)
		opt.Slug = &slug
	}

	t, err := uc.repo.UpdateTour(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTour: %v", err)
		return tour.UpdateOutput{}, domainErr(err)
	}
	if t.ID == "" {
		return tour.UpdateOutput{}, tour.ErrTourNotFound
	}
	return tour.UpdateOutput{Tour: t}, nil
}

// Delete removes a Tour by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.DeleteTour(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTour: %v", err)
		return domainErr(err)
	}
	if !deleted {
		return tour.ErrTourNotFound
	}
	return nil
}
