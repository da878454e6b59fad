package usecase

import (
	"context"
	"errors"
	"strings"

	"tour-booking-api/internal/model"
	"tour-booking-api/internal/review"
	repo "tour-booking-api/internal/review/repository"
	tourRepo "tour-booking-api/internal/tour/repository"
	"tour-booking-api/pkg/apiquery"
)

// List filters, sorts, projects and paginates reviews, optionally of one tour.
func (uc *implUseCase) List(ctx context.Context, input review.ListInput) (review.ListOutput, error) {
	q := apiquery.Build(nil, input.Query, apiquery.WithCasts(repo.FilterCasts))

	reviews, err := uc.repo.ListReviews(ctx, repo.ListReviewsOptions{Query: q, TourID: input.TourID})
	if err != nil {
		if errors.Is(err, repo.ErrInvalidID) {
			return review.ListOutput{}, review.ErrTourNotFound
		}
		if !errors.Is(err, apiquery.ErrPageNotFound) {
			uc.l.Errorf(ctx, "uc.List ListReviews: %v", err)
		}
		return review.ListOutput{}, err
	}
	return review.ListOutput{Reviews: reviews, Query: q}, nil
}

// Detail retrieves a single review with its author.
func (uc *implUseCase) Detail(ctx context.Context, id string) (review.DetailOutput, error) {
	rv, err := uc.get(ctx, id)
	if err != nil {
		return review.DetailOutput{}, err
	}
	return review.DetailOutput{Review: rv}, nil
}

// Create stores the caller's review of a visible tour and refreshes the
// tour's rating aggregate.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input review.CreateInput) (review.DetailOutput, error) {
	if err := validate(input.Review, input.Rating); err != nil {
		return review.DetailOutput{}, err
	}
	if input.UserID == "" {
		input.UserID = sc.UserID
	}

	t, err := uc.tours.GetOneTour(ctx, tourRepo.GetOneTourOptions{ID: input.TourID})
	if err != nil {
		if errors.Is(err, tourRepo.ErrInvalidID) {
			return review.DetailOutput{}, review.ErrTourNotFound
		}
		uc.l.Errorf(ctx, "uc.Create GetOneTour: %v", err)
		return review.DetailOutput{}, err
	}
	if t.ID == "" {
		return review.DetailOutput{}, review.ErrTourNotFound
	}

	rv, err := uc.repo.CreateReview(ctx, repo.CreateReviewOptions{
		Review: strings.TrimSpace(input.Review),
		Rating: input.Rating,
		TourID: input.TourID,
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return review.DetailOutput{}, review.ErrAlreadyReviewed
		}
		if errors.Is(err, repo.ErrInvalidID) {
			return review.DetailOutput{}, review.ErrInvalidID
		}
		uc.l.Errorf(ctx, "uc.Create CreateReview: %v", err)
		return review.DetailOutput{}, err
	}

	uc.refreshRatings(ctx, rv.TourID)
	return review.DetailOutput{Review: rv}, nil
}

// Update changes the text or rating of a review. Only its author or an admin
// may do so.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input review.UpdateInput) (review.DetailOutput, error) {
	if input.Review != nil && strings.TrimSpace(*input.Review) == "" {
		return review.DetailOutput{}, review.ErrEmptyReview
	}
	if input.Rating != nil && !validRating(*input.Rating) {
		return review.DetailOutput{}, review.ErrInvalidRating
	}

	existing, err := uc.get(ctx, input.ID)
	if err != nil {
		return review.DetailOutput{}, err
	}
	if !canChange(sc, existing) {
		return review.DetailOutput{}, review.ErrNotAuthor
	}

	rv, err := uc.repo.UpdateReview(ctx, repo.UpdateReviewOptions{
		ID:     input.ID,
		Review: input.Review,
		Rating: input.Rating,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateReview: %v", err)
		return review.DetailOutput{}, err
	}
	if rv.ID == "" {
		return review.DetailOutput{}, review.ErrReviewNotFound
	}

	if input.Rating != nil {
		uc.refreshRatings(ctx, rv.TourID)
	}
	return review.DetailOutput{Review: rv}, nil
}

// Delete removes a review and refreshes its tour's rating aggregate. Only its
// author or an admin may do so.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if !canChange(sc, existing) {
		return review.ErrNotAuthor
	}

	deleted, err := uc.repo.DeleteReview(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteReview: %v", err)
		return err
	}
	if !deleted {
		return review.ErrReviewNotFound
	}

	uc.refreshRatings(ctx, existing.TourID)
	return nil
}

func (uc *implUseCase) get(ctx context.Context, id string) (review.Review, error) {
	rv, err := uc.repo.GetOneReview(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidID) {
			return review.Review{}, review.ErrInvalidID
		}
		uc.l.Errorf(ctx, "uc.get GetOneReview: %v", err)
		return review.Review{}, err
	}
	if rv.ID == "" {
		return review.Review{}, review.ErrReviewNotFound
	}
	return rv, nil
}
