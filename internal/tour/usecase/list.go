package usecase

import (
	"context"
	"errors"

	"tour-booking-api/internal/tour"
	repo "tour-booking-api/internal/tour/repository"
	"tour-booking-api/pkg/apiquery"
)

// topCheap is the fixed query behind the top-5-cheap alias.
var topCheap = map[string]string{
	apiquery.ParamLimit:  "5",
	apiquery.ParamSort:   "-ratingsAverage,price",
	apiquery.ParamFields: "name,price,ratingsAverage,summary,difficulty",
}

// List filters, sorts, projects and paginates the visible tours.
func (uc *implUseCase) List(ctx context.Context, input tour.ListInput) (tour.ListOutput, error) {
	q := apiquery.Build(nil, input.Query, apiquery.WithCasts(repo.FilterCasts))

	tours, err := uc.repo.ListTours(ctx, repo.ListToursOptions{Query: q})
	if err != nil {
		if !errors.Is(err, apiquery.ErrPageNotFound) {
			uc.l.Errorf(ctx, "uc.List ListTours: %v", err)
		}
		return tour.ListOutput{}, err
	}

	return tour.ListOutput{Tours: tours, Query: q}, nil
}

// TopCheap lists the five best rated, cheapest tours. Client filters still
// apply; the window, order and fields are fixed.
func (uc *implUseCase) TopCheap(ctx context.Context, input tour.ListInput) (tour.ListOutput, error) {
	return uc.List(ctx, tour.ListInput{Query: input.Query.With(topCheap)})
}
