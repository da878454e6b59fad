package usecase

import (
	"context"

	"tour-booking-api/internal/tour"
	repo "tour-booking-api/internal/tour/repository"
)

// statsMinRating keeps the statistics to well rated tours.
const statsMinRating = 4.5

// Stats groups the well rated tours by difficulty.
func (uc *implUseCase) Stats(ctx context.Context) (tour.StatsOutput, error) {
	stats, err := uc.repo.Stats(ctx, repo.StatsOptions{MinRating: statsMinRating})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats Stats: %v", err)
		return tour.StatsOutput{}, err
	}
	return tour.StatsOutput{Stats: stats}, nil
}

// MonthlyPlan counts the tour starts per month of year.
func (uc *implUseCase) MonthlyPlan(ctx context.Context, year int) (tour.MonthlyPlanOutput, error) {
	if year < 1 || year > 9999 {
		return tour.MonthlyPlanOutput{}, tour.ErrInvalidYear
	}

	plan, err := uc.repo.MonthlyPlan(ctx, repo.MonthlyPlanOptions{Year: year})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MonthlyPlan MonthlyPlan: %v", err)
		return tour.MonthlyPlanOutput{}, err
	}
	return tour.MonthlyPlanOutput{Plan: plan}, nil
}
