package usecase

import (
	"context"
	"math"
	"strings"

	"tour-booking-api/internal/model"
	"tour-booking-api/internal/review"
	tourRepo "tour-booking-api/internal/tour/repository"
)

// refreshRatings recomputes the review count and average of a tour. Failures
// are logged; the review write has already succeeded.
func (uc *implUseCase) refreshRatings(ctx context.Context, tourID string) {
	stats, err := uc.repo.RatingStats(ctx, tourID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.refreshRatings RatingStats %s: %v", tourID, err)
		return
	}

	err = uc.tours.SetRatings(ctx, tourRepo.SetRatingsOptions{
		TourID:   tourID,
		Quantity: stats.Quantity,
		Average:  roundRating(stats.Average),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.refreshRatings SetRatings %s: %v", tourID, err)
	}
}

// roundRating keeps one decimal: 4.666 becomes 4.7.
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

func validRating(r float64) bool {
	return r >= review.MinRating && r <= review.MaxRating
}

func validate(text string, rating float64) error {
	if strings.TrimSpace(text) == "" {
		return review.ErrEmptyReview
	}
	if !validRating(rating) {
		return review.ErrInvalidRating
	}
	return nil
}

func canChange(sc model.Scope, rv review.Review) bool {
	return sc.Role == model.RoleAdmin || sc.UserID == rv.UserID
}
