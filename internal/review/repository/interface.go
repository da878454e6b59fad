package repository

import (
	"context"

	"tour-booking-api/internal/review"
)

// Repository is the composed interface for the review data store.
type Repository interface {
	ReviewRepository
}

// ReviewRepository defines data access for the Review entity. Reads populate
// the author.
type ReviewRepository interface {
	CreateReview(ctx context.Context, opt CreateReviewOptions) (review.Review, error)
	GetOneReview(ctx context.Context, id string) (review.Review, error)
	ListReviews(ctx context.Context, opt ListReviewsOptions) ([]review.Review, error)
	UpdateReview(ctx context.Context, opt UpdateReviewOptions) (review.Review, error)
	DeleteReview(ctx context.Context, id string) (bool, error)
	RatingStats(ctx context.Context, tourID string) (RatingStats, error)
	EnsureIndexes(ctx context.Context) error
}
