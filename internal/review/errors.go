package review

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidID       = errors.New("invalid review id")
	ErrTourNotFound    = errors.New("tour not found")
	ErrEmptyReview     = errors.New("review can not be empty")
	ErrInvalidRating   = errors.New("rating must be between 1.0 and 5.0")
	ErrAlreadyReviewed = errors.New("you have already reviewed this tour")
	ErrNotAuthor       = errors.New("you can only change your own reviews")
)
