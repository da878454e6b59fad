package repository

import (
	"tour-booking-api/pkg/apiquery"
)

// FilterCasts types list filter values for the stored review fields.
var FilterCasts = apiquery.Casts{
	"_id":       apiquery.ObjectID,
	"tour":      apiquery.ObjectID,
	"user":      apiquery.ObjectID,
	"createdAt": apiquery.Date,
}

type CreateReviewOptions struct {
	Review string
	Rating float64
	TourID string
	UserID string
}

// ListReviewsOptions carries a built list query, narrowed to TourID when set.
type ListReviewsOptions struct {
	Query  apiquery.Query
	TourID string
}

// UpdateReviewOptions is a partial update; nil fields are not written.
type UpdateReviewOptions struct {
	ID     string
	Review *string
	Rating *float64
}

// RatingStats summarises the reviews of one tour.
type RatingStats struct {
	Quantity int
	Average  float64
}
