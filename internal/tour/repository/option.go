package repository

import (
	"time"

	"tour-booking-api/internal/tour"
	"tour-booking-api/pkg/apiquery"
)

// FilterCasts types list filter values for the stored tour fields.
var FilterCasts = apiquery.Casts{
	"_id":        apiquery.ObjectID,
	"createdAt":  apiquery.Date,
	"startDates": apiquery.Date,
}

// CreateTourOptions holds the fields of a new Tour. Slug is derived by the caller.
type CreateTourOptions struct {
	Tour tour.Tour
}

// GetOneTourOptions filters a single Tour. Non-empty fields are ANDed.
type GetOneTourOptions struct {
	ID   string
	Name string
	Slug string
}

// ListToursOptions carries a built list query. The secret-tour exclusion is
// added by the repository.
type ListToursOptions struct {
	Query apiquery.Query
}

// UpdateTourOptions is a partial update; nil fields are not written.
type UpdateTourOptions struct {
	ID            string
	Name          *string
	Slug          *string
	Duration      *int
	MaxGroupSize  *int
	Difficulty    *string
	Price         *float64
	PriceDiscount *float64
	Summary       *string
	Description   *string
	ImageCover    *string
	Images        []string
	StartDates    []time.Time
	SecretTour    *bool
	StartLocation *tour.Location
	Locations     []tour.Location
}

// SetRatingsOptions stores the review aggregate of a tour.
type SetRatingsOptions struct {
	TourID   string
	Quantity int
	Average  float64
}

// StatsOptions bounds the statistics to well rated tours.
type StatsOptions struct {
	MinRating float64
}

// MonthlyPlanOptions selects the calendar year.
type MonthlyPlanOptions struct {
	Year int
}

// WithinOptions describes a sphere around a point. Radius is in radians.
type WithinOptions struct {
	Lat    float64
	Lng    float64
	Radius float64
}

// DistancesOptions measures from a point. Multiplier converts metres to the
// requested unit.
type DistancesOptions struct {
	Lat        float64
	Lng        float64
	Multiplier float64
}
