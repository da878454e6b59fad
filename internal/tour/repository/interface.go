package repository

import (
	"context"

	"tour-booking-api/internal/tour"
)

// Repository is the composed interface for the tour data store.
type Repository interface {
	TourRepository
	StatsRepository
	GeoRepository
}

// TourRepository defines data access for the Tour entity. Secret tours are
// invisible to every read.
type TourRepository interface {
	CreateTour(ctx context.Context, opt CreateTourOptions) (tour.Tour, error)
	GetOneTour(ctx context.Context, opt GetOneTourOptions) (tour.Tour, error)
	ListTours(ctx context.Context, opt ListToursOptions) ([]tour.Tour, error)
	UpdateTour(ctx context.Context, opt UpdateTourOptions) (tour.Tour, error)
	DeleteTour(ctx context.Context, id string) (bool, error)
	SetRatings(ctx context.Context, opt SetRatingsOptions) error
	EnsureIndexes(ctx context.Context) error
}

// StatsRepository runs the reporting aggregations.
type StatsRepository interface {
	Stats(ctx context.Context, opt StatsOptions) ([]tour.Stat, error)
	MonthlyPlan(ctx context.Context, opt MonthlyPlanOptions) ([]tour.MonthPlan, error)
}

// GeoRepository runs the geospatial queries on startLocation.
type GeoRepository interface {
	ToursWithin(ctx context.Context, opt WithinOptions) ([]tour.Tour, error)
	Distances(ctx context.Context, opt DistancesOptions) ([]tour.Distance, error)
}
