package usecase

import (
	"context"
	"math"
	"strconv"
	"strings"

	"tour-booking-api/internal/tour"
	repo "tour-booking-api/internal/tour/repository"
)

// Supported distance units.
const (
	UnitMiles      = "mi"
	UnitKilometers = "km"
)

// Earth radius, for converting a distance into radians.
const (
	earthRadiusMi = 3963.2
	earthRadiusKm = 6378.1
)

// Metres to unit, for $geoNear distances.
const (
	metresToMi = 0.000621371
	metresToKm = 0.001
)

// Within lists the tours starting within distance of a point.
func (uc *implUseCase) Within(ctx context.Context, input tour.WithinInput) (tour.WithinOutput, error) {
	lat, lng, err := parseLatLng(input.LatLng)
	if err != nil {
		return tour.WithinOutput{}, err
	}
	if input.Distance <= 0 || math.IsInf(input.Distance, 0) || math.IsNaN(input.Distance) {
		return tour.WithinOutput{}, tour.ErrInvalidDistance
	}

	var radius float64
	switch input.Unit {
	case UnitMiles:
		radius = input.Distance / earthRadiusMi
	case UnitKilometers:
		radius = input.Distance / earthRadiusKm
	default:
		return tour.WithinOutput{}, tour.ErrInvalidCoordinates
	}

	tours, err := uc.repo.ToursWithin(ctx, repo.WithinOptions{Lat: lat, Lng: lng, Radius: radius})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Within ToursWithin: %v", err)
		return tour.WithinOutput{}, err
	}
	return tour.WithinOutput{Tours: tours}, nil
}

// Distances measures every tour start from a point, nearest first.
func (uc *implUseCase) Distances(ctx context.Context, input tour.DistancesInput) (tour.DistancesOutput, error) {
	lat, lng, err := parseLatLng(input.LatLng)
	if err != nil {
		return tour.DistancesOutput{}, err
	}

	var multiplier float64
	switch input.Unit {
	case UnitMiles:
		multiplier = metresToMi
	case UnitKilometers:
		multiplier = metresToKm
	default:
		return tour.DistancesOutput{}, tour.ErrInvalidCoordinates
	}

	distances, err := uc.repo.Distances(ctx, repo.DistancesOptions{Lat: lat, Lng: lng, Multiplier: multiplier})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Distances Distances: %v", err)
		return tour.DistancesOutput{}, err
	}
	return tour.DistancesOutput{Distances: distances}, nil
}

// parseLatLng reads "lat,lng" and checks both are on the globe.
func parseLatLng(s string) (lat, lng float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, tour.ErrInvalidCoordinates
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLng != nil {
		return 0, 0, tour.ErrInvalidCoordinates
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, tour.ErrInvalidCoordinates
	}
	return lat, lng, nil
}
