package usecase

import (
	"errors"

	"tour-booking-api/internal/tour"
	repo "tour-booking-api/internal/tour/repository"
)

func validateTour(difficulty string, price, discount float64) error {
	switch difficulty {
	case tour.DifficultyEasy, tour.DifficultyMedium, tour.DifficultyDifficult:
	default:
		return tour.ErrInvalidDifficulty
	}
	if discount != 0 && discount >= price {
		return tour.ErrPriceDiscount
	}
	return nil
}

// coalesce returns the new value when provided, the existing one otherwise.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// domainErr translates repository errors callers are expected to handle.
func domainErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrInvalidID):
		return tour.ErrInvalidID
	case errors.Is(err, repo.ErrDuplicate):
		return tour.ErrDuplicateName
	default:
		return err
	}
}
