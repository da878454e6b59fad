package usecase

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"tour-booking-api/internal/model"
	"tour-booking-api/internal/user"
	repo "tour-booking-api/internal/user/repository"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

var validate = validator.New()

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return user.ErrInvalidName
	}
	return nil
}

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return user.ErrInvalidEmail
	}
	return nil
}

func validatePassword(password, confirm string) error {
	if len(password) < MinPasswordLength {
		return user.ErrPasswordTooShort
	}
	if password != confirm {
		return user.ErrPasswordMismatch
	}
	return nil
}

func validateRole(role model.Role) error {
	if !role.IsValid() {
		return user.ErrInvalidRole
	}
	return nil
}

// domainErr translates repository errors callers are expected to handle.
func domainErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrInvalidID):
		return user.ErrInvalidID
	case errors.Is(err, repo.ErrDuplicate):
		return user.ErrDuplicateEmail
	default:
		return err
	}
}
