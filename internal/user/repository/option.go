package repository

import (
	"time"

	"tour-booking-api/internal/model"
	"tour-booking-api/pkg/apiquery"
)

// FilterCasts types list filter values for the stored user fields.
var FilterCasts = apiquery.Casts{
	"_id":                  apiquery.ObjectID,
	"passwordChangedAt":    apiquery.Date,
	"passwordResetExpires": apiquery.Date,
}

// CreateUserOptions holds a new account. Password is already hashed.
type CreateUserOptions struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// GetOneUserOptions filters a single active User. Non-empty fields are ANDed.
type GetOneUserOptions struct {
	ID    string
	Email string

	// ResetToken matches the stored digest; ResetAfter then requires the
	// reset window to end after it.
	ResetToken string
	ResetAfter time.Time

	// WithSecrets loads the password hash and reset fields.
	WithSecrets bool
}

// ListUsersOptions carries a built list query.
type ListUsersOptions struct {
	Query apiquery.Query
}

// UpdateUserOptions is a partial update; nil fields are not written.
// ClearReset unsets both reset fields.
type UpdateUserOptions struct {
	ID                   string
	Name                 *string
	Email                *string
	Role                 *model.Role
	Photo                *string
	Password             *string
	PasswordChangedAt    *time.Time
	PasswordResetToken   *string
	PasswordResetExpires *time.Time
	ClearReset           bool
	Active               *bool
}
