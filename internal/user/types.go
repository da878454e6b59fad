package user

import (
	"io"
	"time"

	"tour-booking-api/internal/model"
	"tour-booking-api/pkg/apiquery"
)

// DefaultPhoto is assigned to users who never uploaded one.
const DefaultPhoto = "default.jpg"

// User is an account. Password holds the bcrypt hash and never leaves the
// service.
type User struct {
	ID                   string
	Name                 string
	Email                string
	Photo                string
	Role                 model.Role
	Password             string
	PasswordChangedAt    time.Time
	PasswordResetToken   string
	PasswordResetExpires time.Time
	Active               bool
}

// ChangedPasswordAfter reports whether the password changed after t. Both
// sides are compared in whole seconds, the resolution of a token's issue time.
func (u User) ChangedPasswordAfter(t time.Time) bool {
	if u.PasswordChangedAt.IsZero() {
		return false
	}
	return u.PasswordChangedAt.Unix() > t.Unix()
}

// Scope returns the request scope of u.
func (u User) Scope() model.Scope {
	return model.Scope{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// --- UseCase Inputs ---

type SignUpInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

type LoginInput struct {
	Email    string
	Password string
}

type ForgotPasswordInput struct {
	Email string
	// ResetURL is the reset endpoint; the plain token is appended to it.
	ResetURL string
}

type ResetPasswordInput struct {
	Token           string
	Password        string
	PasswordConfirm string
}

type UpdatePasswordInput struct {
	PasswordCurrent string
	Password        string
	PasswordConfirm string
}

type ListInput struct {
	Query apiquery.RawQuery
}

type CreateInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	Role            model.Role
}

// UpdateInput is an admin partial update. Passwords cannot be set here.
type UpdateInput struct {
	ID    string
	Name  *string
	Email *string
	Role  *model.Role
	Photo *string
}

// UpdateMeInput carries the raw body of a self update and an optional photo.
type UpdateMeInput struct {
	Body  map[string]any
	Photo io.Reader
}

// --- UseCase Outputs ---

type AuthOutput struct {
	User  User
	Token string
}

type ListOutput struct {
	Users []User
	Query apiquery.Query
}

type DetailOutput struct {
	User User
}
