package repository

import (
	"context"

	"tour-booking-api/internal/user"
)

// Repository is the composed interface for the user data store.
type Repository interface {
	UserRepository
}

// UserRepository defines data access for the User entity. Deactivated users
// are invisible to every read.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]user.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (user.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}
