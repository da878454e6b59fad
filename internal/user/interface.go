package user

import (
	"context"

	"tour-booking-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	AuthUseCase

	// Administration
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (DetailOutput, error)
	Delete(ctx context.Context, id string) error

	// Self service
	UpdateMe(ctx context.Context, sc model.Scope, input UpdateMeInput) (DetailOutput, error)
	DeactivateMe(ctx context.Context, sc model.Scope) error
}

// AuthUseCase issues and checks credentials.
type AuthUseCase interface {
	SignUp(ctx context.Context, input SignUpInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Authenticate(ctx context.Context, token string) (model.Scope, error)
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) (AuthOutput, error)
	UpdatePassword(ctx context.Context, sc model.Scope, input UpdatePasswordInput) (AuthOutput, error)
}
