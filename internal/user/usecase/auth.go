package usecase

import (
	"context"
	"errors"
	"time"

	"tour-booking-api/internal/model"
	"tour-booking-api/internal/user"
	repo "tour-booking-api/internal/user/repository"
	"tour-booking-api/pkg/email"
	"tour-booking-api/pkg/hash"
	"tour-booking-api/pkg/scope"
)

// SignUp creates a user account with the default role and logs it in.
func (uc *implUseCase) SignUp(ctx context.Context, input user.SignUpInput) (user.AuthOutput, error) {
	u, err := uc.createUser(ctx, input.Name, input.Email, input.Password, input.PasswordConfirm, model.RoleUser)
	if err != nil {
		return user.AuthOutput{}, err
	}

	if err := uc.mailer.Send(ctx, email.Message{
		To:      u.Email,
		Subject: "Welcome to the Natours Family!",
		Text:    "Welcome, " + u.Name + ", we're glad to have you!",
	}); err != nil {
		uc.l.Warnf(ctx, "uc.SignUp welcome mail: %v", err)
	}

	return uc.issue(ctx, u)
}

// Login checks the credentials and returns a fresh token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return user.AuthOutput{}, user.ErrMissingLogin
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: normalizeEmail(input.Email), WithSecrets: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" || !hash.ComparePassword(u.Password, input.Password) {
		return user.AuthOutput{}, user.ErrIncorrectLogin
	}

	return uc.issue(ctx, u)
}

// Authenticate resolves a bearer token to the scope of a live user whose
// password has not changed since the token was issued.
func (uc *implUseCase) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	if token == "" {
		return model.Scope{}, user.ErrNotLoggedIn
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, scope.ErrExpiredToken) {
			return model.Scope{}, user.ErrTokenExpired
		}
		return model.Scope{}, user.ErrTokenInvalid
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: claims.UserID})
	if err != nil {
		if errors.Is(err, repo.ErrInvalidID) {
			return model.Scope{}, user.ErrUserGone
		}
		uc.l.Errorf(ctx, "uc.Authenticate GetOneUser: %v", err)
		return model.Scope{}, err
	}
	if u.ID == "" {
		return model.Scope{}, user.ErrUserGone
	}
	if u.ChangedPasswordAfter(claims.IssuedAt) {
		return model.Scope{}, user.ErrPasswordChanged
	}

	return u.Scope(), nil
}

// UpdatePassword replaces the password of the caller after checking the
// current one, and returns a fresh token.
func (uc *implUseCase) UpdatePassword(ctx context.Context, sc model.Scope, input user.UpdatePasswordInput) (user.AuthOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID, WithSecrets: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdatePassword GetOneUser: %v", err)
		return user.AuthOutput{}, domainErr(err)
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrUserNotFound
	}
	if !hash.ComparePassword(u.Password, input.PasswordCurrent) {
		return user.AuthOutput{}, user.ErrWrongPassword
	}

	u, err = uc.setPassword(ctx, u.ID, input.Password, input.PasswordConfirm, false)
	if err != nil {
		return user.AuthOutput{}, err
	}
	return uc.issue(ctx, u)
}

// setPassword validates, hashes and stores a new password. The change time is
// backdated one second so a token issued right after stays valid.
func (uc *implUseCase) setPassword(ctx context.Context, id, password, confirm string, clearReset bool) (user.User, error) {
	if err := validatePassword(password, confirm); err != nil {
		return user.User{}, err
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.setPassword HashPassword: %v", err)
		return user.User{}, err
	}
	changedAt := uc.clock().UTC().Add(-time.Second)

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:                id,
		Password:          &hashed,
		PasswordChangedAt: &changedAt,
		ClearReset:        clearReset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.setPassword UpdateUser: %v", err)
		return user.User{}, domainErr(err)
	}
	if u.ID == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (uc *implUseCase) issue(ctx context.Context, u user.User) (user.AuthOutput, error) {
	token, err := uc.tokens.Sign(u.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue Sign: %v", err)
		return user.AuthOutput{}, err
	}
	u.Password = ""
	return user.AuthOutput{User: u, Token: token}, nil
}

func (uc *implUseCase) createUser(ctx context.Context, name, addr, password, confirm string, role model.Role) (user.User, error) {
	addr = normalizeEmail(addr)
	if err := validateName(name); err != nil {
		return user.User{}, err
	}
	if err := validateEmail(addr); err != nil {
		return user.User{}, err
	}
	if err := validateRole(role); err != nil {
		return user.User{}, err
	}
	if err := validatePassword(password, confirm); err != nil {
		return user.User{}, err
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.createUser HashPassword: %v", err)
		return user.User{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:     name,
		Email:    addr,
		Password: hashed,
		Role:     role,
	})
	if err != nil {
		if !errors.Is(err, repo.ErrDuplicate) {
			uc.l.Errorf(ctx, "uc.createUser CreateUser: %v", err)
		}
		return user.User{}, domainErr(err)
	}
	return u, nil
}
