package usecase

import (
	"context"
	"errors"

	"tour-booking-api/internal/model"
	"tour-booking-api/internal/user"
	repo "tour-booking-api/internal/user/repository"
	"tour-booking-api/pkg/apiquery"
)

// List filters, sorts, projects and paginates the active users.
func (uc *implUseCase) List(ctx context.Context, input user.ListInput) (user.ListOutput, error) {
	q := apiquery.Build(nil, input.Query, apiquery.WithCasts(repo.FilterCasts))

	users, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{Query: q})
	if err != nil {
		if !errors.Is(err, apiquery.ErrPageNotFound) {
			uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		}
		return user.ListOutput{}, err
	}
	return user.ListOutput{Users: users, Query: q}, nil
}

// Detail retrieves a single active User by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (user.DetailOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailOutput{}, domainErr(err)
	}
	if u.ID == "" {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	return user.DetailOutput{User: u}, nil
}

// Create adds an account with any role.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (user.DetailOutput, error) {
	role := input.Role
	if role == "" {
		role = model.RoleUser
	}
	u, err := uc.createUser(ctx, input.Name, input.Email, input.Password, input.PasswordConfirm, role)
	if err != nil {
		return user.DetailOutput{}, err
	}
	return user.DetailOutput{User: u}, nil
}

// Update changes the profile or role of a User. Passwords are not touched.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) (user.DetailOutput, error) {
	opt := repo.UpdateUserOptions{
		ID:    input.ID,
		Name:  input.Name,
		Role:  input.Role,
		Photo: input.Photo,
	}
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return user.DetailOutput{}, err
		}
	}
	if input.Email != nil {
		addr := normalizeEmail(*input.Email)
		if err := validateEmail(addr); err != nil {
			return user.DetailOutput{}, err
		}
		opt.Email = &addr
	}
	if input.Role != nil {
		if err := validateRole(*input.Role); err != nil {
			return user.DetailOutput{}, err
		}
	}

	return uc.update(ctx, opt)
}

// Delete removes a User by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.DeleteUser(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return domainErr(err)
	}
	if !deleted {
		return user.ErrUserNotFound
	}
	return nil
}

func (uc *implUseCase) update(ctx context.Context, opt repo.UpdateUserOptions) (user.DetailOutput, error) {
	u, err := uc.repo.UpdateUser(ctx, opt)
	if err != nil {
		if !errors.Is(err, repo.ErrDuplicate) {
			uc.l.Errorf(ctx, "uc.update UpdateUser: %v", err)
		}
		return user.DetailOutput{}, domainErr(err)
	}
	if u.ID == "" {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	return user.DetailOutput{User: u}, nil
}
