package usecase

import (
	"context"
	"errors"
	"fmt"

	"tour-booking-api/internal/model"
	"tour-booking-api/internal/user"
	repo "tour-booking-api/internal/user/repository"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/photo"
)

// PhotoSize is the stored size of profile photos.
var PhotoSize = photo.Size{Width: 500, Height: 500}

// selfEditable are the body fields a user may change on their own account.
var selfEditable = []string{"name", "email"}

// UpdateMe changes the name, email or photo of the caller. Any other body
// field is ignored; password fields are refused.
func (uc *implUseCase) UpdateMe(ctx context.Context, sc model.Scope, input user.UpdateMeInput) (user.DetailOutput, error) {
	if _, ok := input.Body["password"]; ok {
		return user.DetailOutput{}, user.ErrPasswordRoute
	}
	if _, ok := input.Body["passwordConfirm"]; ok {
		return user.DetailOutput{}, user.ErrPasswordRoute
	}

	opt := repo.UpdateUserOptions{ID: sc.UserID}
	for k, v := range apiquery.FilterAllowed(input.Body, selfEditable...) {
		s, ok := v.(string)
		if !ok {
			return user.DetailOutput{}, user.ErrInvalidPayload
		}
		switch k {
		case "name":
			if err := validateName(s); err != nil {
				return user.DetailOutput{}, err
			}
			opt.Name = &s
		case "email":
			addr := normalizeEmail(s)
			if err := validateEmail(addr); err != nil {
				return user.DetailOutput{}, err
			}
			opt.Email = &addr
		}
	}

	if input.Photo != nil {
		name := fmt.Sprintf("user-%s-%d", sc.UserID, uc.clock().UnixMilli())
		filename, err := uc.images.Save(input.Photo, PhotoSize, name)
		if err != nil {
			if errors.Is(err, photo.ErrNotImage) {
				return user.DetailOutput{}, user.ErrNotImage
			}
			uc.l.Errorf(ctx, "uc.UpdateMe Save: %v", err)
			return user.DetailOutput{}, err
		}
		opt.Photo = &filename
	}

	return uc.update(ctx, opt)
}

// DeactivateMe hides the account of the caller from every read.
func (uc *implUseCase) DeactivateMe(ctx context.Context, sc model.Scope) error {
	inactive := false
	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{ID: sc.UserID, Active: &inactive})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeactivateMe UpdateUser: %v", err)
		return domainErr(err)
	}
	if u.ID == "" {
		return user.ErrUserNotFound
	}
	return nil
}
