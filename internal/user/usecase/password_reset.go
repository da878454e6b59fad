package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking-api/internal/user"
	repo "tour-booking-api/internal/user/repository"
	"tour-booking-api/pkg/email"
	"tour-booking-api/pkg/hash"
)

const (
	resetTokenBytes = 32
	resetTokenTTL   = 10 * time.Minute
)

// ForgotPassword stores the digest of a fresh reset token and mails the
// plain token to the user. When mailing fails the token is withdrawn.
func (uc *implUseCase) ForgotPassword(ctx context.Context, input user.ForgotPasswordInput) error {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: normalizeEmail(input.Email)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ForgotPassword GetOneUser: %v", err)
		return err
	}
	if u.ID == "" {
		return user.ErrNoUserWithEmail
	}

	plain, digest, err := hash.NewResetToken(resetTokenBytes)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ForgotPassword NewResetToken: %v", err)
		return err
	}
	expires := uc.clock().UTC().Add(resetTokenTTL)

	if _, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:                   u.ID,
		PasswordResetToken:   &digest,
		PasswordResetExpires: &expires,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.ForgotPassword UpdateUser: %v", err)
		return err
	}

	resetURL := input.ResetURL + "/" + plain
	err = uc.mailer.Send(ctx, email.Message{
		To:      u.Email,
		Subject: "Your password reset token (valid for 10 min)",
		Text: fmt.Sprintf("Forgot your password? Submit a PATCH request with your new password and passwordConfirm to: %s.\n"+
			"If you didn't forget your password, please ignore this email!", resetURL),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ForgotPassword Send: %v", err)
		if _, clearErr := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{ID: u.ID, ClearReset: true}); clearErr != nil {
			uc.l.Errorf(ctx, "uc.ForgotPassword clear reset: %v", clearErr)
		}
		return user.ErrSendEmail
	}
	return nil
}

// ResetPassword sets a new password for the holder of an unexpired reset
// token and logs the user in.
func (uc *implUseCase) ResetPassword(ctx context.Context, input user.ResetPasswordInput) (user.AuthOutput, error) {
	if input.Token == "" {
		return user.AuthOutput{}, user.ErrResetToken
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{
		ResetToken: hash.SHA256(input.Token),
		ResetAfter: uc.clock().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ResetPassword GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrResetToken
	}

	u, err = uc.setPassword(ctx, u.ID, input.Password, input.PasswordConfirm, true)
	if err != nil {
		return user.AuthOutput{}, err
	}
	return uc.issue(ctx, u)
}
