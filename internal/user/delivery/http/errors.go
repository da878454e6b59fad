package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/user"
	"tour-booking-api/pkg/apiquery"
	pkgErrors "tour-booking-api/pkg/errors"
	"tour-booking-api/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors pass through and become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "No user found with that ID")
	case errors.Is(err, apiquery.ErrPageNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "This page does not exist")
	case errors.Is(err, user.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid user id")
	case errors.Is(err, user.ErrDuplicateEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Duplicate field value: email. Please use another value!")
	case errors.Is(err, user.ErrInvalidName),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrPasswordTooShort),
		errors.Is(err, user.ErrPasswordMismatch):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid input data. "+capitalize(err.Error()))
	case errors.Is(err, user.ErrMissingLogin):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Please provide email and password")
	case errors.Is(err, user.ErrIncorrectLogin):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, user.ErrWrongPassword):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Your current password is wrong")
	case errors.Is(err, user.ErrPasswordRoute):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "This route is not for password updates. Please use /updateMyPassword.")
	case errors.Is(err, user.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid input data")
	case errors.Is(err, user.ErrNotImage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Not an image! Please upload only images.")
	case errors.Is(err, user.ErrNoUserWithEmail):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "There is no user with that email address")
	case errors.Is(err, user.ErrResetToken):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Token is invalid or has expired")
	case errors.Is(err, user.ErrSendEmail):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "There was an error sending the email. Try again later!")
	default:
		return err
	}
}

func badRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid input data. "+err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

// reportError maps err, logs it and writes the response. Errors that end up
// as 4xx are the client's doing and are logged as warnings.
func (h *handler) reportError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)
	if httpErr, ok := pkgErrors.AsHTTPError(mapped); ok && httpErr.IsClientError() {
		h.l.Warnf(ctx, "%s: %v", op, err)
	} else {
		h.l.Errorf(ctx, "%s: %v", op, err)
	}
	response.Error(c, mapped, h.cfg.Verbose)
}
