package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/review"
	"tour-booking-api/pkg/apiquery"
	pkgErrors "tour-booking-api/pkg/errors"
	"tour-booking-api/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, review.ErrReviewNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "No review found with that ID")
	case errors.Is(err, review.ErrTourNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "No tour found with that ID")
	case errors.Is(err, apiquery.ErrPageNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "This page does not exist")
	case errors.Is(err, review.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid review id")
	case errors.Is(err, review.ErrEmptyReview):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid input data. Review can not be empty!")
	case errors.Is(err, review.ErrInvalidRating):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid input data. Rating must be between 1.0 and 5.0")
	case errors.Is(err, review.ErrAlreadyReviewed):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Duplicate field value: you have already reviewed this tour")
	case errors.Is(err, review.ErrNotAuthor):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "You can only change your own reviews")
	default:
		return err
	}
}

func badRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid input data. "+err.Error())
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
	response.Error(c, mapped, h.verbose)
}
