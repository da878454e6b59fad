package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/tour"
	"tour-booking-api/pkg/apiquery"
	pkgErrors "tour-booking-api/pkg/errors"
	"tour-booking-api/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors pass through and become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tour.ErrTourNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "No tour found with that ID")
	case errors.Is(err, apiquery.ErrPageNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "This page does not exist")
	case errors.Is(err, tour.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid tour id")
	case errors.Is(err, tour.ErrDuplicateName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Duplicate field value: name. Please use another value!")
	case errors.Is(err, tour.ErrPriceDiscount):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid input data. Discount price should be below regular price")
	case errors.Is(err, tour.ErrInvalidDifficulty):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid input data. Difficulty is either: easy, medium, difficult")
	case errors.Is(err, tour.ErrInvalidCoordinates):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Please provide latitude and longitude in the format lat,lng and unit mi or km.")
	case errors.Is(err, tour.ErrInvalidDistance):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Distance must be a positive number")
	case errors.Is(err, tour.ErrInvalidYear):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid year")
	case errors.Is(err, tour.ErrNoImages):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Please upload an imageCover or images")
	case errors.Is(err, tour.ErrNotImage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Not an image! Please upload only images.")
	default:
		return err
	}
}

// badRequest wraps a binding failure.
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
	response.Error(c, mapped, h.cfg.Verbose)
}
