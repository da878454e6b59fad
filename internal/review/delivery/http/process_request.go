package http

import (
	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/review"
	"tour-booking-api/pkg/apiquery"
)

// tourParam is the tour id segment of the nested /tours/:id/reviews routes.
const tourParam = "id"

func (h *handler) processListReq(c *gin.Context) review.ListInput {
	return review.ListInput{
		Query:  apiquery.RawQuery(c.Request.URL.Query()),
		TourID: c.Param(tourParam),
	}
}

func (h *handler) processCreateReq(c *gin.Context) (review.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return review.CreateInput{}, badRequest(err)
	}
	return req.toInput(c.Param(tourParam)), nil
}

func (h *handler) processUpdateReq(c *gin.Context) (review.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return review.UpdateInput{}, badRequest(err)
	}
	return req.toInput(c.Param("reviewID")), nil
}
