package http

import (
	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/middleware"
	"tour-booking-api/pkg/response"
)

// List godoc
// @Summary     List reviews
// @Description Every review, or the reviews of one tour on the nested route. Accepts the same filter, sort, fields and page parameters as tours.
// @Tags        Reviews
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/reviews [GET]
// @Router      /api/v1/tours/{id}/reviews [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, h.processListReq(c))
	if err != nil {
		h.reportError(c, "uc.List", err)
		return
	}

	items, err := h.newListResp(output)
	if err != nil {
		h.l.Errorf(ctx, "newListResp: %v", err)
		response.InternalError(c, err, h.verbose)
		return
	}
	response.List(c, "reviews", len(items), items)
}

// Detail godoc
// @Summary     Get review
// @Tags        Reviews
// @Produce     json
// @Param       reviewID path string true "Review ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "No review found with that ID"
// @Router      /api/v1/reviews/{reviewID} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("reviewID"))
	if err != nil {
		h.reportError(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output.Review))
}

// Create godoc
// @Summary     Review a tour
// @Tags        Reviews
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body createReq true "Review"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid input data"
// @Router      /api/v1/reviews [POST]
// @Router      /api/v1/tours/{id}/reviews [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, h.verbose)
		return
	}

	output, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.reportError(c, "uc.Create", err)
		return
	}

	response.Created(c, h.newDetailResp(output.Review))
}

// Update godoc
// @Summary     Update review
// @Tags        Reviews
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       reviewID path string    true "Review ID"
// @Param       body     body updateReq true "Fields to change"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Not the author"
// @Router      /api/v1/reviews/{reviewID} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, h.verbose)
		return
	}

	output, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.reportError(c, "uc.Update", err)
		return
	}

	response.OK(c, h.newDetailResp(output.Review))
}

// Delete godoc
// @Summary     Delete review
// @Tags        Reviews
// @Security    Bearer
// @Param       reviewID path string true "Review ID"
// @Success     204
// @Router      /api/v1/reviews/{reviewID} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	if err := h.uc.Delete(ctx, sc, c.Param("reviewID")); err != nil {
		h.reportError(c, "uc.Delete", err)
		return
	}

	response.NoContent(c)
}
