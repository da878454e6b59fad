package http

import (
	"github.com/gin-gonic/gin"

	"tour-booking-api/pkg/response"
)

// List godoc
// @Summary     List tours
// @Description Filters with any field (price[gte]=500, difficulty=easy), sorts with sort=-price,ratingsAverage, projects with fields=name,price and paginates with page and limit.
// @Tags        Tours
// @Produce     json
// @Param       sort   query string false "Sort fields, comma separated, - for descending"
// @Param       fields query string false "Fields to include (or -field to exclude)"
// @Param       page   query int    false "Page number (default: 1)"
// @Param       limit  query int    false "Page size (default: 100)"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Page does not exist"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tours [GET]
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
		response.InternalError(c, err, h.cfg.Verbose)
		return
	}
	response.List(c, "tours", len(items), items)
}

// TopCheap godoc
// @Summary     Top 5 cheap tours
// @Description Best rated tours first, then cheapest, limited to five.
// @Tags        Tours
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/tours/top-5-cheap [GET]
func (h *handler) TopCheap(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.TopCheap(ctx, h.processListReq(c))
	if err != nil {
		h.reportError(c, "uc.TopCheap", err)
		return
	}

	items, err := h.newListResp(output)
	if err != nil {
		h.l.Errorf(ctx, "newListResp: %v", err)
		response.InternalError(c, err, h.cfg.Verbose)
		return
	}
	response.List(c, "tours", len(items), items)
}

// Detail godoc
// @Summary     Get tour
// @Tags        Tours
// @Produce     json
// @Param       id path string true "Tour ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "No tour found with that ID"
// @Router      /api/v1/tours/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.reportError(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output.Tour))
}

// Create godoc
// @Summary     Create tour
// @Tags        Tours
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body createReq true "Tour data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid input data"
// @Failure     401 {object} response.Resp "Not logged in"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/tours [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, h.cfg.Verbose)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.Create", err)
		return
	}

	response.Created(c, h.newDetailResp(output.Tour))
}

// Update godoc
// @Summary     Update tour
// @Tags        Tours
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string    true "Tour ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid input data"
// @Failure     404 {object} response.Resp "No tour found with that ID"
// @Router      /api/v1/tours/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, h.cfg.Verbose)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.Update", err)
		return
	}

	response.OK(c, h.newDetailResp(output.Tour))
}

// Delete godoc
// @Summary     Delete tour
// @Tags        Tours
// @Security    Bearer
// @Param       id path string true "Tour ID"
// @Success     204
// @Failure     404 {object} response.Resp "No tour found with that ID"
// @Router      /api/v1/tours/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.reportError(c, "uc.Delete", err)
		return
	}

	response.NoContent(c)
}

// UploadImages godoc
// @Summary     Upload tour images
// @Description Resizes the cover and up to three gallery images to 2000x1333 JPEG.
// @Tags        Tours
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       id         path     string true  "Tour ID"
// @Param       imageCover formData file   false "Cover image"
// @Param       images     formData file   false "Gallery images (max 3)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Not an image"
// @Router      /api/v1/tours/{id}/images [PATCH]
func (h *handler) UploadImages(c *gin.Context) {
	ctx := c.Request.Context()

	input, closers, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.cfg.Verbose)
		return
	}
	defer closeAll(closers)

	output, err := h.uc.UploadImages(ctx, input)
	if err != nil {
		h.reportError(c, "uc.UploadImages", err)
		return
	}

	response.OK(c, h.newDetailResp(output.Tour))
}

// Stats godoc
// @Summary     Tour statistics
// @Description Groups tours rated 4.5 or better by difficulty.
// @Tags        Tours
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/tours/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.reportError(c, "uc.Stats", err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// MonthlyPlan godoc
// @Summary     Monthly plan
// @Description Tour starts per month of the given year, busiest month first.
// @Tags        Tours
// @Produce     json
// @Security    Bearer
// @Param       year path int true "Year"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid year"
// @Router      /api/v1/tours/monthly-plan/{year} [GET]
func (h *handler) MonthlyPlan(c *gin.Context) {
	ctx := c.Request.Context()

	year, err := h.processYearReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.cfg.Verbose)
		return
	}

	output, err := h.uc.MonthlyPlan(ctx, year)
	if err != nil {
		h.reportError(c, "uc.MonthlyPlan", err)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// Within godoc
// @Summary     Tours within a radius
// @Tags        Tours
// @Produce     json
// @Param       distance path number true "Radius"
// @Param       latlng   path string true "Center as lat,lng"
// @Param       unit     path string true "mi or km"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid coordinates"
// @Router      /api/v1/tours/within/{distance}/center/{latlng}/unit/{unit} [GET]
func (h *handler) Within(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWithinReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.cfg.Verbose)
		return
	}

	output, err := h.uc.Within(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.Within", err)
		return
	}

	response.List(c, "tours", len(output.Tours), newTourResps(output.Tours))
}

// Distances godoc
// @Summary     Distances to every tour
// @Tags        Tours
// @Produce     json
// @Param       latlng path string true "Origin as lat,lng"
// @Param       unit   path string true "mi or km"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid coordinates"
// @Router      /api/v1/tours/distances/{latlng}/unit/{unit} [GET]
func (h *handler) Distances(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDistancesReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.cfg.Verbose)
		return
	}

	output, err := h.uc.Distances(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.Distances", err)
		return
	}

	response.OK(c, h.newDistancesResp(output))
}
