package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/tour"
	"tour-booking-api/pkg/apiquery"
	pkgErrors "tour-booking-api/pkg/errors"
)

const (
	maxCoverFiles = 1
	maxImageFiles = 3
)

var errTooManyFiles = pkgErrors.NewHTTPError(http.StatusBadRequest, "Too many files uploaded")

// processListReq copies the raw query string; the builder interprets it.
func (h *handler) processListReq(c *gin.Context) tour.ListInput {
	return tour.ListInput{Query: apiquery.RawQuery(c.Request.URL.Query())}
}

// processCreateReq binds and validates the create tour request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

// processUpdateReq binds the partial update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	req.ID = c.Param("id")
	return req, nil
}

func (h *handler) processYearReq(c *gin.Context) (int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, tour.ErrInvalidYear
	}
	return year, nil
}

func (h *handler) processWithinReq(c *gin.Context) (withinReq, error) {
	var req withinReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, tour.ErrInvalidDistance
	}
	return req, nil
}

func (h *handler) processDistancesReq(c *gin.Context) (distancesReq, error) {
	var req distancesReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, tour.ErrInvalidCoordinates
	}
	return req, nil
}

// processUploadReq opens the imageCover and images parts. The returned
// closers must be closed by the caller once the images are stored.
func (h *handler) processUploadReq(c *gin.Context) (tour.UploadImagesInput, []io.Closer, error) {
	in := tour.UploadImagesInput{ID: c.Param("id")}
	if h.cfg.UploadLimit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.UploadLimit)
	}

	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return in, nil, tour.ErrNoImages
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return in, nil, pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large")
		}
		return in, nil, badRequest(err)
	}

	covers, images := form.File["imageCover"], form.File["images"]
	if len(covers) > maxCoverFiles || len(images) > maxImageFiles {
		return in, nil, errTooManyFiles
	}

	var closers []io.Closer
	open := func(fh *multipart.FileHeader) (io.Reader, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		closers = append(closers, f)
		return f, nil
	}

	if len(covers) == 1 {
		if in.Cover, err = open(covers[0]); err != nil {
			closeAll(closers)
			return in, nil, err
		}
	}
	for _, fh := range images {
		r, err := open(fh)
		if err != nil {
			closeAll(closers)
			return in, nil, err
		}
		in.Images = append(in.Images, r)
	}
	return in, closers, nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}
