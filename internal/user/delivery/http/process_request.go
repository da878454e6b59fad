package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/user"
	"tour-booking-api/pkg/apiquery"
	pkgErrors "tour-booking-api/pkg/errors"
)

const resetPath = "/api/v1/users/resetPassword"

func (h *handler) processListReq(c *gin.Context) user.ListInput {
	return user.ListInput{Query: apiquery.RawQuery(c.Request.URL.Query())}
}

// bindJSON binds the body into req. Missing fields are left for the use case
// to reject with its own messages.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return badRequest(err)
	}
	return nil
}

func (h *handler) processForgotPasswordReq(c *gin.Context) (user.ForgotPasswordInput, error) {
	var req forgotPasswordReq
	if err := bindJSON(c, &req); err != nil {
		return user.ForgotPasswordInput{}, err
	}
	return user.ForgotPasswordInput{Email: req.Email, ResetURL: h.resetURL(c)}, nil
}

// resetURL is the public reset endpoint the emailed token is appended to.
func (h *handler) resetURL(c *gin.Context) string {
	if h.cfg.PublicURL != "" {
		return strings.TrimRight(h.cfg.PublicURL, "/") + resetPath
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + resetPath
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

// processUpdateMeReq accepts either a JSON body or a multipart form with an
// optional photo part. The returned closer is nil when no photo was sent.
func (h *handler) processUpdateMeReq(c *gin.Context) (user.UpdateMeInput, io.Closer, error) {
	in := user.UpdateMeInput{Body: map[string]any{}}

	if !strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		if c.Request.ContentLength == 0 {
			return in, nil, nil
		}
		if err := c.ShouldBindJSON(&in.Body); err != nil {
			return in, nil, badRequest(err)
		}
		return in, nil, nil
	}

	if h.cfg.UploadLimit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.UploadLimit)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return in, nil, pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large")
		}
		return in, nil, badRequest(err)
	}
	for k, v := range form.Value {
		if len(v) > 0 {
			in.Body[k] = v[len(v)-1]
		}
	}

	files := form.File["photo"]
	if len(files) == 0 {
		return in, nil, nil
	}
	if len(files) > 1 {
		return in, nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "Too many files uploaded")
	}
	f, err := files[0].Open()
	if err != nil {
		return in, nil, err
	}
	in.Photo = f
	return in, f, nil
}
