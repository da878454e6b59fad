package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "tour-booking-api/pkg/errors"
)

// NewOKResp returns a success body wrapping data.
func NewOKResp(data any) Resp {
	return Resp{
		Status: StatusSuccess,
		Data:   data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// List sends 200 JSON with the result count and the items keyed by name.
func List(c *gin.Context, name string, results int, items any) {
	resp := NewOKResp(gin.H{name: items})
	resp.Results = &results
	c.JSON(http.StatusOK, resp)
}

// WithToken sends code with a signed token next to the data.
func WithToken(c *gin.Context, code int, token string, data any) {
	resp := NewOKResp(data)
	resp.Token = token
	c.JSON(code, resp)
}

// NoContent sends 204. Gin drops the body for 204 so only the status is written.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends the error response for err. Operational errors (*errors.HTTPError)
// keep their status and message; anything else is a 500 whose message is only
// exposed when verbose is true.
func Error(c *gin.Context, err error, verbose bool) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		c.AbortWithStatusJSON(httpErr.Code, Resp{
			Status:  statusFor(httpErr.Code),
			Message: httpErr.Message,
		})
		return
	}
	InternalError(c, err, verbose)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error, verbose bool) {
	resp := Resp{
		Status:  StatusError,
		Message: DefaultErrorMessage,
	}
	if verbose && err != nil {
		resp.Message = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		Status:  StatusFail,
		Message: message,
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		Status:  StatusFail,
		Message: message,
	})
}

// NotFound sends 404 response.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Resp{
		Status:  StatusFail,
		Message: message,
	})
}

func statusFor(code int) string {
	if code >= http.StatusInternalServerError {
		return StatusError
	}
	return StatusFail
}
