package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an operational error: its message is safe to show to clients
// and Code is the HTTP status it maps to.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// IsClientError reports whether the error belongs to the 4xx class.
func (e *HTTPError) IsClientError() bool {
	return e.Code >= http.StatusBadRequest && e.Code < http.StatusInternalServerError
}

// AsHTTPError unwraps err into an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// Common operational errors.
var (
	ErrBadRequest   = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized = NewHTTPError(http.StatusUnauthorized, "You are not logged in")
	ErrForbidden    = NewHTTPError(http.StatusForbidden, "Operation not permitted")
	ErrNotFound     = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyReq   = NewHTTPError(http.StatusTooManyRequests, "Too many requests from this IP, please try again later")
)
