package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "tour-booking-api/pkg/errors"
	"tour-booking-api/pkg/response"
)

// RateLimit allows each client IP the configured number of requests per
// window and reports the budget in X-RateLimit-* headers.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		allowed := m.limiter.Allow(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(m.limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(m.limiter.Remaining(key)))

		if !allowed {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s over limit", key)
			response.Error(c, pkgErrors.ErrTooManyReq, m.verbose)
			return
		}
		c.Next()
	}
}

// SecurityHeaders sets the usual hardening headers on every response.
func (m Middleware) SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("X-DNS-Prefetch-Control", "off")
		h.Set("X-Download-Options", "noopen")
		h.Set("X-XSS-Protection", "0")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Strict-Transport-Security", "max-age=15552000; includeSubDomains")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		h.Set("Cross-Origin-Resource-Policy", "same-origin")
		h.Del("X-Powered-By")
		c.Next()
	}
}

// BodyLimit caps JSON and form bodies at limit bytes. Multipart uploads are
// bounded by the upload handlers.
func (m Middleware) BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil && !strings.HasPrefix(c.ContentType(), "multipart/") {
			if c.Request.ContentLength > limit {
				response.Error(c, pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large"), m.verbose)
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

// ParameterPollution keeps only the last value of repeated query keys, except
// for whitelisted keys which may legitimately repeat.
func (m Middleware) ParameterPollution(whitelist ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(whitelist))
	for _, k := range whitelist {
		allowed[k] = struct{}{}
	}

	return func(c *gin.Context) {
		values := c.Request.URL.Query()
		polluted := false
		for k, vs := range values {
			if len(vs) < 2 {
				continue
			}
			if _, ok := allowed[k]; ok {
				continue
			}
			values[k] = vs[len(vs)-1:]
			polluted = true
		}
		if polluted {
			c.Request.URL.RawQuery = values.Encode()
		}
		c.Next()
	}
}

