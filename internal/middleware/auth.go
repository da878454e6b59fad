package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/model"
	"tour-booking-api/internal/user"
	"tour-booking-api/pkg/response"
)

const (
	scopeKey  = "scope"
	jwtCookie = "jwt"
)

// Auth requires a valid bearer token (Authorization header or jwt cookie) and
// stores the caller's scope in the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c, "You are not logged in! Please log in to get access.")
			return
		}

		sc, err := m.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			m.rejectToken(c, err)
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

// RestrictTo lets through callers holding one of roles. Admins always pass.
// Must run after Auth.
func (m Middleware) RestrictTo(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c, "You are not logged in! Please log in to get access.")
			return
		}
		if !sc.Allowed(roles...) {
			response.Forbidden(c, "Operation not permitted")
			return
		}
		c.Next()
	}
}

func (m Middleware) rejectToken(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrNotLoggedIn):
		response.Unauthorized(c, "You are not logged in! Please log in to get access.")
	case errors.Is(err, user.ErrTokenExpired):
		response.Unauthorized(c, "Your token has expired! Please log in again.")
	case errors.Is(err, user.ErrTokenInvalid):
		response.Unauthorized(c, "Invalid token. Please log in again!")
	case errors.Is(err, user.ErrUserGone):
		response.Unauthorized(c, "The user belonging to this token does no longer exist.")
	case errors.Is(err, user.ErrPasswordChanged):
		response.Unauthorized(c, "User recently changed password! Please log in again.")
	default:
		m.l.Errorf(c.Request.Context(), "middleware.Auth: %v", err)
		response.InternalError(c, err, m.verbose)
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(jwtCookie); err == nil && cookie != "loggedout" {
		return cookie
	}
	return ""
}

// SetScope stores the caller's scope in the context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

