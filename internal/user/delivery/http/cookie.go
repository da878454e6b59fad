package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	jwtCookie      = "jwt"
	loggedOutValue = "loggedout"
	logoutTTL      = 10 * time.Second
)

func (h *handler) setTokenCookie(c *gin.Context, token string, ttl time.Duration) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     jwtCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
