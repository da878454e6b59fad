package http

import (
	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/middleware"
	"tour-booking-api/internal/model"
)

// RegisterRoutes maps the user endpoints onto rg. Routes after the public
// auth block require a login; the administration block is admin only,
// except deletion which lead guides may also do.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	users := rg.Group("/users")
	{
		users.POST("/signup", h.SignUp)
		users.POST("/login", h.Login)
		users.GET("/logout", h.Logout)
		users.POST("/forgotPassword", h.ForgotPassword)
		users.PATCH("/resetPassword/:token", h.ResetPassword)
	}

	me := users.Group("", mw.Auth())
	{
		me.PATCH("/updateMyPassword", h.UpdatePassword)
		me.GET("/me", h.Me)
		me.PATCH("/updateMe", h.UpdateMe)
		me.DELETE("/deleteMe", h.DeleteMe)
		me.DELETE("/:id", mw.RestrictTo(model.RoleAdmin, model.RoleLeadGuide), h.Delete)
	}

	admin := me.Group("", mw.RestrictTo(model.RoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.GET("/:id", h.Detail)
		admin.PATCH("/:id", h.Update)
	}
}
