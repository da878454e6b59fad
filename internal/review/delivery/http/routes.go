package http

import (
	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/middleware"
	"tour-booking-api/internal/model"
)

// RegisterRoutes maps /reviews onto rg. Reads are public; writes need a login
// and update/delete are further limited to the author (or an admin) by the
// use case.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.POST("", mw.Auth(), mw.RestrictTo(model.RoleUser), h.Create)
		reviews.GET("/:reviewID", h.Detail)
		reviews.PATCH("/:reviewID", mw.Auth(), mw.RestrictTo(model.RoleUser, model.RoleAdmin), h.Update)
		reviews.DELETE("/:reviewID", mw.Auth(), mw.RestrictTo(model.RoleUser, model.RoleAdmin), h.Delete)
	}
}

// NestedRoutes mounts list and create under a tour group (/tours/:id).
func NestedRoutes(h *handler, mw middleware.Middleware) func(*gin.RouterGroup) {
	return func(tour *gin.RouterGroup) {
		reviews := tour.Group("/reviews")
		reviews.GET("", h.List)
		reviews.POST("", mw.Auth(), mw.RestrictTo(model.RoleUser), h.Create)
	}
}
