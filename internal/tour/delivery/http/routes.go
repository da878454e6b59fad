package http

import (
	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/middleware"
	"tour-booking-api/internal/model"
)

// RegisterRoutes maps the tour endpoints onto rg. nested receives the
// /:id sub-group so other domains (reviews) can mount under a tour.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, nested ...func(*gin.RouterGroup)) {
	staff := mw.RestrictTo(model.RoleAdmin, model.RoleLeadGuide)

	tours := rg.Group("/tours")
	{
		tours.GET("", h.List)
		tours.POST("", mw.Auth(), staff, h.Create)

		tours.GET("/top-5-cheap", h.TopCheap)
		tours.GET("/stats", h.Stats)
		tours.GET("/monthly-plan/:year", mw.Auth(),
			mw.RestrictTo(model.RoleAdmin, model.RoleLeadGuide, model.RoleGuide), h.MonthlyPlan)
		tours.GET("/within/:distance/center/:latlng/unit/:unit", h.Within)
		tours.GET("/distances/:latlng/unit/:unit", h.Distances)

		tours.GET("/:id", h.Detail)
		tours.PATCH("/:id", mw.Auth(), staff, h.Update)
		tours.DELETE("/:id", mw.Auth(), staff, h.Delete)
		tours.PATCH("/:id/images", mw.Auth(), staff, h.UploadImages)
	}

	byID := tours.Group("/:id")
	for _, mount := range nested {
		mount(byID)
	}
}
