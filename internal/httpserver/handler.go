package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tour-booking-api/internal/middleware"
	"tour-booking-api/pkg/response"
)

// pollutionWhitelist lists the query keys that may repeat (hpp).
var pollutionWhitelist = []string{
	"difficulty",
	"duration",
	"maxGroupSize",
	"ratingsAverage",
	"ratingsQuantity",
	"price",
}

func (srv HTTPServer) mapHandlers(ctx context.Context) error {
	users, err := srv.setupUserUseCase(ctx)
	if err != nil {
		return err
	}
	mw := middleware.New(srv.l, users, srv.limiter, !srv.production())

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx, mw, users); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(
		mw.Recovery(),
		mw.RequestID(),
		mw.Logger(),
		mw.SecurityHeaders(),
		mw.BodyLimit(srv.bodyLimit),
		mw.ParameterPollution(pollutionWhitelist...),
	)

	if srv.production() {
		srv.l.Infof(ctx, "Error details: hidden (production)")
	} else {
		srv.l.Infof(ctx, "Error details: exposed (%s)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong!")
	})
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.Static("/img", srv.imageDir)

	srv.gin.NoRoute(func(c *gin.Context) {
		response.NotFound(c, fmt.Sprintf("Can't find %s on this server!", c.Request.URL.Path))
	})
}
