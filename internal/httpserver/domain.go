package httpserver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/middleware"
	reviewHTTP "tour-booking-api/internal/review/delivery/http"
	reviewRepo "tour-booking-api/internal/review/repository/mongo"
	reviewUC "tour-booking-api/internal/review/usecase"
	tourHTTP "tour-booking-api/internal/tour/delivery/http"
	tourRepository "tour-booking-api/internal/tour/repository"
	tourRepo "tour-booking-api/internal/tour/repository/mongo"
	tourUC "tour-booking-api/internal/tour/usecase"
	"tour-booking-api/internal/user"
	userHTTP "tour-booking-api/internal/user/delivery/http"
	userRepo "tour-booking-api/internal/user/repository/mongo"
	userUC "tour-booking-api/internal/user/usecase"
	"tour-booking-api/pkg/photo"
)

// Image sub-directories below the upload dir.
const (
	tourImageDir = "tours"
	userImageDir = "users"
)

// registerDomainRoutes wires every domain under /api/v1. The rate limiter
// guards the whole /api prefix.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context, mw middleware.Middleware, users user.UseCase) error {
	api := srv.gin.Group("/api", mw.RateLimit()).Group("/v1")

	srv.setupUserDomain(ctx, api, mw, users)

	tours := tourRepo.New(srv.db, srv.l)
	if err := tours.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("tour indexes: %w", err)
	}

	nested, err := srv.setupReviewDomain(ctx, api, mw, tours)
	if err != nil {
		return err
	}

	return srv.setupTourDomain(ctx, api, mw, tours, nested)
}

// setupUserUseCase builds the user use case. It is created before the
// middleware because Auth resolves tokens through it.
func (srv HTTPServer) setupUserUseCase(ctx context.Context) (user.UseCase, error) {
	// 1. Repository
	repo := userRepo.New(srv.db, srv.l)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("user indexes: %w", err)
	}

	images, err := photo.New(filepath.Join(srv.imageDir, userImageDir))
	if err != nil {
		return nil, err
	}

	// 2. UseCase
	return userUC.New(repo, srv.tokens, srv.mailer, images, srv.l), nil
}

func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, uc user.UseCase) {
	// 3. HTTP Handler
	h := userHTTP.New(srv.l, uc, userHTTP.Config{
		Verbose:      !srv.production(),
		SecureCookie: srv.production(),
		CookieTTL:    srv.cookieTTL,
		PublicURL:    srv.publicURL,
		UploadLimit:  srv.uploadLimit,
	})

	// 4. Routes: registers /api/v1/users
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
}

func (srv HTTPServer) setupReviewDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tours tourRepository.Repository) (func(*gin.RouterGroup), error) {
	repo := reviewRepo.New(srv.db, srv.l)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("review indexes: %w", err)
	}

	uc := reviewUC.New(repo, tours, srv.l)
	h := reviewHTTP.New(srv.l, uc, !srv.production())

	// Routes: registers /api/v1/reviews; the nested ones mount under tours.
	reviewHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Review domain registered")
	return reviewHTTP.NestedRoutes(h, mw), nil
}

func (srv HTTPServer) setupTourDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repo tourRepository.Repository, nested ...func(*gin.RouterGroup)) error {
	images, err := photo.New(filepath.Join(srv.imageDir, tourImageDir))
	if err != nil {
		return err
	}

	uc := tourUC.New(repo, images, srv.l)
	h := tourHTTP.New(srv.l, uc, tourHTTP.Config{
		Verbose:     !srv.production(),
		UploadLimit: srv.uploadLimit,
	})

	// Routes: registers /api/v1/tours and /api/v1/tours/:id/reviews
	tourHTTP.RegisterRoutes(api, h, mw, nested...)

	srv.l.Infof(ctx, "Tour domain registered")
	return nil
}
