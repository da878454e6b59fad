package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"tour-booking-api/internal/model"
	"tour-booking-api/pkg/email"
	"tour-booking-api/pkg/log"
	"tour-booking-api/pkg/ratelimit"
	"tour-booking-api/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Persistence
	db *mongo.Database

	// Auth & outbound
	tokens    scope.Manager
	mailer    email.Sender
	cookieTTL time.Duration
	publicURL string

	// Hardening
	limiter   *ratelimit.Limiter
	bodyLimit int64

	// Uploads
	imageDir    string
	uploadLimit int64
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Database *mongo.Database

	Tokens    scope.Manager
	Mailer    email.Sender
	CookieTTL time.Duration
	// PublicURL prefixes password reset links; empty uses the request host.
	PublicURL string

	Limiter *ratelimit.Limiter
	// BodyLimit caps JSON bodies, in bytes.
	BodyLimit int64

	// ImageDir is served under /img; tours/ and users/ are created below it.
	ImageDir string
	// UploadLimit caps multipart uploads, in bytes.
	UploadLimit int64
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.Database,
		tokens:      cfg.Tokens,
		mailer:      cfg.Mailer,
		cookieTTL:   cfg.CookieTTL,
		publicURL:   cfg.PublicURL,
		limiter:     cfg.Limiter,
		bodyLimit:   cfg.BodyLimit,
		imageDir:    cfg.ImageDir,
		uploadLimit: cfg.UploadLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.tokens == nil {
		return errors.New("token manager is required")
	}
	if srv.mailer == nil {
		return errors.New("mailer is required")
	}
	if srv.limiter == nil {
		return errors.New("rate limiter is required")
	}
	if srv.imageDir == "" {
		return errors.New("image dir is required")
	}
	return nil
}

// production reports whether internal error details must be hidden.
func (srv HTTPServer) production() bool {
	return srv.environment == string(model.EnvironmentProduction)
}
