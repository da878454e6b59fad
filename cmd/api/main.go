package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tour-booking-api/config"
	_ "tour-booking-api/docs" // Swagger docs
	"tour-booking-api/internal/httpserver"
	"tour-booking-api/pkg/email"
	"tour-booking-api/pkg/log"
	"tour-booking-api/pkg/mongodb"
	"tour-booking-api/pkg/ratelimit"
	"tour-booking-api/pkg/scope"
)

// @title       Natours Tour Booking API
// @description Tours, users and reviews with filter, sort, field selection and pagination on every list.
// @version     1
// @host        localhost:8000
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting tour booking API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. MongoDB
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Password: cfg.Mongo.Password,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warnf(ctx, "MongoDB disconnect: %v", err)
		}
	}()
	logger.Infof(ctx, "DB connection successful (%s)", cfg.Mongo.Database)

	// 4. Auth, mail and hardening
	tokens := scope.New(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	mailer := email.NewSMTP(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	limiter := ratelimit.New(cfg.RateLimit.Max, cfg.RateLimit.Window)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Database:    db,
		Tokens:      tokens,
		Mailer:      mailer,
		CookieTTL:   cfg.JWT.ExpiresIn,
		PublicURL:   cfg.HTTPServer.PublicURL,
		Limiter:     limiter,
		BodyLimit:   int64(cfg.HTTPServer.BodyLimitKB) << 10,
		ImageDir:    cfg.Upload.Dir,
		UploadLimit: int64(cfg.Upload.MaxMB) << 20,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
