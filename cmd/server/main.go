// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	authRouter "github.com/hackdesk/hackdesk/internal/auth/router"
	authService "github.com/hackdesk/hackdesk/internal/auth/service"
	appConfig "github.com/hackdesk/hackdesk/internal/config"
	"github.com/hackdesk/hackdesk/internal/database/database"
	"github.com/hackdesk/hackdesk/internal/database/migrate"
	hackathonRouter "github.com/hackdesk/hackdesk/internal/hackathon/router"
	"github.com/hackdesk/hackdesk/internal/health"
	logisticsRouter "github.com/hackdesk/hackdesk/internal/logistics/router"
	"github.com/hackdesk/hackdesk/internal/middleware"
	statisticsRouter "github.com/hackdesk/hackdesk/internal/statistics/router"
	teamRouter "github.com/hackdesk/hackdesk/internal/team/router"
	volunteerRouter "github.com/hackdesk/hackdesk/internal/volunteer/router"
	"github.com/hackdesk/hackdesk/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New(zlog)
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zlog.Errorw("failed to close database", "error", closeErr)
		}
	}()

	schemaVersion, err := migrate.Migrate(db)
	if err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}
	zlog.Infow("database schema up to date", "version", schemaVersion)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.Logger(zlog))

	verifier := authService.NewSharedSecretVerifier(cfg.Auth.VerifierSecret)
	resolver := authService.New(cfg.Auth, verifier, zlog)
	authMW := middleware.Auth(resolver, zlog)

	authRouter.RegisterRoutes(r, resolver, zlog)
	hackathonRouter.RegisterRoutes(r, db, zlog, authMW)
	teamRouter.RegisterRoutes(r, db, zlog, authMW)
	logisticsRouter.RegisterRoutes(r, db, zlog, authMW)
	volunteerRouter.RegisterRoutes(r, db, zlog, authMW)
	statisticsRouter.RegisterRoutes(r, db, zlog, authMW)

	healthHandler := health.New(db, zlog)
	r.GET("/health", healthHandler.Check)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Infow("starting HTTP server", "addr", srv.Addr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			zlog.Fatalw("failed to start server", "error", serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zlog.Errorw("forced shutdown", "error", err)
	}
}
