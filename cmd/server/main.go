package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/foxuse/showcase/internal/auth"
	"github.com/foxuse/showcase/internal/config"
	"github.com/foxuse/showcase/internal/database"
	"github.com/foxuse/showcase/internal/email"
	"github.com/foxuse/showcase/internal/handler"
	"github.com/foxuse/showcase/internal/logger"
	"github.com/foxuse/showcase/internal/middleware"
	"github.com/foxuse/showcase/internal/repository"
	"github.com/foxuse/showcase/internal/router"
	"github.com/foxuse/showcase/internal/service"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", "0.1.0").Msg("starting showcase server")

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("connected to PostgreSQL")

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)

	// Initialize mail relay
	sender := newMailSender(context.Background(), cfg, log)

	// Initialize notification broadcaster
	notifier := service.NewNotifier(subscriberRepo, sender, cfg.Mail.AppName, log)

	// Initialize admin authenticator
	authenticator := auth.FromConfig(cfg.Admin)

	// Initialize handlers, middleware, router
	h := handler.New(db, log, authenticator, productRepo, activityRepo, subscriberRepo, notifier)
	mw := middleware.New(log, cfg)
	r := router.New(h, mw)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// newMailSender picks the configured mail relay. Missing credentials
// leave broadcasts failing loudly instead of blocking startup.
func newMailSender(ctx context.Context, cfg *config.Config, log *logger.Logger) email.Sender {
	gm := cfg.Mail.Gmail

	switch {
	case gm.CredentialsJSON != "":
		sender, err := email.NewGmailSender(ctx, email.GmailConfig{
			CredentialsJSON: gm.CredentialsJSON,
			SenderAddress:   gm.SenderAddress,
			SenderName:      cfg.Mail.SenderName,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Gmail sender")
		}
		log.Info().Str("sender", gm.SenderAddress).Msg("mail relay initialized (service account)")
		return sender

	case gm.RefreshToken != "":
		sender, err := email.NewGmailSenderWithToken(ctx, gm.ClientID, gm.ClientSecret, gm.RefreshToken, gm.SenderAddress, cfg.Mail.SenderName)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Gmail sender")
		}
		log.Info().Str("sender", gm.SenderAddress).Msg("mail relay initialized (refresh token)")
		return sender

	default:
		log.Warn().Msg("mail relay credentials not configured, broadcasts will fail")
		return email.Unconfigured{}
	}
}
