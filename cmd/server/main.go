package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "studioportal/docs"
	"studioportal/internal/config"
	"studioportal/internal/email/noop"
	"studioportal/internal/email/ses"
	"studioportal/internal/handler"
	"studioportal/internal/port"
	"studioportal/internal/repository/postgres"
	"studioportal/internal/router"
	"studioportal/internal/service"
)

// @title        Studio Portal API
// @version      1.0
// @description  Package pricing for the studio portal: packages, items, tier schedules, quotes and price sheets.
// @BasePath     /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	packageRepo := postgres.NewPackageRepo(db)

	// Initialize notifier
	notifier, err := newNotifier(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize notifier: %w", err)
	}

	// Initialize services
	packageSvc := service.NewPackageService(packageRepo, notifier, cfg.Email.NotifyAddresses)

	// Initialize handlers
	packageH := handler.NewPackageHandler(packageSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(packageH, healthH, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newNotifier(cfg *config.EmailConfig) (port.PackageNotifier, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName, cfg.FrontendURL)
	case "noop", "":
		log.Printf("Email provider is %q; package updates are only logged", cfg.Provider)
		return noop.NewNoopSender(cfg.FrontendURL), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
