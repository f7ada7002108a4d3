// filepath: internal/cli/server.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retrohub/internal/api"
	"retrohub/internal/api/handlers"
	"retrohub/internal/api/middleware"
	"retrohub/internal/audit"
	"retrohub/internal/config"
	"retrohub/internal/logging"
	"retrohub/internal/metrics"
	"retrohub/internal/repository"
	"retrohub/internal/services"
	"retrohub/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const shutdownTimeout = 30 * time.Second

// buildHandler wires repository, services and router for c.
func buildHandler(c *config.Config, repo *repository.Repository) (http.Handler, error) {
	fsys := afero.NewOsFs()
	if err := storage.EnsureRoot(fsys, c.Upload.Root); err != nil {
		return nil, fmt.Errorf("failed to prepare upload root: %w", err)
	}

	saver := storage.NewSaver(storage.Config{
		Root:         c.Upload.Root,
		MaxFileSize:  c.MaxFileSizeBytes,
		AllowedTypes: c.Upload.AllowedTypes,
	}, fsys)
	m := metrics.New()

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(c.Logging.AuditEnabled, c.Logging.Level)

	// Service Initialization
	storageService := services.NewStorageService(saver, m)
	infoService := services.NewInfoService(Version, StartTime)
	retroService := services.NewRetroService(repo, loggerAuditor)
	itemService := services.NewItemService(repo)
	attachmentService := services.NewAttachmentService(repo, storageService, loggerAuditor)

	h := handlers.NewHandlers(
		infoService,
		retroService,
		itemService,
		attachmentService,
		loggerAuditor,
		c,
	)

	opts := api.RouterOptions{
		Metrics:     m,
		CORSOrigins: c.CORS.AllowedOrigins,
	}
	if c.RateLimitEnabled() {
		opts.RateLimiter = middleware.NewRateLimiter(c.RateLimit.Requests, c.RateLimitWindow)
	}
	return api.SetupRouter(h, opts), nil
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	if cfg.SecretKey == config.DefaultSecretKey {
		logging.Log.Warn("Using the built-in development secret key; set RETRO_SECRET_KEY in production.")
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// --- Conditional Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	if err := repo.ValidateSchema(); err != nil {
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return err
	}

	handler, err := buildHandler(cfg, repo)
	if err != nil {
		return err
	}

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		logging.Log.WithFields(logrus.Fields{
			"upload_root":   cfg.Upload.Root,
			"max_file_size": cfg.Upload.MaxFileSize,
			"rate_limit":    cfg.RateLimitEnabled(),
		}).Infof("Server starting on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-stop:
	}
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
