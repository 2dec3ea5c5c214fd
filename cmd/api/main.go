package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/audit"
	"github.com/BruksfildServices01/recipe-nest/internal/auth"
	"github.com/BruksfildServices01/recipe-nest/internal/clock"
	"github.com/BruksfildServices01/recipe-nest/internal/config"
	dbpkg "github.com/BruksfildServices01/recipe-nest/internal/db"
	"github.com/BruksfildServices01/recipe-nest/internal/imaging"
	"github.com/BruksfildServices01/recipe-nest/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/recipe-nest/internal/infra/repository"
	"github.com/BruksfildServices01/recipe-nest/internal/infra/storage"
	"github.com/BruksfildServices01/recipe-nest/internal/logging"
	"github.com/BruksfildServices01/recipe-nest/internal/ratelimit"
	"github.com/BruksfildServices01/recipe-nest/internal/routes"
	ucAuth "github.com/BruksfildServices01/recipe-nest/internal/usecase/auth"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/upload"
	"github.com/BruksfildServices01/recipe-nest/internal/validators"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// PERSISTENCE
	// ======================================================
	deps := routes.Dependencies{
		Clock:          clock.System{},
		CORSOrigins:    cfg.CORSOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	var auditStore audit.Store
	switch cfg.StoreDriver {
	case "memory":
		slog.Warn("using in-memory store, data is lost on restart")
		store := memory.NewStore()
		deps.Users = store.Users()
		deps.Recipes = store.Recipes()
		deps.Ratings = store.Ratings()
		deps.Reviews = store.Reviews()
		auditRepo := store.AuditLogs()
		deps.AuditLogs = auditRepo
		auditStore = auditRepo
	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := dbpkg.Close(db); err != nil {
				slog.Warn("failed to close database", "error", err)
			}
		}()
		deps.Users = infraRepo.NewUserGormRepository(db)
		deps.Recipes = infraRepo.NewRecipeGormRepository(db)
		deps.Ratings = infraRepo.NewRatingGormRepository(db)
		deps.Reviews = infraRepo.NewReviewGormRepository(db)
		auditRepo := infraRepo.NewAuditGormRepository(db)
		deps.AuditLogs = auditRepo
		auditStore = auditRepo
	}

	dispatcher := audit.NewDispatcher(audit.New(auditStore))
	defer dispatcher.Close()
	deps.Audit = dispatcher

	// ======================================================
	// UPLOADS
	// ======================================================
	var files storage.Storage
	switch cfg.StorageDriver {
	case "s3":
		s3Store, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			return err
		}
		files = s3Store
	default:
		local, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			return err
		}
		files = local
		deps.UploadDir = local.Dir()
	}
	images := imaging.NewProcessor(cfg.ImageMaxWidth)
	if cfg.ImageMaxPixels > 0 {
		images.MaxPixels = cfg.ImageMaxPixels
	}
	deps.Uploader = upload.NewUploader(images, files)

	// ======================================================
	// AUTH / LIMITS
	// ======================================================
	deps.Tokens = auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	deps.Emails = validators.AcceptAll{}
	if cfg.CheckEmailDomain {
		deps.Emails = validators.DNSChecker{}
	}

	if cfg.RedisAddr != "" {
		client, err := ratelimit.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return err
		}
		defer client.Close()

		limiter, err := ratelimit.NewFixedWindowLimiter(client, "recipenest:rl", cfg.RateLimitPerMinute, time.Minute)
		if err != nil {
			return err
		}
		deps.Limiter = limiter
	}

	if cfg.SeedAdminEmail != "" {
		created, err := ucAuth.NewEnsureAdmin(deps.Users).Execute(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		if created {
			slog.Info("seeded admin account", "email", cfg.SeedAdminEmail)
		}
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", cfg.Addr(), "store", cfg.StoreDriver, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
