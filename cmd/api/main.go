// Package main is the entry point for the Scheduling of Care API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scheduling-of-care/backend/config"
	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/application/usecase/budget"
	"github.com/scheduling-of-care/backend/internal/infra/cache"
	"github.com/scheduling-of-care/backend/internal/infra/db"
	"github.com/scheduling-of-care/backend/internal/infra/dependency"
	"github.com/scheduling-of-care/backend/internal/infra/scheduler"
	"github.com/scheduling-of-care/backend/internal/integration/notification"
	"github.com/scheduling-of-care/backend/internal/integration/notification/templates"
	"github.com/scheduling-of-care/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Scheduling of Care API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.ClientModel{},
		&model.CareCategoryModel{},
		&model.SubcategoryModel{},
		&model.CareTaskModel{},
		&model.ExecutionModel{},
		&model.NotificationQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis is optional. Without it, budget breakdowns recompute per request.
	var breakdownCache budget.BreakdownCache
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, running without breakdown cache", "error", err)
	} else {
		breakdownCache = cache.NewBreakdownCache(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
	}

	// Wire application dependencies
	injector, err := dependency.NewInjector(cfg, database.DB(), breakdownCache)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Background context for workers, cancelled on shutdown
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	// Start the notification worker
	if cfg.Email.WorkerEnabled {
		var sender adapter.EmailSender
		if cfg.Email.ResendAPIKey != "" {
			sender = notification.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		} else {
			slog.Warn("RESEND_API_KEY not set, notification emails are captured in memory only")
			sender = notification.NewMockEmailSender()
		}

		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to load email templates", "error", err)
			os.Exit(1)
		}

		worker := notification.NewWorker(injector.NotificationQueue, sender, renderer, notification.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		go worker.Start(workerCtx)
	}

	// Start the execution generation sweep
	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(injector.CareTaskRepo, injector.ExecutionRepo, injector.NotificationQueue)
		if err := sched.Start(cfg.Scheduler.CronSpec); err != nil {
			slog.Error("Failed to start scheduler", "error", err)
			os.Exit(1)
		}
		defer sched.Stop()
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	cancelWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
