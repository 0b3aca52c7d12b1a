package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/core/services"
	"github.com/SscSPs/household_finance/internal/handlers"
	"github.com/SscSPs/household_finance/internal/middleware"
	"github.com/SscSPs/household_finance/internal/notify"
	"github.com/SscSPs/household_finance/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStorage, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStorage()

	container, finance := services.NewServiceContainer(cfg, repos, newNotifier(cfg, logger), logger)
	if err := finance.Init(ctx); err != nil {
		logger.Error("Failed to load financial document", slog.String("error", err.Error()))
		os.Exit(1)
	}

	scheduler, err := startReminderSchedule(cfg, container.Reminder, logger)
	if err != nil {
		logger.Error("Failed to schedule installment reminder", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router, err := newRouter(cfg, container, logger)
	if err != nil {
		logger.Error("Failed to set up router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	}
	if err := finance.Close(shutdownCtx); err != nil {
		logger.Error("Failed to save document on shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Shutdown complete")
}

func newRouter(cfg *config.Config, container *portssvc.ServiceContainer, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	limiterInstance, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(limiterInstance))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	handlers.RegisterRoutes(r, cfg, container)
	return r, nil
}

func newNotifier(cfg *config.Config, logger *slog.Logger) portssvc.Notifier {
	if !cfg.SMTPEnabled() {
		return notify.NewLogNotifier(logger)
	}
	return notify.NewEmailNotifier(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.ReminderFrom,
		To:       cfg.ReminderTo,
	}, logger)
}

// startReminderSchedule runs the installment reminder on REMINDER_CRON.
// It returns nil when no schedule is configured.
func startReminderSchedule(cfg *config.Config, reminder portssvc.ReminderService, logger *slog.Logger) (*cron.Cron, error) {
	if cfg.ReminderCron == "" {
		logger.Info("Installment reminder disabled")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.ReminderCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		count, err := reminder.SendReminders(ctx)
		if err != nil {
			logger.Error("Installment reminder failed", slog.String("error", err.Error()))
			return
		}
		logger.Info("Installment reminder finished", slog.Int("installments", count))
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("Installment reminder scheduled", slog.String("schedule", cfg.ReminderCron))
	return c, nil
}
