package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_finance/internal/adapters/cache/redis"
	"github.com/SscSPs/household_finance/internal/adapters/database/pgsql"
	"github.com/SscSPs/household_finance/internal/adapters/database/sqlite"
	"github.com/SscSPs/household_finance/internal/adapters/memory"
	"github.com/SscSPs/household_finance/internal/adapters/storage/s3"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	"github.com/SscSPs/household_finance/internal/platform/config"
	"github.com/SscSPs/household_finance/pkg/database"
)

// openRepositories connects the configured storage backend. The returned
// cleanup releases its connections and must run after the final flush.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	noop := func() {}
	logger = logger.With(slog.String("storage_backend", cfg.StorageBackend))

	switch cfg.StorageBackend {
	case config.StoragePostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, noop, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			database.ClosePgxPool(dbPool, logger)
			return portsrepo.RepositoryProvider{}, noop, err
		}
		return pgsql.NewRepositoryProvider(dbPool, cfg.DocumentKey), func() { database.ClosePgxPool(dbPool, logger) }, nil

	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		cleanup := func() {
			if err := database.CloseSQLiteDB(db); err != nil {
				logger.Error("Failed to close sqlite database", slog.String("error", err.Error()))
			}
		}
		repo, err := sqlite.NewGormDocumentRepository(db, cfg.DocumentKey)
		if err != nil {
			cleanup()
			return portsrepo.RepositoryProvider{}, noop, err
		}
		logger.Info("Using SQLite storage", slog.String("path", cfg.SQLitePath))
		return portsrepo.RepositoryProvider{DocumentRepo: repo}, cleanup, nil

	case config.StorageRedis:
		repo, client, err := redis.NewDocumentRepository(ctx, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.DocumentKey)
		if err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logger.Error("Failed to close redis client", slog.String("error", err.Error()))
			}
		}
		logger.Info("Using Redis storage", slog.String("addr", cfg.RedisAddr))
		return portsrepo.RepositoryProvider{DocumentRepo: repo}, cleanup, nil

	case config.StorageS3:
		repo, err := s3.NewDocumentRepository(ctx, s3.Config{
			Endpoint:     cfg.S3Endpoint,
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			UsePathStyle: cfg.S3UsePathStyle,
		}, cfg.DocumentKey, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		if err := repo.EnsureBucket(ctx); err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		logger.Info("Using S3 storage", slog.String("bucket", cfg.S3Bucket))
		return portsrepo.RepositoryProvider{DocumentRepo: repo}, noop, nil

	default:
		return portsrepo.RepositoryProvider{DocumentRepo: memory.NewDocumentRepository()}, noop, nil
	}
}
