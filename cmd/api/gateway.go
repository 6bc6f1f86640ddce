package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"doclib/internal/config"
	"doclib/internal/database"
	"doclib/internal/database/migration"
	"doclib/internal/persistence"
	"doclib/internal/persistence/memory"
	"doclib/internal/persistence/objectstore"
	"doclib/internal/persistence/postgres"
	"doclib/internal/persistence/redis"
	"doclib/internal/storage"
)

func noopClose() error { return nil }

// openGateway connects the persistence backend named by cfg.Store.Backend.
// The returned close func releases its connections.
func openGateway(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (persistence.Gateway, func() error, error) {
	prefix := cfg.Store.KeyPrefix

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.New(), noopClose, nil

	case config.BackendPostgres:
		db, err := database.Open(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
		return postgres.New(db, prefix), db.Close, nil

	case config.BackendMinIO:
		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize object storage: %w", err)
		}
		return objectstore.New(objStore, prefix), noopClose, nil

	case config.BackendRedis:
		gw, err := redis.Open(ctx, cfg.Redis, prefix)
		if err != nil {
			return nil, nil, err
		}
		return gw, gw.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
