// Package backend chooses the storage backend for the process.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/showroom/internal/config"
	"github.com/mmynk/showroom/internal/storage"
	"github.com/mmynk/showroom/internal/storage/memory"
	"github.com/mmynk/showroom/internal/storage/sqldb"
)

// Open is called once at startup. A non-empty DatabaseURL selects the
// durable backend, anything else the in-memory one. The choice holds for the
// life of the process.
//
// InitializeDatabase runs before Open returns. If it fails the error is
// logged and the store is returned anyway: the server keeps serving against
// whatever schema exists. Open only fails when the URL cannot be used at all.
func Open(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	store, err := selectStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.InitializeDatabase(ctx); err != nil {
		slog.Warn("Storage initialization failed, continuing", "backend", store.Name(), "error", err)
	} else {
		slog.Info("Storage initialized", "backend", store.Name())
	}
	return store, nil
}

func selectStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DatabaseURL == "" {
		slog.Info("DATABASE_URL not set, using in-memory storage; data is lost on restart")
		return memory.New(), nil
	}

	store, err := sqldb.Open(cfg.DatabaseURL, sqldb.PoolOptions{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}
