package app

import (
	"context"
	"fmt"

	"backup-admin/internal/config"
	"backup-admin/internal/infra/cache"
	"backup-admin/internal/infra/s3"
	"backup-admin/internal/repository"
	"backup-admin/internal/repository/memory"
	"backup-admin/internal/repository/postgres"
	"backup-admin/internal/transport/echo"
)

// InitializeService wires up all dependencies and returns a configured Service
func InitializeService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, closeDB, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	var presigner *s3.Presigner
	if cfg.DownloadsEnabled() {
		presigner, err = s3.NewPresigner(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create presigner: %w", err)
		}
	}

	urlCache := cache.NewURLCache()
	server := echo.NewServer(cfg, store, presigner, urlCache)

	return &Service{
		config:   cfg,
		urlCache: urlCache,
		server:   server,
		closeDB:  closeDB,
	}, nil
}

func buildStore(cfg *config.Config) (repository.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(&cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.EnsureSchema(context.Background()); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewStore(db), db.Close, nil

	default:
		store := memory.New()
		if cfg.Store.SeedDemoData {
			store.Seed()
		}
		return store, nil, nil
	}
}
