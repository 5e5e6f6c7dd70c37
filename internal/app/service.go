package app

import (
	"context"
	"log"
	"time"

	"backup-admin/internal/config"
	"backup-admin/internal/infra/cache"
	"backup-admin/internal/transport/echo"
)

const urlCacheSweepInterval = 5 * time.Minute

// Service represents the backup administration application
type Service struct {
	config   *config.Config
	urlCache *cache.URLCache
	server   *echo.Server
	closeDB  func()
}

// NewService creates and initializes a new Service instance
// This is a convenience wrapper around InitializeService
func NewService() (*Service, error) {
	return InitializeService()
}

// Start starts the service and all background tasks
func (s *Service) Start() error {
	go s.startCacheSweep()

	log.Println("Starting backup admin service...")
	return s.server.Start()
}

// startCacheSweep runs a background task to clear expired download links
func (s *Service) startCacheSweep() {
	ticker := time.NewTicker(urlCacheSweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.urlCache.Sweep()
	}
}

// ShutdownTimeout reports how long in-flight requests get to drain before
// Shutdown gives up on them.
func (s *Service) ShutdownTimeout() time.Duration {
	return s.config.Server.ShutdownTimeout
}

// Shutdown gracefully shuts down the service
func (s *Service) Shutdown(ctx context.Context) error {
	if s.closeDB != nil {
		defer s.closeDB()
	}
	return s.server.Shutdown(ctx)
}
