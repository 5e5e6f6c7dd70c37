package echo

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"backup-admin/internal/config"
	"backup-admin/internal/infra/cache"
	"backup-admin/internal/infra/s3"
	"backup-admin/internal/repository"
)

// Server wraps the Echo server with dependencies
type Server struct {
	echo      *echo.Echo
	config    *config.Config
	store     repository.Store
	presigner *s3.Presigner
	urlCache  *cache.URLCache
}

// NewServer creates a new Echo server with middleware and routes. presigner
// may be nil, in which case the downloads endpoint serves the catalog
// without links.
func NewServer(cfg *config.Config, store repository.Store, presigner *s3.Presigner, urlCache *cache.URLCache) *Server {
	e := echo.New()
	e.HideBanner = true

	rateLimiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      10,
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden, nil)
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests, nil)
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(rateLimiterConfig))
	e.Use(middleware.CORS())

	server := &Server{
		echo:      e,
		config:    cfg,
		store:     store,
		presigner: presigner,
		urlCache:  urlCache,
	}

	server.registerRoutes()

	return server
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout
	return s.echo.Start(":" + s.config.Server.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
