package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	handlers "github.com/ecologicaleaving/wikigaialab/internal/adapter/handler/http"
	"github.com/ecologicaleaving/wikigaialab/internal/config"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
	"github.com/ecologicaleaving/wikigaialab/internal/middleware/auth"
	"github.com/ecologicaleaving/wikigaialab/pkg/logger"
)

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	handlers handlers.Handlers
	users    domainRepo.UserRepository
	checks   map[string]HealthCheck
	registry *prometheus.Registry
}

// NewServer builds the router. A nil registry uses the prometheus default registry.
func NewServer(cfg *config.Config, log *zap.Logger, h handlers.Handlers, users domainRepo.UserRepository, checks map[string]HealthCheck, registry *prometheus.Registry) *Server {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if registry != nil {
		registerer, gatherer = registry, registry
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewRequestValidator()
	logger.WithEchoLogger(e, log)

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  config.ServiceName,
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))
	origins := cfg.Notification.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{echo.GET, echo.POST, echo.DELETE},
	}))

	s := &Server{
		config:   cfg,
		logger:   log,
		echo:     e,
		handlers: h,
		users:    users,
		checks:   checks,
	}
	s.setupRoutes(gatherer)
	return s
}

// Echo exposes the router, used by tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start() error {
	addr := s.config.Server.HTTP.Address()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.StartServer(&http.Server{
		Addr:         addr,
		ReadTimeout:  s.config.Server.HTTP.ReadTimeout,
		WriteTimeout: s.config.Server.HTTP.WriteTimeout,
	})
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	status := http.StatusOK
	deps := make(map[string]string, len(s.checks))
	for name, check := range s.checks {
		if err := check(c.Request().Context()); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "degraded"
	}
	return c.JSON(status, map[string]interface{}{
		"status":       state,
		"service":      s.config.Service.Name,
		"dependencies": deps,
	})
}

func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	s.echo.GET("/health", s.health)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// JWT middleware configuration; reads of public data work anonymously
	jwtConfig := auth.JWTConfig{
		Secret:          s.config.JWT.Secret,
		Logger:          s.logger,
		Optional:        true,
		TokenQueryParam: s.config.JWT.TokenQueryParam,
	}

	api := s.echo.Group("/api/v1", auth.JWTMiddleware(jwtConfig))
	handlers.RegisterRoutes(api, s.handlers, auth.RequireAdmin(s.users, s.logger))
}
