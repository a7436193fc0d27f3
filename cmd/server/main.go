package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	handlers "github.com/ecologicaleaving/wikigaialab/internal/adapter/handler/http"
	"github.com/ecologicaleaving/wikigaialab/internal/adapter/notification"
	"github.com/ecologicaleaving/wikigaialab/internal/config"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/service"
	"github.com/ecologicaleaving/wikigaialab/internal/infrastructure/cache"
	"github.com/ecologicaleaving/wikigaialab/internal/infrastructure/database"
	grpcServer "github.com/ecologicaleaving/wikigaialab/internal/infrastructure/grpc"
	httpServer "github.com/ecologicaleaving/wikigaialab/internal/infrastructure/http"
	"github.com/ecologicaleaving/wikigaialab/internal/infrastructure/metrics"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
	"github.com/ecologicaleaving/wikigaialab/internal/worker"
	"github.com/ecologicaleaving/wikigaialab/pkg/messaging"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("service", cfg.Service.Name))

	loc, err := cfg.Reputation.Location()
	if err != nil {
		logger.Fatal("Invalid reputation configuration", zap.Error(err))
	}

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Redis backs the breakdown cache, notifications and realtime events; the service runs without it
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.NewRedisClient(cfg.Redis, logger)
		if err != nil {
			logger.Warn("Continuing without Redis", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	repos := database.NewRepositories(db, redisClient, logger)

	var (
		publisher   messaging.RedisClient
		broadcaster interfaces.Broadcaster
		notifiers   []interfaces.Notifier
	)
	if redisClient != nil {
		publisher = messaging.NewRedisClientFrom(redisClient)
		broadcaster = notification.NewRedisBroadcaster(publisher)
		notifiers = append(notifiers, notification.NewRedisNotifier(publisher, repos.User, logger))
	}
	if cfg.Email.Enabled {
		notifiers = append(notifiers, notification.NewEmailNotifier(notification.EmailConfig{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			FromName: cfg.Email.FromName,
		}, repos.User, logger))
	}
	notifier := notification.NewMultiNotifier(notifiers...)

	// Usecases
	collector := usecase.NewStatsCollector(repos.User, repos.Stats, loc, logger)
	reputationService := usecase.NewReputationService(
		repos.Reputation,
		collector,
		repos.Breakdowns,
		service.NewReputationCalculator(cfg.Reputation.Weights),
		notifier,
		cfg.Reputation.CacheTTL,
		logger,
	)
	achievementEngine := usecase.NewAchievementEngine(repos.Achievement, collector, reputationService, notifier, broadcaster, logger)
	socialService := usecase.NewSocialService(repos.User, repos.Social, repos.Activity, repos.Problem, achievementEngine, notifier, broadcaster, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Achievements.SeedOnStart {
		entries, err := config.LoadCatalog(cfg.Achievements.CatalogPath)
		if err != nil {
			logger.Fatal("Failed to load achievement catalog", zap.Error(err))
		}
		seeded, err := achievementEngine.SeedCatalog(ctx, entries)
		if err != nil {
			logger.Fatal("Failed to seed achievement catalog", zap.Error(err))
		}
		logger.Info("Achievement catalog seeded", zap.Int("achievements", seeded))
	}

	metrics.Register()

	h := handlers.Handlers{
		Social:      handlers.NewSocialHandler(logger, socialService),
		Reputation:  handlers.NewReputationHandler(logger, reputationService),
		Achievement: handlers.NewAchievementHandler(logger, achievementEngine),
	}
	if publisher != nil && cfg.Notification.RealtimeEnabled {
		h.Realtime = handlers.NewRealtimeHandler(logger, publisher, cfg.Notification.AllowedOrigins, cfg.Notification.PingInterval)
	}

	checks := map[string]httpServer.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	httpSrv := httpServer.NewServer(cfg, logger, h, repos.User, checks, nil)
	grpcSrv := grpcServer.NewServer(cfg.Server.GRPC, cfg.Service.Name, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(grpcSrv.Start)
	if cfg.Reconciler.Enabled {
		reconciler := worker.NewCounterReconciler(repos.Social, cfg.Reconciler.Interval, logger)
		g.Go(func() error {
			reconciler.Run(gctx)
			return nil
		})
	}

	// Wait for a signal or a server failure
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		grpcSrv.Stop()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Servers shut down successfully")
}
