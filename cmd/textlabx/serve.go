package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cienciascontic/textlabx/internal/adapter/client"
	"github.com/cienciascontic/textlabx/internal/adapter/http/router"
	"github.com/cienciascontic/textlabx/internal/adapter/repository/memory"
	redisrepo "github.com/cienciascontic/textlabx/internal/adapter/repository/redis"
	"github.com/cienciascontic/textlabx/internal/domain/repository"
	"github.com/cienciascontic/textlabx/internal/infrastructure/cache"
	"github.com/cienciascontic/textlabx/internal/infrastructure/config"
	"github.com/cienciascontic/textlabx/internal/infrastructure/logger"
	"github.com/cienciascontic/textlabx/internal/infrastructure/monitoring"
	"github.com/cienciascontic/textlabx/internal/usecase"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	textlabx := newClient(cfg).SetLogger(log)
	log.Info("Classification server configured",
		zap.String("base_url", textlabx.BaseURL()),
		zap.Duration("timeout", cfg.Classifier.Timeout),
	)

	redisClient, sessionRepo := openSessionStore(cfg, log)

	monitor := monitoring.NewMetricsMonitor(prometheus.DefaultRegisterer)
	sessionUC := usecase.NewSessionUsecase(client.NewRemotePredictor(textlabx), sessionRepo, monitor)
	modelUC := usecase.NewModelUsecase(textlabx)

	// Setup router
	r := router.Setup(router.Dependencies{
		Sessions:   sessionUC,
		Models:     modelUC,
		Classifier: textlabx,
		Redis:      redisClient,
		Gatherer:   prometheus.DefaultGatherer,
		Logger:     log,
	})

	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: writeTimeout(cfg.Classifier.Timeout),
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server failed", zap.Error(err))
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}

// writeTimeout leaves room for one upstream call. An unbounded upstream
// timeout leaves responses unbounded too.
func writeTimeout(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		return 0
	}
	return upstream + 30*time.Second
}

// openSessionStore returns the configured session repository. An unreachable
// redis falls back to process memory; the returned client is then nil.
func openSessionStore(cfg *config.Config, log *zap.Logger) (*goredis.Client, repository.SessionRepository) {
	if cfg.Session.Store != config.SessionStoreRedis {
		log.Info("Using in-memory session store")
		return nil, memory.NewSessionRepository()
	}

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("Failed to connect to Redis, continuing with in-memory sessions", zap.Error(err))
		return nil, memory.NewSessionRepository()
	}

	log.Info("Connected to Redis", zap.String("address", cfg.Redis.Addr()))
	return redisClient, redisrepo.NewSessionRepository(redisClient, cfg.Session.TTL)
}
