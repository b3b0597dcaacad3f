package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lumiere-studio/internal/catalog"
	"lumiere-studio/internal/config"
	"lumiere-studio/internal/notify"
	"lumiere-studio/internal/server"
	"lumiere-studio/internal/session"
	"lumiere-studio/internal/storage"
	"lumiere-studio/pkg/advisory"
	"lumiere-studio/pkg/logger"
	"lumiere-studio/pkg/rates"
	"lumiere-studio/pkg/redis"
)

// ENTRY POINT

func main() {
	_ = godotenv.Load()

	zapLogger, err := logger.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	// Sessions: Redis when configured, process memory otherwise.
	var sessions session.Store
	if cfg.Redis.Addr != "" {
		redisClient := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err := redisClient.Ping(ctx); err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient)
		zapLogger.Info("Using Redis session store", zap.String("addr", cfg.Redis.Addr))
	} else {
		sessions = session.NewMemoryStore()
		zapLogger.Info("Using in-memory session store")
	}

	// Bookings: Postgres when configured, process memory otherwise.
	var store storage.Store
	if cfg.Database.Host != "" {
		pgStore, err := storage.NewPostgresStore(ctx, cfg.Database, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to init PostgreSQL storage", zap.Error(err))
		}
		if err := storage.RunMigrations(ctx, pgStore.DB(), zapLogger); err != nil {
			zapLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
		store = pgStore
	} else {
		store = storage.NewMemoryStore()
		zapLogger.Info("Using in-memory booking storage")
	}
	defer store.Close()

	notifier, err := notify.New(cfg.Admin, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init Telegram notifier", zap.Error(err))
	}

	srv := server.New(
		zapLogger,
		cfg,
		catalog.New(),
		sessions,
		store,
		notifier,
		advisory.NewClient(cfg.Advisory.BaseURL, cfg.Advisory.APIKey, cfg.Advisory.Timeout, zapLogger),
		rates.NewClient(cfg.Rates.URL, cfg.Rates.Fallback, cfg.Rates.Timeout, zapLogger),
	)

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("Server shutdown gracefully")
}
