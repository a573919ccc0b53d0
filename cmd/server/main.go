package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/tasklite/task-tracker/internal/api"
	"github.com/tasklite/task-tracker/internal/core/ports"
	"github.com/tasklite/task-tracker/internal/infrastructure/config"
	"github.com/tasklite/task-tracker/internal/infrastructure/db/kv"
	"github.com/tasklite/task-tracker/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, cleanup, err := openStore(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open storage")
	}
	defer cleanup()

	e := api.NewRouter(store, cfg.JWTSecret, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("driver", cfg.Storage.Driver).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// openStore builds the KVStore selected by STORAGE_DRIVER. The returned
// cleanup releases whatever the backend holds open.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.KVStore, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case "file":
		store, err := kv.NewFile(cfg.Storage.Dir)
		return store, noop, err

	case "sqlite":
		store, err := kv.NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { _ = store.Close() }, nil

	case "redis":
		client, err := kv.ConnectRedis(ctx, kv.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, noop, err
		}
		return kv.NewRedis(client), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := kv.ConnectMongo(ctx, kv.MongoConfig{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return kv.NewMongo(db), cleanup, nil

	case "memory":
		log.Warn().Msg("memory storage selected, state will not survive restarts")
		return kv.NewMemory(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
