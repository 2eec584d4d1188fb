package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/stock-cache/internal/adapter/handler"
	"github.com/rl1809/stock-cache/internal/adapter/storage"
	"github.com/rl1809/stock-cache/internal/adapter/warehouse"
	"github.com/rl1809/stock-cache/internal/config"
	"github.com/rl1809/stock-cache/internal/core/service"
	"github.com/rl1809/stock-cache/internal/port"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Durable stock store
	var store port.StockStore
	var closeStore func()

	switch cfg.StoreBackend {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open mysql")
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to ping mysql")
		}
		logger.Info().Msg("connected to mysql")

		store = storage.NewMySQLStore(db)
		closeStore = func() { db.Close() }

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		logger.Info().Msg("connected to redis")

		store = storage.NewRedisStore(rdb)
		closeStore = func() { rdb.Close() }

	default:
		logger.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown store backend")
	}
	defer closeStore()

	if err := store.Init(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize stock store")
	}

	// Warehouse-of-record connection
	conn, err := grpc.NewClient(cfg.WarehouseAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to dial warehouse")
	}
	defer conn.Close()
	wh := warehouse.NewGRPCClient(conn)

	// Reconciler + cache service + sync scheduler
	reconciler := service.NewReconciler(store, wh, cfg.ReconcileQueueSize, logger)
	reconciler.Start(cfg.ReconcileWorkers)

	cache := service.NewStockCache(store, wh, reconciler, logger)

	scheduler := service.NewScheduler(store, reconciler, time.Duration(cfg.SyncIntervalSec)*time.Second, logger)
	scheduler.Start(ctx)

	// HTTP API
	httpHandler := handler.NewHTTPHandler(cache)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/stock", httpHandler.GetStock)
	mux.HandleFunc("/api/retrieve", httpHandler.RetrieveStock)
	mux.HandleFunc("/api/add", httpHandler.AddStock)

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: mux,
	}

	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info().Msg("HTTP server stopped")

	// Stop the scheduler, then drain the reconcile queue.
	cancel()
	reconciler.Close()
	logger.Info().Msg("reconciler drained")
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.AppEnv == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
