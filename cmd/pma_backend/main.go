package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/pocketmoney/pocket_money_app/internal/adapters/amqpnotify"
	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/pocketmoney/pocket_money_app/internal/core/services"
	"github.com/pocketmoney/pocket_money_app/internal/handlers"
	"github.com/pocketmoney/pocket_money_app/internal/middleware"
	"github.com/pocketmoney/pocket_money_app/internal/repositories/kvstore"
	"github.com/pocketmoney/pocket_money_app/internal/repositories/persist"
	"github.com/pocketmoney/pocket_money_app/pkg/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := kvstore.New(ctx, kvstore.Backend(cfg.StoreBackend), kvstore.Options{
		SQLiteDBPath: cfg.SQLiteDBPath,
		RedisURL:     cfg.RedisURL,
		DatabaseURL:  cfg.DatabaseURL,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing store", slog.String("error", cerr.Error()))
		}
	}()

	repo := persist.NewLedgerRepository(store, logger)

	// Maturity notifications are optional; the engine runs without a broker.
	var notifier portssvc.MaturityNotifier
	if cfg.AMQPURL != "" {
		publisher, err := amqpnotify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, continuing without maturity notifications", slog.String("error", err.Error()))
		} else {
			defer publisher.Close()
			notifier = publisher
			logger.Info("AMQP maturity notifications enabled", slog.String("exchange", cfg.AMQPExchange))
		}
	}

	container, err := services.NewServiceContainer(ctx, repo, services.NewSystemClock(), notifier)
	if err != nil {
		logger.Error("Failed to initialize ledger engine", slog.String("error", err.Error()))
		os.Exit(1)
	}

	scheduler := services.NewMaturationScheduler(container.Ledger, cfg.MaturationCheckInterval, logger)
	scheduler.Start()
	defer scheduler.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
