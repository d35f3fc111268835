// Package server boots the storefront: config, database, cache,
// storage, queue workers, the feed hub and both servers.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/cartinhas/app/jobs"
	"github.com/shashiranjanraj/cartinhas/app/repositories"
	"github.com/shashiranjanraj/cartinhas/app/routes"
	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/config"
	"github.com/shashiranjanraj/cartinhas/internal/scryfall"
	"github.com/shashiranjanraj/cartinhas/pkg/cache"
	"github.com/shashiranjanraj/cartinhas/pkg/database"
	"github.com/shashiranjanraj/cartinhas/pkg/feed"
	"github.com/shashiranjanraj/cartinhas/pkg/grpcserver"
	"github.com/shashiranjanraj/cartinhas/pkg/logger"
	"github.com/shashiranjanraj/cartinhas/pkg/metrics"
	"github.com/shashiranjanraj/cartinhas/pkg/middleware"
	"github.com/shashiranjanraj/cartinhas/pkg/migration"
	"github.com/shashiranjanraj/cartinhas/pkg/queue"
	"github.com/shashiranjanraj/cartinhas/pkg/reqid"
	"github.com/shashiranjanraj/cartinhas/pkg/router"
	"github.com/shashiranjanraj/cartinhas/pkg/storage"
)

// Start boots every subsystem and serves until SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if uri := config.LogMongoURI(); uri != "" {
		handler, err := logger.NewMongoHandler(uri, config.LogMongoDB(), "logs")
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			logger.Attach(handler)
			defer handler.Close()
		}
	}

	if err := database.Connect(); err != nil {
		return err
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cache.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, carts fall back to memory", "error", err)
	}
	defer cache.Close()

	storage.Connect()

	if err := migration.New(database.DB).Run(); err != nil {
		return err
	}

	queue.UseDB(database.DB)
	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	jobs.RegisterAll()
	queue.StartWorkers(ctx, 4)

	hub := feed.NewHub()

	var cartStore services.CartStore
	if cache.RDB != nil {
		cartStore = services.NewRedisCartStore()
	} else {
		cartStore = services.NewMemoryCartStore()
	}

	users := repositories.NewUserRepository()
	cards := repositories.NewCardRepository(hub)
	orders := repositories.NewOrderRepository(hub)

	deps := routes.Services{
		Auth:     services.NewAuthService(users),
		Cart:     services.NewCartService(cartStore, cards),
		Catalog:  services.NewCatalogService(cards),
		Checkout: services.NewCheckoutService(orders, cartStore),
		Orders:   services.NewOrderService(orders),
		Search:   scryfall.NewClient(),
		Hub:      hub,
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recover,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS,
		middleware.RateLimit(300, time.Minute),
	)
	routes.RegisterAPI(r, deps)

	if port := config.GRPCPort(); port != "" {
		srv, _, err := grpcserver.Start(port)
		if err != nil {
			return err
		}
		defer grpcserver.Stop(srv)
	}

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", httpSrv.Addr, "env", config.AppEnv())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	return nil
}
