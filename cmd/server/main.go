package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"storefront/internal/config"
	"storefront/internal/core/auth"
	"storefront/internal/core/product"
	"storefront/internal/logger"
	"storefront/internal/storage/postgres"
	"storefront/internal/storage/redis"
	"storefront/internal/transport/rest"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if cfg.JWTSecret == "" {
		panic("FATAL: JWT_SECRET is mandatory for Server!")
	}

	dbPool, err := postgres.InitDB(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to init DB", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	redisClient, err := redis.NewClient(ctx, cfg, log)
	if err != nil {
		log.Error("failed to init redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	productRepo := postgres.NewProductRepository(dbPool)
	sessionStore := redis.NewSessionStore(redisClient)

	authService := auth.NewService(userRepo, sessionStore, cfg.JWTSecret, cfg.JWTExpiry)
	productService := product.NewService(productRepo)

	authHandler := rest.NewAuthHandler(authService)
	productHandler := rest.NewProductHandler(productService)

	router := rest.NewRouter(cfg, &rest.RouterDeps{
		Auth:    authHandler,
		Product: productHandler,

		AuthService: authService,
	})

	srv := rest.NewServer(router, cfg.Address)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				pingCtx, cancel := context.WithTimeout(gctx, 5*time.Second)
				if err := dbPool.Ping(pingCtx); err != nil {
					log.Error("postgres: ping failed", "error", err)
				}
				if err := redisClient.Ping(pingCtx).Err(); err != nil {
					log.Error("redis: ping failed", "error", err)
				}
				cancel()
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http: server error", "error", err)
	}

	log.Info("server stopped")
}
