// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prestigeweddings/storefront-backend/internal/config"
	"github.com/prestigeweddings/storefront-backend/internal/domain/catalog"
	redisdb "github.com/prestigeweddings/storefront-backend/internal/infrastructure/database/redis"
	"github.com/prestigeweddings/storefront-backend/internal/infrastructure/session"
	httpserver "github.com/prestigeweddings/storefront-backend/internal/interfaces/http"
	"github.com/prestigeweddings/storefront-backend/internal/interfaces/http/middleware"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Build the session store
	var (
		store       session.Store
		redisClient *goredis.Client
	)
	switch cfg.Session.Backend {
	case "redis":
		conn, err := redisdb.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		redisClient = conn.GetClient()
		store = session.NewRedisStore(redisClient, cfg.Session.TTL)
	case "memory":
		memStore := session.NewMemoryStore(cfg.Session.TTL)
		defer memStore.Close()
		store = memStore
	}

	// Create and start HTTP server
	server := httpserver.NewServer(cfg, catalog.Default(), store, redisClient, logger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logger.Info("Server shutdown completed")
}
