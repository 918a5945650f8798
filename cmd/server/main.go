// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/panierprix/panier-backend/internal/catalog"
	"github.com/panierprix/panier-backend/internal/catalog/fakestore"
	"github.com/panierprix/panier-backend/internal/catalog/store"
	"github.com/panierprix/panier-backend/internal/config"
	"github.com/panierprix/panier-backend/internal/database"
	"github.com/panierprix/panier-backend/internal/router"
	"github.com/panierprix/panier-backend/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := logrus.New()
	if cfg.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// Select the catalog source
	var source catalog.Source
	var directory catalog.Directory

	switch cfg.Catalog.Source {
	case "database":
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer database.Close(db)

		if err := database.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		if err := database.SeedInitialData(db); err != nil {
			log.Fatal("Failed to seed initial data:", err)
		}

		st := store.NewStore(db)
		source, directory = st, st
	default:
		source = fakestore.NewClient(cfg.Catalog.FakeStoreBaseURL, logger)
		directory = fakestore.NewStaticDirectory()
	}

	// Optional catalog cache
	var cache *services.CacheService
	if cfg.Catalog.CacheEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cache = services.NewCacheService(rdb, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second, logger)
		logger.WithField("ttl_seconds", cfg.Catalog.CacheTTLSeconds).Info("Catalog cache enabled")
	}

	catalogService := services.NewCatalogService(source, directory, cache, logger)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(catalogService, cfg, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.WithFields(logrus.Fields{
			"port":   cfg.Server.Port,
			"source": cfg.Catalog.Source,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
