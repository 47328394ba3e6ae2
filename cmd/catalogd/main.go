package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/adapters/api"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/config"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/services"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.AppEnv)

	// Initialize Repository
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer repo.Close()

	// Initialize Services
	products := services.NewProductService(repo)
	credentials, err := services.NewCredentialService(cfg.AdminEmail, cfg.AdminPassword, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize admin credentials")
	}

	server := &http.Server{
		Addr:         ":" + cfg.CatalogPort,
		Handler:      api.NewRouter(products, credentials),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.CatalogPort).Msg("Catalog API starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down catalog API...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Catalog API stopped")
}
