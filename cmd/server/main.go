package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/adapters/backend"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/config"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/banner"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/catalog"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/services"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
)

const analyticsCacheEntries = 64

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.AppEnv)

	// Initialize Backend Client
	api := backend.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	aggregator, err := catalog.NewAggregator(analyticsCacheEntries)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize analytics cache")
	}
	defer aggregator.Close()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	rotator := banner.NewRotator(banner.Slides, cfg.BannerInterval)
	go rotator.Run(ctx)

	// Initialize Router
	mux := handler.NewRouter(cfg, handler.Services{
		Storefront: services.NewStorefrontService(api),
		Admin:      services.NewAdminService(api, aggregator),
		Auth:       services.NewAuthService(api),
		Rotator:    rotator,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
	}

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("api_base_url", cfg.APIBaseURL).
			Msg("Storefront starting")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped gracefully")
}
