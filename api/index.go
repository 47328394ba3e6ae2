package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/adapters/backend"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/config"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/banner"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/catalog"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/services"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
)

var mux http.Handler

func init() {
	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.AppEnv)

	api := backend.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	aggregator, err := catalog.NewAggregator(64)
	if err != nil {
		panic(err)
	}

	// Serverless instances don't run background work between requests, so
	// the rotator stays on its first slide and the page script advances it.
	rotator := banner.NewRotator(banner.Slides, cfg.BannerInterval)

	mux = handler.NewRouter(cfg, handler.Services{
		Storefront: services.NewStorefrontService(api),
		Admin:      services.NewAdminService(api, aggregator),
		Auth:       services.NewAuthService(api),
		Rotator:    rotator,
	})
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
