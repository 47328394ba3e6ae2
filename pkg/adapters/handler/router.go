package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/config"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/banner"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

// Services bundles what the storefront router needs
type Services struct {
	Storefront ports.StorefrontService
	Admin      ports.AdminService
	Auth       ports.AuthService
	Rotator    *banner.Rotator
}

// NewRouter creates and configures the storefront router
func NewRouter(cfg *config.Config, svc Services) http.Handler {
	renderer := NewRenderer()
	sessions := NewSessionStore(cfg.IsProduction())

	// Initialize Handlers
	h := NewHTTPHandler(svc.Storefront, svc.Rotator, renderer, sessions)
	ah := NewAdminHandler(svc.Admin, sessions, renderer, cfg.ToastDuration)
	authHandler := NewAuthHandler(svc.Auth, sessions, renderer)

	// Initialize Middleware
	mw := NewMiddleware(sessions)

	// Setup Router
	mux := http.NewServeMux()

	// Public Routes
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})
	mux.HandleFunc("GET /{$}", h.Home)
	mux.Handle("GET /static/", staticHandler())
	mux.HandleFunc("GET /admin/login", authHandler.LoginPage)
	mux.HandleFunc("POST /admin/login", authHandler.Login)
	mux.HandleFunc("GET /admin/logout", authHandler.Logout)

	// Protected Routes
	protectedMux := http.NewServeMux()
	protectedMux.HandleFunc("GET /admin", ah.Dashboard)
	protectedMux.HandleFunc("POST /admin/products", ah.Create)
	protectedMux.HandleFunc("GET /admin/products/{id}/edit", ah.Edit)
	protectedMux.HandleFunc("POST /admin/products/{id}", ah.Update)
	protectedMux.HandleFunc("GET /admin/products/{id}/delete", ah.ConfirmDelete)
	protectedMux.HandleFunc("POST /admin/products/{id}/delete", ah.Delete)

	// The more specific login/logout patterns above win over these.
	mux.Handle("/admin", mw.SessionGuard(protectedMux))
	mux.Handle("/admin/", mw.SessionGuard(protectedMux))

	return RequestLogger(mux)
}
