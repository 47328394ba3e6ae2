package api

import (
	"net/http"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

// NewRouter wires the catalog REST API
func NewRouter(products ports.ProductService, credentials ports.CredentialService) http.Handler {
	h := NewProductHandler(products)
	auth := NewAuthHandler(credentials)
	mw := NewMiddleware(credentials)

	mux := http.NewServeMux()

	// Public Routes
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		sendJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	mux.HandleFunc("GET /api/products", h.List)
	mux.HandleFunc("GET /api/products/{id}/redirect", h.Redirect)
	mux.HandleFunc("POST /api/auth/login", auth.Login)

	// Protected Routes
	mux.Handle("GET /api/products/admin", mw.BearerAuth(http.HandlerFunc(h.ListAdmin)))
	mux.Handle("POST /api/products", mw.BearerAuth(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/products/{id}", mw.BearerAuth(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/products/{id}", mw.BearerAuth(http.HandlerFunc(h.Delete)))

	return withCORS(mux)
}

// withCORS lets a browser-hosted front end on another origin call the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
