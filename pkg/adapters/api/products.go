package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

type ProductHandler struct {
	service ports.ProductService
	log     zerolog.Logger
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service, log: logger.Component("catalog_api")}
}

// List public (active) products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListPublic(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list products")
		sendJSONError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}
	sendJSON(w, http.StatusOK, products)
}

// ListAdmin returns every product, active or not
func (h *ProductHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list admin products")
		sendJSONError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}
	sendJSON(w, http.StatusOK, products)
}

// Create Product
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, err, "create product")
		return
	}
	h.audit(r, product.ID, "product created")
	sendJSON(w, http.StatusCreated, product)
}

// Update Product (full replacement of editable fields)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var in domain.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.writeServiceError(w, err, "update product")
		return
	}
	h.audit(r, id, "product updated")
	sendJSON(w, http.StatusOK, product)
}

// Delete Product
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, err, "delete product")
		return
	}
	h.audit(r, id, "product deleted")
	sendJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// audit records which admin changed a product
func (h *ProductHandler) audit(r *http.Request, id, msg string) {
	h.log.Info().Str("admin", SubjectFromContext(r.Context())).Str("product_id", id).Msg(msg)
}

// Redirect counts the click and sends the browser to the affiliate URL
func (h *ProductHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Record synchronously so the counter is current when the browser lands.
	target, err := h.service.Redirect(r.Context(), id, r.Header.Get("Referer"), r.UserAgent(), clientIP(r))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			sendJSONError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Error().Err(err).Str("product_id", id).Msg("redirect")
		sendJSONError(w, http.StatusInternalServerError, "Failed to redirect")
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

func (h *ProductHandler) writeServiceError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrInvalidProduct):
		sendJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		sendJSONError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, context.Canceled):
		sendJSONError(w, http.StatusRequestTimeout, "Request cancelled")
	default:
		h.log.Error().Err(err).Str("action", action).Msg("product operation failed")
		sendJSONError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
