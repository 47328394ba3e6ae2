package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

type AuthHandler struct {
	credentials ports.CredentialService
	log         zerolog.Logger
}

func NewAuthHandler(credentials ports.CredentialService) *AuthHandler {
	return &AuthHandler{credentials: credentials, log: logger.Component("catalog_auth")}
}

// Login answers {token} on success and {message} otherwise
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.credentials.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.Warn().Str("email", req.Email).Msg("rejected admin login")
			sendJSONError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
			return
		}
		h.log.Error().Err(err).Msg("issue token")
		sendJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.log.Info().Str("email", req.Email).Msg("admin logged in")
	sendJSON(w, http.StatusOK, domain.LoginResponse{Token: token})
}
