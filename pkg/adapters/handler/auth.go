package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

// LoginView is the admin login form
type LoginView struct {
	Page
	Email string
	Error string
}

type AuthHandler struct {
	service  ports.AuthService
	sessions *SessionStore
	renderer *Renderer
	log      zerolog.Logger
}

func NewAuthHandler(service ports.AuthService, sessions *SessionStore, renderer *Renderer) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		renderer: renderer,
		log:      logger.Component("auth"),
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login.html", LoginView{Page: Page{Title: "Admin Login"}})
}

// Login exchanges the submitted credentials for a token. On failure the
// form is shown again with the backend's message and no session is stored.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	session, err := h.service.Login(r.Context(), email, password)
	if err != nil {
		h.log.Warn().Err(err).Str("email", email).Msg("login failed")
		h.renderer.Render(w, http.StatusUnauthorized, "login.html", LoginView{
			Page:  Page{Title: "Admin Login"},
			Email: email,
			Error: domain.UserMessage(err),
		})
		return
	}

	h.sessions.Save(w, session)
	h.log.Info().Str("email", email).Msg("login successful")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}
