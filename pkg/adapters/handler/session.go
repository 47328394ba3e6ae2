package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

const (
	// TokenCookie holds the admin bearer token
	TokenCookie = "adminToken"
	flashCookie = "flash"
)

// SessionStore keeps the admin session in a cookie. The token is stored
// verbatim and never inspected.
type SessionStore struct {
	secure bool
}

func NewSessionStore(secure bool) *SessionStore {
	return &SessionStore{secure: secure}
}

func (s *SessionStore) Load(r *http.Request) domain.Session {
	cookie, err := r.Cookie(TokenCookie)
	if err != nil {
		return domain.Session{}
	}
	return domain.Session{Token: cookie.Value}
}

func (s *SessionStore) Save(w http.ResponseWriter, session domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetFlash queues a toast for the next rendered page.
func (s *SessionStore) SetFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the queued toast, if any, and clears it.
func (s *SessionStore) PopFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
