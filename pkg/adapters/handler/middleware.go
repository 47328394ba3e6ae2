package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

type contextKey string

const sessionKey contextKey = "admin_session"

const loginPath = "/admin/login"

type Middleware struct {
	sessions *SessionStore
}

func NewMiddleware(sessions *SessionStore) *Middleware {
	return &Middleware{sessions: sessions}
}

// SessionGuard sends visitors without a token to the login view. The token
// itself is not checked; the backend rejects bad ones.
func (m *Middleware) SessionGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := m.sessions.Load(r)
		if !session.Authenticated() {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// WithSession attaches the admin session to ctx.
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the session placed by SessionGuard. The zero
// Session is returned when there is none.
func SessionFromContext(ctx context.Context) domain.Session {
	session, _ := ctx.Value(sessionKey).(domain.Session)
	return session
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one line per request
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
