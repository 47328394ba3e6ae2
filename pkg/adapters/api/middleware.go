package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

type contextKey string

const subjectKey contextKey = "admin_subject"

type Middleware struct {
	credentials ports.CredentialService
}

func NewMiddleware(credentials ports.CredentialService) *Middleware {
	return &Middleware{credentials: credentials}
}

// BearerAuth verifies the JWT in the Authorization header
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			sendJSONError(w, http.StatusUnauthorized, "Missing authorization token")
			return
		}

		subject, err := m.credentials.Verify(parts[1])
		if err != nil {
			log.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected bearer token")
			sendJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SubjectFromContext returns the authenticated admin, if any.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey).(string)
	return subject
}
