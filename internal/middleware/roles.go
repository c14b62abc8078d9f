package middleware

import (
	"net/http"

	"github.com/ecodive/backoffice-server-go/internal/audit"
	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/httputil"
	"github.com/ecodive/backoffice-server-go/internal/metrics"
	"github.com/ecodive/backoffice-server-go/internal/session"
)

// FallbackView is where a client is sent when it may not see a view.
const FallbackView = "/dashboard"

// RequireRoles lets a request through only when its session holds one of
// roles. No session is 401; the wrong role is 403 with a redirect hint.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.FromContext(r.Context())

			if !s.IsAuthenticated() {
				metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
				httputil.WriteError(w, apperrors.Unauthorized("Authentication required"))
				return
			}

			if !s.CanAccess(roles...) {
				account, _ := s.Account()
				metrics.AccessDeniedTotal.WithLabelValues("forbidden").Inc()
				audit.LogFromRequest(r, audit.Event{
					Type:      audit.EventForbidden,
					AccountID: account.ID,
					Email:     account.Email,
					Role:      account.Role,
					Details:   map[string]any{"method": r.Method, "path": r.URL.Path},
				})
				httputil.WriteForbidden(w, FallbackView)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession admits any authenticated caller regardless of role.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.FromContext(r.Context()).IsAuthenticated() {
			metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
			httputil.WriteError(w, apperrors.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
