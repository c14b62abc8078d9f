package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ecodive/backoffice-server-go/internal/session"
)

// TokenParser restores a session from a signed token.
type TokenParser interface {
	Parse(ctx context.Context, token string) (session.Session, error)
}

// AuthMiddleware attaches the caller's session to the request context. It
// never rejects; RequireRoles decides what an empty session may reach.
type AuthMiddleware struct {
	tokens       TokenParser
	acceptCookie bool
}

// NewAuthMiddleware reads bearer tokens only. API mutations must not be
// authenticated by an ambient cookie.
func NewAuthMiddleware(tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// NewViewAuthMiddleware also accepts the session cookie, for page
// navigations where the browser cannot attach a header.
func NewViewAuthMiddleware(tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, acceptCookie: true}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.extractToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		s, err := m.tokens.Parse(r.Context(), token)
		if err != nil {
			log.Debug().Err(err).Str("path", r.URL.Path).Msg("auth middleware: rejected session token")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
	})
}

func (m *AuthMiddleware) extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	if m.acceptCookie {
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			return cookie.Value
		}
	}

	return ""
}
