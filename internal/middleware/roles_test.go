package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/session"
)

func TestRequireRoles(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(s *session.Session, roles ...string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("DELETE", "/api/users/3", nil)
		if s != nil {
			req = req.WithContext(session.WithSession(req.Context(), *s))
		}
		rec := httptest.NewRecorder()
		RequireRoles(roles...)(ok).ServeHTTP(rec, req)
		return rec
	}

	t.Run("no session is 401", func(t *testing.T) {
		rec := serve(nil, authz.AdminOnly...)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Authentication required", body["error"])
	})

	t.Run("wrong role is 403 with redirect", func(t *testing.T) {
		s := sessionFor("Viewer")
		rec := serve(&s, authz.AdminOnly...)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Insufficient permissions", body["error"])
		assert.Equal(t, "/dashboard", body["redirect"])
	})

	t.Run("role match is case-insensitive", func(t *testing.T) {
		s := sessionFor("admin")
		rec := serve(&s, authz.AdminOnly...)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("viewer reaches staff routes", func(t *testing.T) {
		s := sessionFor("Viewer")
		rec := serve(&s, authz.Staff...)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown role is forbidden everywhere", func(t *testing.T) {
		s := sessionFor("guest")
		rec := serve(&s, authz.Staff...)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
