package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/metrics"
	"github.com/ecodive/backoffice-server-go/internal/middleware"
	"github.com/ecodive/backoffice-server-go/internal/session"
)

// LoginView is where a navigation without any session ends up. The client
// renders its login form at the root.
const LoginView = "/"

// DefaultViewRoles lists the gated SPA views and the roles that may open
// them. Views not listed here, such as the login page, are public.
var DefaultViewRoles = map[string][]string{
	"/dashboard":        authz.Staff,
	"/calendar":         authz.Staff,
	"/users":            authz.Staff,
	"/businesses":       authz.Staff,
	"/edit-profile":     authz.Staff,
	"/team":             authz.AdminOnly,
	"/add-team-member":  authz.AdminOnly,
	"/add-user":         authz.AdminOnly,
	"/add-business":     authz.AdminOnly,
	"/support/messages": authz.AdminOnly,
}

// SPAHandler serves the built front end and falls back to index.html for
// client-side routes. Gated views are checked against the session the
// view auth middleware attached.
type SPAHandler struct {
	staticDir string
	indexFile string
	viewRoles map[string][]string
}

func NewSPAHandler(staticDir string, viewRoles map[string][]string) *SPAHandler {
	return &SPAHandler{
		staticDir: staticDir,
		indexFile: "index.html",
		viewRoles: viewRoles,
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)

	if urlPath == "/api" || strings.HasPrefix(urlPath, "/api/") {
		http.NotFound(w, r)
		return
	}

	filePath := filepath.Join(h.staticDir, filepath.FromSlash(urlPath))
	info, err := os.Stat(filePath)
	if err == nil && !info.IsDir() {
		http.ServeFile(w, r, filePath)
		return
	}

	if target, denied := h.gate(r, urlPath); denied {
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	indexPath := filepath.Join(h.staticDir, h.indexFile)
	if _, err := os.Stat(indexPath); err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, indexPath)
}

// gate reports whether the view at urlPath is closed to the caller and, if
// so, where to send them.
func (h *SPAHandler) gate(r *http.Request, urlPath string) (string, bool) {
	roles, gated := h.viewRoles[urlPath]
	if !gated {
		return "", false
	}

	s := session.FromContext(r.Context())
	if s.CanAccess(roles...) {
		return "", false
	}

	metrics.AccessDeniedTotal.WithLabelValues("view").Inc()
	// Denied on the fallback itself: either no session, or a role that opens
	// nothing. Both go back to the login page.
	if urlPath == middleware.FallbackView {
		return LoginView, true
	}
	return middleware.FallbackView, true
}
