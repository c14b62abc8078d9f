package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/middleware"
	"github.com/ecodive/backoffice-server-go/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequireRoles(authz.Staff...))

	r.Get("/", h.Stats)
	r.Get("/stats", h.Stats)

	return r
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
