package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/middleware"
	"github.com/ecodive/backoffice-server-go/internal/service"
)

// maxActivityLimit caps the optional ?limit= on the recent feed.
const maxActivityLimit = 100

type ActivityHandler struct {
	activity *service.ActivityLogger
}

func NewActivityHandler(activity *service.ActivityLogger) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

func (h *ActivityHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequireRoles(authz.Staff...))

	r.Get("/", h.Recent)
	r.Get("/user/{userId}", h.ByUser)

	return r
}

func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := queryInt(r, "limit")
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	activities, err := h.activity.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	activities, err := h.activity.ListByActor(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}
