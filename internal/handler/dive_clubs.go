package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/middleware"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/service"
	"github.com/ecodive/backoffice-server-go/internal/session"
)

type DiveClubHandler struct {
	clubs *service.DiveClubService
}

func NewDiveClubHandler(clubs *service.DiveClubService) *DiveClubHandler {
	return &DiveClubHandler{clubs: clubs}
}

func (h *DiveClubHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(authz.Staff...))
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(authz.AdminOnly...))
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

func (h *DiveClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubs.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}

func (h *DiveClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	club, err := h.clubs.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

func (h *DiveClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.DiveClubParams
	if err := decodeJSON(r, &params); err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	club, err := h.clubs.Create(r.Context(), actor, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, club)
}

func (h *DiveClubHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var params model.DiveClubParams
	if err := decodeJSON(r, &params); err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	club, err := h.clubs.Update(r.Context(), actor, id, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

func (h *DiveClubHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	if err := h.clubs.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Dive club deleted successfully")
}
