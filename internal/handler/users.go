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

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(middleware.RequireRoles(authz.Staff...)).Get("/", h.List)
	r.With(middleware.RequireRoles(authz.Staff...)).Get("/{id}", h.Get)
	r.With(middleware.RequireRoles(authz.AdminOnly...)).Post("/", h.Create)
	r.With(middleware.RequireRoles(authz.AdminOnly...)).Put("/{id}", h.Update)
	r.With(middleware.RequireRoles(authz.AdminOnly...)).Delete("/{id}", h.Delete)

	return r
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateUserParams
	if err := decodeJSON(r, &params); err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	user, err := h.users.Create(r.Context(), actor, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var params model.UpdateUserParams
	if err := decodeJSON(r, &params); err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	user, err := h.users.Update(r.Context(), actor, id, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	if err := h.users.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}
