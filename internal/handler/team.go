package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecodive/backoffice-server-go/internal/audit"
	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/middleware"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/service"
	"github.com/ecodive/backoffice-server-go/internal/session"
)

type TeamHandler struct {
	team *service.TeamService
}

func NewTeamHandler(team *service.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

func (h *TeamHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(authz.Staff...))
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		// Viewers may edit their own profile; the service checks ownership.
		r.Put("/{id}", h.Update)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(authz.AdminOnly...))
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.team.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	member, err := h.team.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// Create accepts JSON or a form post from the add-member page.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateTeamMemberParams
	if isFormRequest(r) {
		if err := parseForm(r); err != nil {
			writeError(w, err)
			return
		}
		params = model.CreateTeamMemberParams{
			FirstName:    formString(r, "first_name"),
			LastName:     formString(r, "last_name"),
			Email:        formString(r, "email"),
			Password:     formString(r, "password"),
			Role:         formString(r, "role"),
			ProfileImage: formValue(r, "profile_image"),
		}
	} else if err := decodeJSON(r, &params); err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	member, err := h.team.Create(r.Context(), actor, params)
	if err != nil {
		writeError(w, err)
		return
	}
	auditAccountChange(r, audit.EventAccountCreate, actor, member.ID, map[string]any{"role": member.Role})
	writeJSON(w, http.StatusCreated, member)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var params model.UpdateTeamMemberParams
	if isFormRequest(r) {
		if err := parseForm(r); err != nil {
			writeError(w, err)
			return
		}
		params = model.UpdateTeamMemberParams{
			FirstName:    formValue(r, "first_name"),
			LastName:     formValue(r, "last_name"),
			Email:        formValue(r, "email"),
			Password:     formValue(r, "password"),
			Role:         formValue(r, "role"),
			ProfileImage: formValue(r, "profile_image"),
		}
	} else if err := decodeJSON(r, &params); err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	member, err := h.team.Update(r.Context(), actor, id, params)
	if err != nil {
		writeError(w, err)
		return
	}
	auditAccountChange(r, audit.EventAccountUpdate, actor, member.ID, map[string]any{
		"role_submitted":     params.Role != nil,
		"password_submitted": params.Password != nil && *params.Password != "",
	})
	writeJSON(w, http.StatusOK, member)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	if err := h.team.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	auditAccountChange(r, audit.EventAccountDelete, actor, id, nil)
	writeMessage(w, http.StatusOK, "Team member deleted successfully")
}

func auditAccountChange(r *http.Request, eventType audit.EventType, actor *model.SanitizedAccount, targetID int64, details map[string]any) {
	if details == nil {
		details = map[string]any{}
	}
	details["target_id"] = targetID
	audit.LogFromRequest(r, audit.Event{
		Type:      eventType,
		AccountID: actor.ID,
		Email:     actor.Email,
		Role:      actor.Role,
		Details:   details,
	})
}
