package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/middleware"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/service"
)

type SupportHandler struct {
	support *service.SupportService
}

func NewSupportHandler(support *service.SupportService) *SupportHandler {
	return &SupportHandler{support: support}
}

func (h *SupportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(middleware.RequireSession).Post("/send-message", h.Send)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(authz.AdminOnly...))
		r.Get("/messages", h.List)
		r.Put("/messages/{id}", h.UpdateStatus)
	})

	return r
}

type sendMessageResponse struct {
	Message   string `json:"message"`
	MessageID int64  `json:"messageId"`
}

func (h *SupportHandler) Send(w http.ResponseWriter, r *http.Request) {
	var params model.CreateSupportMessageParams
	if err := decodeJSON(r, &params); err != nil {
		writeError(w, err)
		return
	}
	if params.UserAgent == nil {
		if ua := r.UserAgent(); ua != "" {
			params.UserAgent = &ua
		}
	}

	id, err := h.support.Send(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sendMessageResponse{
		Message:   "Support message sent successfully",
		MessageID: id,
	})
}

func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.support.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *SupportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var params model.UpdateSupportMessageParams
	if err := decodeJSON(r, &params); err != nil {
		writeError(w, err)
		return
	}

	message, err := h.support.UpdateStatus(r.Context(), id, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, message)
}
