package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/middleware"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/service"
	"github.com/ecodive/backoffice-server-go/internal/session"
)

// Layouts accepted for event times, tried in order. Zoneless layouts are
// read in the server's local time zone.
var eventTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
}

type CalendarHandler struct {
	calendar *service.CalendarService
}

func NewCalendarHandler(calendar *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

func (h *CalendarHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(authz.Staff...))
		r.Get("/", h.List)
		r.Get("/current-month", h.CurrentMonth)
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

type eventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Location    *string `json:"location"`
	Status      string  `json:"status"`
}

func (req eventRequest) params() (model.EventParams, error) {
	start, err := parseEventTime("start_time", req.StartTime)
	if err != nil {
		return model.EventParams{}, err
	}
	end, err := parseEventTime("end_time", req.EndTime)
	if err != nil {
		return model.EventParams{}, err
	}
	return model.EventParams{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		Location:    req.Location,
		Status:      req.Status,
	}, nil
}

// parseEventTime leaves an empty value as the zero time so validation
// reports it as missing.
func parseEventTime(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.InvalidInput(field, "expected YYYY-MM-DD HH:mm:ss or RFC 3339")
}

func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.calendar.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *CalendarHandler) CurrentMonth(w http.ResponseWriter, r *http.Request) {
	events, err := h.calendar.ListCurrentMonth(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	event, err := h.calendar.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	params, err := decodeEvent(r)
	if err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	event, err := h.calendar.Create(r.Context(), actor, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	params, err := decodeEvent(r)
	if err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	event, err := h.calendar.Update(r.Context(), actor, id, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	actor, _ := session.ActorFromContext(r.Context())
	if err := h.calendar.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Event deleted successfully")
}

func decodeEvent(r *http.Request) (model.EventParams, error) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		return model.EventParams{}, err
	}
	return req.params()
}
