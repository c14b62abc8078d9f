package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// API groups the handlers served under /api.
type API struct {
	Auth       *AuthHandler
	Team       *TeamHandler
	Users      *UserHandler
	DiveClubs  *DiveClubHandler
	Calendar   *CalendarHandler
	Activities *ActivityHandler
	Dashboard  *DashboardHandler
	Support    *SupportHandler
}

// Routes builds the /api router. authenticate attaches the caller's session;
// each resource router enforces its own role requirements.
func (a *API) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authenticate)

	a.Auth.RegisterRoutes(r)
	r.Mount("/team-members", a.Team.Routes())
	r.Mount("/users", a.Users.Routes())
	r.Mount("/dive-clubs", a.DiveClubs.Routes())
	r.Mount("/calendar", a.Calendar.Routes())
	r.Mount("/activities", a.Activities.Routes())
	r.Mount("/dashboard", a.Dashboard.Routes())
	r.Mount("/support", a.Support.Routes())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})

	return r
}
