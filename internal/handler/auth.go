package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/ecodive/backoffice-server-go/internal/audit"
	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/middleware"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/service"
	"github.com/ecodive/backoffice-server-go/internal/session"
)

// SessionIssuer signs and revokes session tokens.
type SessionIssuer interface {
	Issue(account *model.SanitizedAccount) (string, session.Session, error)
	Revoke(ctx context.Context, s session.Session) error
}

type AuthHandler struct {
	auth         *service.AuthService
	sessions     SessionIssuer
	activity     *service.ActivityLogger
	loginLimiter func(http.Handler) http.Handler
	sessionTTL   time.Duration
	secureCookie bool
}

func NewAuthHandler(
	auth *service.AuthService,
	sessions SessionIssuer,
	activity *service.ActivityLogger,
	loginLimiter func(http.Handler) http.Handler,
	sessionTTL time.Duration,
	secureCookie bool,
) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		sessions:     sessions,
		activity:     activity,
		loginLimiter: loginLimiter,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// RegisterRoutes adds the session endpoints directly under r; they sit at
// the API root rather than under a resource prefix.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	if h.loginLimiter != nil {
		r.With(h.loginLimiter).Post("/login", h.Login)
	} else {
		r.Post("/login", h.Login)
	}
	r.Post("/logout", h.Logout)
	r.With(middleware.RequireSession).Get("/session", h.Session)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string                  `json:"message"`
	User    *model.SanitizedAccount `json:"user"`
	Token   string                  `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, apperrors.ValidationError(apperrors.MsgCredentialsMissing))
		return
	}

	account, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeInvalidCredentials) {
			audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginFailure, Email: req.Email})
		}
		writeError(w, err)
		return
	}

	token, _, err := h.sessions.Issue(account)
	if err != nil {
		log.Error().Err(err).Int64("account_id", account.ID).Msg("failed to issue session token")
		writeError(w, apperrors.Internal("Login failed"))
		return
	}

	audit.LogFromRequest(r, audit.Event{
		Type:      audit.EventLoginSuccess,
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
	})
	h.activity.RecordBestEffort(r.Context(), account, model.ActionUserLogin,
		fmt.Sprintf("%s logged in", account.FullName()))

	middleware.SetSessionCookie(w, token, h.sessionTTL, h.secureCookie)
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		User:    account,
		Token:   token,
	})
}

// Logout revokes the presented token, if any, and always clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if s.IsAuthenticated() {
		if err := h.sessions.Revoke(r.Context(), s); err != nil {
			log.Warn().Err(err).Str("token_id", s.TokenID()).Msg("failed to revoke session token")
		}
		account, _ := s.Account()
		audit.LogFromRequest(r, audit.Event{Type: audit.EventLogout, AccountID: account.ID, Email: account.Email})
	}

	middleware.ClearSessionCookie(w, h.secureCookie)
	writeMessage(w, http.StatusOK, "Logged out")
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	account, _ := session.ActorFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{session.StorageKey: account})
}
