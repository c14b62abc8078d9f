// Package session carries the authenticated account snapshot through a
// request. A Session holds exactly one sanitized account or nothing; it is
// passed down explicitly via context and never stored globally.
package session

import (
	"context"
	"time"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/model"
)

// StorageKey is the client-side key under which the account record is kept.
const StorageKey = "user"

// CookieName carries the token on plain browser navigations so the view
// gate can see the session.
const CookieName = "ecodive_session"

type Session struct {
	account   *model.SanitizedAccount
	tokenID   string
	expiresAt time.Time
}

// New builds a session around an account snapshot. A zero expiresAt means
// the session does not expire.
func New(account *model.SanitizedAccount, tokenID string, expiresAt time.Time) Session {
	if account == nil {
		return Session{}
	}
	snapshot := *account
	return Session{account: &snapshot, tokenID: tokenID, expiresAt: expiresAt}
}

// Account returns a copy of the snapshot.
func (s Session) Account() (*model.SanitizedAccount, bool) {
	if s.account == nil {
		return nil, false
	}
	snapshot := *s.account
	return &snapshot, true
}

func (s Session) IsAuthenticated() bool {
	return s.account != nil
}

func (s Session) TokenID() string {
	return s.tokenID
}

func (s Session) ExpiresAt() (time.Time, bool) {
	return s.expiresAt, !s.expiresAt.IsZero()
}

func (s Session) Role() authz.Role {
	if s.account == nil {
		return authz.RoleNone
	}
	return authz.ParseRole(s.account.Role)
}

func (s Session) CanAccess(roles ...string) bool {
	return authz.CanAccess(s.account, roles...)
}

type contextKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request's session, or an empty one.
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(contextKey{}).(Session); ok {
		return s
	}
	return Session{}
}

// ActorFromContext is the account mutations are attributed to.
func ActorFromContext(ctx context.Context) (*model.SanitizedAccount, bool) {
	return FromContext(ctx).Account()
}
