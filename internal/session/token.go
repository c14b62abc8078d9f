package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ecodive/backoffice-server-go/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrRevokedToken = errors.New("session token revoked")
)

// RevocationStore remembers tokens that were logged out.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Account model.SanitizedAccount `json:"account"`
}

// Manager signs account snapshots into HS256 tokens and restores them.
type Manager struct {
	secret      []byte
	issuer      string
	ttl         time.Duration
	revocations RevocationStore
	now         func() time.Time
}

// NewManager creates a token manager. A ttl of zero issues tokens without
// expiry; they stay valid until revoked.
func NewManager(secret, issuer string, ttl time.Duration, revocations RevocationStore) *Manager {
	return &Manager{
		secret:      []byte(secret),
		issuer:      issuer,
		ttl:         ttl,
		revocations: revocations,
		now:         time.Now,
	}
}

// Issue signs a token for account and returns the matching session.
func (m *Manager) Issue(account *model.SanitizedAccount) (string, Session, error) {
	if account == nil {
		return "", Session{}, fmt.Errorf("issue token: account is required")
	}

	now := m.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  fmt.Sprintf("%d", account.ID),
			Issuer:   m.issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Account: *account,
	}

	var expiresAt time.Time
	if m.ttl > 0 {
		expiresAt = now.Add(m.ttl)
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, New(account, claims.ID, expiresAt), nil
}

// Parse validates a token and restores its session. Revocation lookups that
// fail are logged and the token is accepted.
func (m *Manager) Parse(ctx context.Context, tokenString string) (Session, error) {
	if tokenString == "" {
		return Session{}, ErrInvalidToken
	}

	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" || claims.Account.ID == 0 {
		return Session{}, fmt.Errorf("%w: missing claims", ErrInvalidToken)
	}

	if m.revocations != nil {
		revoked, err := m.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			log.Warn().Err(err).Str("token_id", claims.ID).Msg("revocation check failed, accepting token")
		} else if revoked {
			return Session{}, ErrRevokedToken
		}
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return New(&claims.Account, claims.ID, expiresAt), nil
}

// Revoke invalidates the session's token for the rest of its lifetime.
func (m *Manager) Revoke(ctx context.Context, s Session) error {
	if s.TokenID() == "" || m.revocations == nil {
		return nil
	}

	var ttl time.Duration
	if expiresAt, ok := s.ExpiresAt(); ok {
		ttl = expiresAt.Sub(m.now())
		if ttl <= 0 {
			return nil
		}
	}
	return m.revocations.Revoke(ctx, s.TokenID(), ttl)
}
