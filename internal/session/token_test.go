package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecodive/backoffice-server-go/internal/model"
)

type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newMemoryRevocations() *memoryRevocations {
	return &memoryRevocations{revoked: make(map[string]time.Duration)}
}

func (m *memoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.revoked[tokenID] = ttl
	return nil
}

func (m *memoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.revoked[tokenID]
	return ok, nil
}

func testAccount() *model.SanitizedAccount {
	return &model.SanitizedAccount{
		ID:        1,
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@ecodive.com",
		Role:      "Admin",
	}
}

func TestManager_IssueAndParse(t *testing.T) {
	ctx := context.Background()
	m := NewManager("test-secret", "ecodive-test", 0, newMemoryRevocations())

	token, issued, err := m.Issue(testAccount())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, issued.TokenID())

	_, expires := issued.ExpiresAt()
	assert.False(t, expires, "zero ttl issues non-expiring tokens")

	parsed, err := m.Parse(ctx, token)
	require.NoError(t, err)
	assert.True(t, parsed.IsAuthenticated())
	assert.Equal(t, issued.TokenID(), parsed.TokenID())

	account, ok := parsed.Account()
	require.True(t, ok)
	assert.Equal(t, "admin@ecodive.com", account.Email)
	assert.Equal(t, "Admin", account.Role)
}

func TestManager_IssueRequiresAccount(t *testing.T) {
	m := NewManager("test-secret", "ecodive-test", 0, nil)
	_, _, err := m.Issue(nil)
	assert.Error(t, err)
}

func TestManager_ParseRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	m := NewManager("test-secret", "ecodive-test", 0, nil)

	t.Run("empty", func(t *testing.T) {
		_, err := m.Parse(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("other-secret", "ecodive-test", 0, nil)
		token, _, err := other.Issue(testAccount())
		require.NoError(t, err)

		_, err = m.Parse(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewManager("test-secret", "someone-else", 0, nil)
		token, _, err := other.Issue(testAccount())
		require.NoError(t, err)

		_, err = m.Parse(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{ID: "x", Issuer: "ecodive-test"},
			Account:          *testAccount(),
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(ctx, signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestManager_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	m := NewManager("test-secret", "ecodive-test", time.Hour, nil)
	m.now = func() time.Time { return now }

	token, issued, err := m.Issue(testAccount())
	require.NoError(t, err)

	expiresAt, ok := issued.ExpiresAt()
	require.True(t, ok)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	_, err = m.Parse(ctx, token)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = m.Parse(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Revoke(t *testing.T) {
	ctx := context.Background()
	store := newMemoryRevocations()
	m := NewManager("test-secret", "ecodive-test", 0, store)

	token, issued, err := m.Issue(testAccount())
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, issued))
	assert.Equal(t, time.Duration(0), store.revoked[issued.TokenID()], "non-expiring tokens are revoked without ttl")

	_, err = m.Parse(ctx, token)
	assert.ErrorIs(t, err, ErrRevokedToken)
}

func TestManager_RevokeUsesRemainingLifetime(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newMemoryRevocations()

	m := NewManager("test-secret", "ecodive-test", time.Hour, store)
	m.now = func() time.Time { return now }

	_, issued, err := m.Issue(testAccount())
	require.NoError(t, err)

	now = now.Add(15 * time.Minute)
	require.NoError(t, m.Revoke(ctx, issued))
	assert.Equal(t, 45*time.Minute, store.revoked[issued.TokenID()])
}

func TestManager_RevokeEmptySessionIsNoop(t *testing.T) {
	store := newMemoryRevocations()
	m := NewManager("test-secret", "ecodive-test", 0, store)

	require.NoError(t, m.Revoke(context.Background(), Session{}))
	assert.Empty(t, store.revoked)
}

func TestManager_RevocationLookupFailureAcceptsToken(t *testing.T) {
	ctx := context.Background()
	store := newMemoryRevocations()
	m := NewManager("test-secret", "ecodive-test", 0, store)

	token, _, err := m.Issue(testAccount())
	require.NoError(t, err)

	store.err = errors.New("connection refused")
	parsed, err := m.Parse(ctx, token)
	require.NoError(t, err)
	assert.True(t, parsed.IsAuthenticated())
}
