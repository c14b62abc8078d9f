package session

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *goredis.Client {
	t.Helper()

	opts, err := goredis.ParseURL("redis://localhost:6379/15")
	require.NoError(t, err)

	client := goredis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skip("Redis not available for testing")
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisRevocationStore(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	store := NewRedisRevocationStore(client)

	tokenID := "test-" + time.Now().Format("150405.000000000")

	revoked, err := store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, tokenID, time.Minute))

	revoked, err = store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisRevocationStore_Unavailable(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "localhost:9999"})
	defer client.Close()

	store := NewRedisRevocationStore(client)
	_, err := store.IsRevoked(context.Background(), "any")
	assert.Error(t, err)
}
