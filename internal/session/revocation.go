package session

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ecodive/backoffice-server-go/internal/redis"
)

// RedisRevocationStore keeps revoked token ids in Redis. A zero ttl keeps
// the entry until it is removed by hand, matching tokens that never expire.
type RedisRevocationStore struct {
	client goredis.UniversalClient
}

func NewRedisRevocationStore(client goredis.UniversalClient) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, redis.RevokedTokenKey(tokenID), "1", ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.client.Get(ctx, redis.RevokedTokenKey(tokenID)).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
