package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ecodive:"

type Client struct {
	*redis.Client
}

func NewClient(ctx context.Context, redisURL string) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Client{client}, nil
}

// Ping is used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.Client.Close()
}

// LoginAttemptsKey buckets login attempts per client address.
func LoginAttemptsKey(clientIP string) string {
	return fmt.Sprintf("%sratelimit:login:%s", keyPrefix, strings.ToLower(clientIP))
}

func RevokedTokenKey(tokenID string) string {
	return fmt.Sprintf("%ssession:revoked:%s", keyPrefix, tokenID)
}
