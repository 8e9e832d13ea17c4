// Package redis keeps the refresh token denylist in Redis, so every
// replica behind a load balancer sees a logout at once.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tack:revoked:"

// minTTL keeps entries for tokens that verified inside the clock leeway
// but are already past exp.
const minTTL = time.Minute

// Revocations implements store.Revocations on top of expiring keys.
type Revocations struct {
	client *redis.Client
	now    func() time.Time
}

var _ store.Revocations = (*Revocations)(nil)

// Connect parses a redis:// URL, dials and pings the server.
func Connect(ctx context.Context, url string) (*Revocations, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: failed to ping server: %w", err)
	}

	return New(client), nil
}

func New(client *redis.Client) *Revocations {
	return &Revocations{client: client, now: time.Now}
}

// Revoke stores the jti until the token would have expired on its own.
// SETNX makes the first caller the only one that sees true.
func (r *Revocations) Revoke(ctx context.Context, jti string, expiresAt time.Time) (bool, error) {
	ttl := max(expiresAt.Sub(r.now()), minTTL)
	ok, err := r.client.SetNX(ctx, keyPrefix+jti, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis: revoke: %w", err)
	}
	return ok, nil
}

func (r *Revocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.client.Get(ctx, keyPrefix+jti).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	}
	return false, fmt.Errorf("redis: lookup: %w", err)
}

// DeleteExpiredRevocations is a no-op: keys carry their own TTL.
func (r *Revocations) DeleteExpiredRevocations(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func (r *Revocations) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Revocations) Close() error {
	return r.client.Close()
}
