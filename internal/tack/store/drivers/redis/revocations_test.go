package redis_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tackredis "github.com/aussiebroadwan/tack/internal/tack/store/drivers/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container in short mode")
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestRevocations(t *testing.T) {
	ctx := context.Background()
	url := startRedis(t)
	r, err := tackredis.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	raw := redis.NewClient(opts)
	t.Cleanup(func() { _ = raw.Close() })

	t.Run("revoked jti is reported", func(t *testing.T) {
		inserted, err := r.Revoke(ctx, "jti-1", time.Now().Add(time.Minute))
		require.NoError(t, err)
		require.True(t, inserted)

		revoked, err := r.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		require.True(t, revoked)
	})

	t.Run("unknown jti is not revoked", func(t *testing.T) {
		revoked, err := r.IsRevoked(ctx, "jti-unknown")
		require.NoError(t, err)
		require.False(t, revoked)
	})

	t.Run("only one concurrent revoke wins", func(t *testing.T) {
		const callers = 16
		var wins atomic.Int32
		var wg sync.WaitGroup
		for range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				inserted, err := r.Revoke(ctx, "jti-race", time.Now().Add(time.Hour))
				if err == nil && inserted {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		require.EqualValues(t, 1, wins.Load())
	})

	t.Run("entries live as long as the token", func(t *testing.T) {
		_, err := r.Revoke(ctx, "jti-day", time.Now().Add(24*time.Hour))
		require.NoError(t, err)

		ttl, err := raw.TTL(ctx, "tack:revoked:jti-day").Result()
		require.NoError(t, err)
		require.InDelta(t, (24 * time.Hour).Seconds(), ttl.Seconds(), 5)
	})

	t.Run("tokens past exp are still held briefly", func(t *testing.T) {
		inserted, err := r.Revoke(ctx, "jti-old", time.Now().Add(-time.Second))
		require.NoError(t, err)
		require.True(t, inserted)

		ttl, err := raw.TTL(ctx, "tack:revoked:jti-old").Result()
		require.NoError(t, err)
		require.Greater(t, ttl, time.Duration(0))
		require.LessOrEqual(t, ttl, time.Minute)
	})
}

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := tackredis.Connect(context.Background(), "not a url")
	require.Error(t, err)
}
