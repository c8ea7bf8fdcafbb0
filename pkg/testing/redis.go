package testing

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// GetRedisClientAndCtx returns a redis client for tests, and a context bound to the test.
// If REDIS_HOST is set, a real redis instance is used; otherwise an in-process miniredis
// is started and torn down with the test.
func GetRedisClientAndCtx(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	addr, password := redisAddr(t)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	pingRes, err := rdb.Ping(ctx).Result()
	require.NoError(t, err)
	t.Logf("redis ping res: %s", pingRes)

	return ctx, rdb
}

func redisAddr(t *testing.T) (addr string, password string) {
	t.Helper()

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		mr := miniredis.RunT(t)
		t.Logf("using miniredis: [%s]", mr.Addr())
		return mr.Addr(), ""
	}

	t.Logf("using redis host: [%s]", redisHost)
	redisPort := os.Getenv("REDIS_PORT")
	if redisPort == "" {
		redisPort = "6379"
	}
	return net.JoinHostPort(redisHost, redisPort), os.Getenv("REDIS_PASS")
}
