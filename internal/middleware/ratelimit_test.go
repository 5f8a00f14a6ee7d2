package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	t.Run("Disabled outside production", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		for i := 0; i < 10; i++ {
			allowed, err := CheckRateLimit(ctx, rdb, "login", "ip:1.2.3.4", 2, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed)
		}
	})

	t.Run("Enforced in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		for i := 0; i < 3; i++ {
			allowed, err := CheckRateLimit(ctx, rdb, "register", "ip:5.6.7.8", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed, "request %d within limit", i+1)
		}
		allowed, err := CheckRateLimit(ctx, rdb, "register", "ip:5.6.7.8", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("Window expiry resets the counter", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, err := CheckRateLimit(ctx, rdb, "posts", "user:1", 1, time.Minute)
		require.NoError(t, err)
		allowed, err := CheckRateLimit(ctx, rdb, "posts", "user:1", 1, time.Minute)
		require.NoError(t, err)
		require.False(t, allowed)

		mr.FastForward(2 * time.Minute)

		allowed, err = CheckRateLimit(ctx, rdb, "posts", "user:1", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("Nil client errors", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, err := CheckRateLimit(ctx, nil, "login", "ip:1.1.1.1", 1, time.Minute)
		assert.Error(t, err)
	})
}

func TestRateLimitMiddlewarePolicies(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	newApp := func(handler fiber.Handler) *fiber.App {
		app := fiber.New()
		app.Get("/limited", handler, func(c *fiber.Ctx) error {
			return c.SendStatus(http.StatusOK)
		})
		return app
	}

	t.Run("Fail open without Redis", func(t *testing.T) {
		app := newApp(RateLimit(nil, 1, time.Minute, "limited"))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Fail closed without Redis", func(t *testing.T) {
		app := newApp(RateLimitWithPolicy(nil, 1, time.Minute, FailClosed, "limited"))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("Limit exceeded returns 429", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		app := newApp(RateLimit(rdb, 1, time.Minute, "limited"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	})
}
