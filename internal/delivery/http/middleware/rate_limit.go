package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"cvcraft-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

type RateLimitConfig struct {
	// Requests per window
	Limit  int
	Window time.Duration
	// Default: client IP
	KeyFunc   func(*gin.Context) string
	KeyPrefix string
	// Reject instead of falling back to memory when Redis errors
	FailClosed bool
}

type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// Atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimiter counts requests in Redis when a client is given and in memory
// otherwise.
type RateLimiter struct {
	client goredis.Cmdable
	store  sync.Map
	now    func() time.Time
}

func NewRateLimiter(client goredis.Cmdable) *RateLimiter {
	return &RateLimiter{client: client, now: time.Now}
}

func clientIP(c *gin.Context) string { return c.ClientIP() }

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     300,
		Window:    time.Minute,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIP,
	}
}

// AuthRateLimitConfig guards the sign-in endpoints.
func AuthRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:      10,
		Window:     time.Minute,
		KeyPrefix:  "rl:auth:",
		FailClosed: true,
		KeyFunc:    clientIP,
	}
}

// SuggestionRateLimitConfig caps text generation per workspace.
func SuggestionRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     20,
		Window:    time.Minute,
		KeyPrefix: "rl:suggest:",
		KeyFunc: func(c *gin.Context) string {
			if id := WorkspaceID(c); id != "" {
				return id
			}
			return c.ClientIP()
		},
	}
}

// UploadRateLimitConfig covers photo uploads and share exports.
func UploadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     10,
		Window:    time.Minute,
		KeyPrefix: "rl:upload:",
		KeyFunc:   clientIP,
	}
}

func (l *RateLimiter) Middleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = clientIP
	}

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := l.now()

		var count int
		var resetAt time.Time

		if l.client != nil {
			var err error
			count, resetAt, err = l.checkRedis(c.Request.Context(), fullKey, config)
			if err != nil {
				appLogger().Warn("Rate limit store unavailable",
					"error", err,
					"path", c.FullPath(),
					"fail_closed", config.FailClosed,
				)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = l.checkInMemory(fullKey, config, now)
			}
		} else {
			count, resetAt = l.checkInMemory(fullKey, config, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			requestID, _ := c.Get("RequestID")
			appLogger().Warn("Rate limit triggered",
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", requestID,
			)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

func (l *RateLimiter) checkRedis(ctx context.Context, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := l.client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), l.now().Add(time.Duration(ttl) * time.Second), nil
}

func (l *RateLimiter) checkInMemory(key string, config RateLimitConfig, now time.Time) (int, time.Time) {
	entryI, _ := l.store.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(config.Window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(config.Window)
	}
	entry.count++

	return entry.count, entry.resetAt
}

// RunCleanup drops expired in-memory counters until ctx ends.
func (l *RateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := l.now()
			l.store.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					l.store.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}
}
