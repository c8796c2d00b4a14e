package middleware

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/pkg/utils"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter in Redis keyed by caller and path.
type RateLimiter struct {
	redis    redis.Cmdable
	requests int
	window   time.Duration
}

func NewRateLimiter(redisClient redis.Cmdable, requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:    redisClient,
		requests: requests,
		window:   window,
	}
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rateLimitKey(r)

		allowed, remaining, err := rl.isAllowed(r.Context(), key)
		if err != nil {
			// Fail open: Redis trouble must not lock drivers out.
			log.Printf("rate limiter unavailable for %s: %v", key, err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.requests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			utils.Error(w, apperrors.NewAPIError(
				"rate_limit_exceeded",
				"too many requests, please try again later",
				http.StatusTooManyRequests,
			))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string) (bool, int, error) {
	pipe := rl.redis.Pipeline()

	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, rl.requests, err
	}

	count := int(incr.Val())
	remaining := rl.requests - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= rl.requests, remaining, nil
}

// rateLimitKey prefers the authenticated driver over the client address.
func rateLimitKey(r *http.Request) string {
	if session, ok := SessionFromContext(r.Context()); ok {
		return fmt.Sprintf("ratelimit:user:%s:%s", session.UserID, r.URL.Path)
	}
	return fmt.Sprintf("ratelimit:ip:%s:%s", clientIP(r), r.URL.Path)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
