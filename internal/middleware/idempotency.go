package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/pkg/utils"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
	idempotencyLock   = 30 * time.Second
	idempotencyPrefix = "idempotency:"
)

// IdempotencyMiddleware replays the stored response when a driver repeats a
// mutation with the same Idempotency-Key, so a double tap on "Complete" or
// "Add Ride" does not write twice.
type IdempotencyMiddleware struct {
	redis    redis.Cmdable
	replayer Replayer
}

// Replayer decides what part of a response may be stored and rebuilds the
// response from it on replay. Parts derived from current state, such as the
// dashboard, are dropped by Snapshot and re-read by Replay.
type Replayer interface {
	Snapshot(body []byte) ([]byte, error)
	Replay(w http.ResponseWriter, r *http.Request, status int, stored []byte)
}

type cachedResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
	BodyHash    string `json:"body_hash"`
}

// NewIdempotencyMiddleware stores bodies verbatim when replayer is nil.
func NewIdempotencyMiddleware(redisClient redis.Cmdable, replayer Replayer) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{redis: redisClient, replayer: replayer}
}

// captureWriter records the response for caching
type captureWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.ResponseWriter.Write(b)
}

func (m *IdempotencyMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			utils.BadRequest(w, "failed to read request body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		bodyHash := requestHash(r, bodyBytes)
		cacheKey := idempotencyKey(r, key)
		ctx := r.Context()

		cached, err := m.getCachedResponse(ctx, cacheKey)
		switch {
		case err == nil:
			if cached.BodyHash != bodyHash {
				utils.Error(w, apperrors.IdempotencyConflict())
				return
			}
			m.replay(w, r, cached)
			return
		case !errors.Is(err, redis.Nil):
			// Fail open like the rate limiter; the request runs unprotected.
			log.Printf("idempotency store unavailable for %s: %v", cacheKey, err)
			next.ServeHTTP(w, r)
			return
		}

		lockKey := cacheKey + ":lock"
		locked, err := m.redis.SetNX(ctx, lockKey, "1", idempotencyLock).Result()
		if err != nil {
			log.Printf("idempotency lock unavailable for %s: %v", cacheKey, err)
			next.ServeHTTP(w, r)
			return
		}
		if !locked {
			utils.Error(w, apperrors.NewAPIError(
				"request_in_progress",
				"a request with this idempotency key is already being processed",
				http.StatusConflict,
			))
			return
		}
		defer m.redis.Del(context.WithoutCancel(ctx), lockKey)

		cw := &captureWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(cw, r)

		// Only successful mutations are replayed; failures may be retried.
		if cw.statusCode < 200 || cw.statusCode >= 300 {
			return
		}

		body := cw.body.Bytes()
		if m.replayer != nil {
			if body, err = m.replayer.Snapshot(body); err != nil {
				log.Printf("failed to snapshot response for %s: %v", cacheKey, err)
				return
			}
		}

		data, err := json.Marshal(cachedResponse{
			StatusCode:  cw.statusCode,
			ContentType: cw.Header().Get("Content-Type"),
			Body:        body,
			BodyHash:    bodyHash,
		})
		if err != nil {
			return
		}
		if err := m.redis.Set(context.WithoutCancel(ctx), cacheKey, data, idempotencyTTL).Err(); err != nil {
			log.Printf("failed to store idempotent response for %s: %v", cacheKey, err)
		}
	})
}

func (m *IdempotencyMiddleware) replay(w http.ResponseWriter, r *http.Request, cached *cachedResponse) {
	w.Header().Set("Idempotent-Replayed", "true")
	if m.replayer != nil {
		m.replayer.Replay(w, r, cached.StatusCode, cached.Body)
		return
	}

	w.Header().Set("Content-Type", cached.ContentType)
	w.WriteHeader(cached.StatusCode)
	w.Write(cached.Body)
}

func (m *IdempotencyMiddleware) getCachedResponse(ctx context.Context, key string) (*cachedResponse, error) {
	data, err := m.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var cached cachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	return &cached, nil
}

// idempotencyKey scopes the client key to the caller so two drivers cannot
// collide on the same value.
func idempotencyKey(r *http.Request, key string) string {
	owner := "anonymous"
	if session, ok := SessionFromContext(r.Context()); ok {
		owner = session.UserID
	}
	return idempotencyPrefix + owner + ":" + key
}

// requestHash covers method and path too: the same key reused on a different
// ride is a conflict, not a replay.
func requestHash(r *http.Request, body []byte) string {
	h := sha256.New()
	h.Write([]byte(r.Method + " " + r.URL.Path + "\n"))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
