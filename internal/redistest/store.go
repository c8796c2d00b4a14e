// Package redistest provides an in-memory stand-in for the few Redis
// commands the middlewares issue.
package redistest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store implements Get, Set, SetNX and Del. Any other command panics on the
// nil embedded interface.
type Store struct {
	redis.Cmdable

	mu     sync.Mutex
	values map[string]string

	// Err, when set, is returned by every command.
	Err error
}

func New() *Store {
	return &Store{values: map[string]string{}}
}

func (s *Store) Value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Store) Get(ctx context.Context, key string) *redis.StringCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return redis.NewStringResult("", s.Err)
	}
	v, ok := s.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return redis.NewStatusResult("", s.Err)
	}
	s.values[key] = toString(value)
	return redis.NewStatusResult("OK", nil)
}

func (s *Store) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return redis.NewBoolResult(false, s.Err)
	}
	if _, exists := s.values[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	s.values[key] = toString(value)
	return redis.NewBoolResult(true, nil)
}

func (s *Store) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return redis.NewIntResult(0, s.Err)
	}
	var n int64
	for _, key := range keys {
		if _, ok := s.values[key]; ok {
			delete(s.values, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
