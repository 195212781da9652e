package redis

import (
	"context"
	"testing"
	"time"

	"github.com/mercie-ux/mkulima-cooperative/pkg/config"
	"github.com/redis/go-redis/v9"
)

type stubStore struct {
	counts  map[string]int64
	expires map[string]time.Duration
}

func newStubStore() *stubStore {
	return &stubStore{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (s *stubStore) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (s *stubStore) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (s *stubStore) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (s *stubStore) Incr(ctx context.Context, key string) *redis.IntCmd {
	s.counts[key]++
	return redis.NewIntResult(s.counts[key], nil)
}

func (s *stubStore) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	s.expires[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (s *stubStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestIncrWithTTLSetsExpiryOnFirstHit(t *testing.T) {
	store := newStubStore()
	client := &Client{store: store}

	key := client.RateLimitKey("login:ip:127.0.0.1")
	count, err := client.IncrWithTTL(context.Background(), key, time.Minute)
	if err != nil {
		t.Fatalf("first increment: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
	if store.expires[key] != time.Minute {
		t.Fatalf("expected ttl set on first increment, got %v", store.expires[key])
	}

	count, err = client.IncrWithTTL(context.Background(), key, time.Minute)
	if err != nil {
		t.Fatalf("second increment: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
	if len(store.expires) != 1 {
		t.Fatalf("ttl should only be set once")
	}
}

func TestKeyNamespacing(t *testing.T) {
	client := &Client{}
	if got := client.RateLimitKey("login:ip:1.2.3.4"); got != "mkulima:rate_limit:login:ip:1.2.3.4" {
		t.Fatalf("unexpected rate limit key %q", got)
	}
	if got := client.CounterKey("signups"); got != "mkulima:counter:signups" {
		t.Fatalf("unexpected counter key %q", got)
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatalf("expected error for empty config")
	}
}
