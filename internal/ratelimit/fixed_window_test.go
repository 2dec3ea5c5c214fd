package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newLimiter(t *testing.T, mr *miniredis.Miniredis, limit int) *FixedWindowLimiter {
	t.Helper()
	client, err := NewRedisClient(mr.Addr(), "")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = client.Close() })

	l, err := NewFixedWindowLimiter(client, "test:ratelimit", limit, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestFixedWindowLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	l := newLimiter(t, mr, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "login:10.0.0.1")
		if err != nil || !ok {
			t.Fatalf("request %d should pass: %v %v", i+1, ok, err)
		}
	}
	if ok, _ := l.Allow(ctx, "login:10.0.0.1"); ok {
		t.Fatal("third request should be blocked")
	}
	if ok, _ := l.Allow(ctx, "login:10.0.0.2"); !ok {
		t.Fatal("other keys have their own quota")
	}
}

func TestFixedWindowLimiterNewWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	l := newLimiter(t, mr, 1)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }
	if ok, _ := l.Allow(ctx, "k"); !ok {
		t.Fatal("first request should pass")
	}
	if ok, _ := l.Allow(ctx, "k"); ok {
		t.Fatal("second request in window should be blocked")
	}

	l.now = func() time.Time { return base.Add(time.Minute) }
	if ok, _ := l.Allow(ctx, "k"); !ok {
		t.Fatal("next window should reset the quota")
	}
}

func TestFixedWindowLimiterSetsExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	l := newLimiter(t, mr, 5)
	if _, err := l.Allow(context.Background(), "k"); err != nil {
		t.Fatal(err)
	}
	keys := mr.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected one key, got %v", keys)
	}
	if ttl := mr.TTL(keys[0]); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}
}

func TestFixedWindowLimiterReportsRedisErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	l := newLimiter(t, mr, 1)
	mr.Close()

	ok, err := l.Allow(context.Background(), "k")
	if err == nil || ok {
		t.Fatalf("expected error with denied result, got %v %v", ok, err)
	}
}

func TestConstructorValidation(t *testing.T) {
	if _, err := NewRedisClient("", ""); err == nil {
		t.Fatal("empty addr accepted")
	}
	if _, err := NewFixedWindowLimiter(nil, "", 1, time.Second); err == nil {
		t.Fatal("nil client accepted")
	}
	mr := miniredis.RunT(t)
	client, _ := NewRedisClient(mr.Addr(), "")
	defer client.Close()
	if _, err := NewFixedWindowLimiter(client, "", 0, time.Second); err == nil {
		t.Fatal("zero limit accepted")
	}
}
