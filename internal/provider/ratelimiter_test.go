package provider

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterAllowsBurstUpToMax(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := limiter.Wait(ctx); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
	if limiter.take() {
		t.Fatal("expected bucket to be empty after burst")
	}
}

func TestRateLimiterRefills(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(1, 10*time.Millisecond)
	ctx := context.Background()

	if err := limiter.Wait(ctx); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	start := time.Now()
	if err := limiter.Wait(ctx); err != nil {
		t.Fatalf("second wait: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("refill took too long")
	}
}

func TestRateLimiterWaitHonorsContext(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(1, time.Hour)
	if !limiter.take() {
		t.Fatal("expected initial token")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx); err == nil {
		t.Fatal("expected context deadline error")
	}
}
