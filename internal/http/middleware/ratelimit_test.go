package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	limiter := NewRateLimiter()
	for i := 0; i < 3; i++ {
		if !limiter.Allow("key", 3, time.Minute) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("key", 3, time.Minute) {
		t.Fatal("fourth request should be denied")
	}
	if !limiter.Allow("other", 3, time.Minute) {
		t.Fatal("separate key should have its own window")
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter()
	if !limiter.Allow("key", 1, 20*time.Millisecond) {
		t.Fatal("first request should be allowed")
	}
	if limiter.Allow("key", 1, 20*time.Millisecond) {
		t.Fatal("second request inside window should be denied")
	}
	time.Sleep(30 * time.Millisecond)
	if !limiter.Allow("key", 1, 20*time.Millisecond) {
		t.Fatal("request after window should be allowed again")
	}
}
