package middleware

import (
	"testing"
	"time"
)

func TestCheckRateFixedWindow(t *testing.T) {
	key := "order:203.0.113.7"
	ResetRate(key)

	for i := 1; i <= 10; i++ {
		allowed, remaining, _ := CheckRate(key, 10, time.Minute)
		if !allowed {
			t.Fatalf("request %d should be allowed", i)
		}
		if remaining != 10-i {
			t.Errorf("request %d: remaining = %d, want %d", i, remaining, 10-i)
		}
	}

	// Request thứ 11 trong cùng cửa sổ phải bị chặn
	allowed, _, retryAfter := CheckRate(key, 10, time.Minute)
	if allowed {
		t.Fatal("11th request in window must be rejected")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("retryAfter = %v, want within (0, 1m]", retryAfter)
	}
}

func TestCheckRateWindowReset(t *testing.T) {
	key := "order:198.51.100.2"
	ResetRate(key)

	for i := 0; i < 3; i++ {
		CheckRate(key, 3, 50*time.Millisecond)
	}
	if allowed, _, _ := CheckRate(key, 3, 50*time.Millisecond); allowed {
		t.Fatal("over-limit request must be rejected")
	}

	time.Sleep(60 * time.Millisecond)

	if allowed, _, _ := CheckRate(key, 3, 50*time.Millisecond); !allowed {
		t.Fatal("request after window elapsed must be allowed")
	}
}

func TestCheckRateKeysAreIndependent(t *testing.T) {
	ResetRate("order:10.0.0.1")
	ResetRate("order:10.0.0.2")

	for i := 0; i < 5; i++ {
		CheckRate("order:10.0.0.1", 5, time.Minute)
	}
	if allowed, _, _ := CheckRate("order:10.0.0.1", 5, time.Minute); allowed {
		t.Fatal("first key must be exhausted")
	}
	if allowed, _, _ := CheckRate("order:10.0.0.2", 5, time.Minute); !allowed {
		t.Fatal("second key must not be affected by the first")
	}
}
