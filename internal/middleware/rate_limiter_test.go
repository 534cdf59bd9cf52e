package middleware

import (
	"testing"
	"time"
)

func TestCheckUserLimit(t *testing.T) {
	rl := NewRateLimiter(3, 10, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.CheckUserLimit("farmer-1") {
			t.Fatalf("request %d blocked below the limit", i+1)
		}
	}
	if rl.CheckUserLimit("farmer-1") {
		t.Error("request above the limit allowed")
	}

	// other farmers are unaffected
	if !rl.CheckUserLimit("farmer-2") {
		t.Error("unrelated farmer blocked")
	}
}

func TestCheckIPLimit(t *testing.T) {
	rl := NewRateLimiter(10, 2, time.Minute)

	if !rl.CheckIPLimit("10.0.0.1") || !rl.CheckIPLimit("10.0.0.1") {
		t.Fatal("requests blocked below the limit")
	}
	if rl.CheckIPLimit("10.0.0.1") {
		t.Error("request above the limit allowed")
	}
}

func TestGetUserRemaining(t *testing.T) {
	rl := NewRateLimiter(5, 10, time.Minute)

	if got := rl.GetUserRemaining("farmer-1"); got != 5 {
		t.Errorf("fresh remaining = %d, want 5", got)
	}
	rl.CheckUserLimit("farmer-1")
	rl.CheckUserLimit("farmer-1")
	if got := rl.GetUserRemaining("farmer-1"); got != 3 {
		t.Errorf("remaining = %d, want 3", got)
	}
}

func TestReset(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)

	rl.CheckUserLimit("farmer-1")
	if rl.CheckUserLimit("farmer-1") {
		t.Fatal("limit not applied")
	}

	rl.Reset()
	if !rl.CheckUserLimit("farmer-1") {
		t.Error("limit survives Reset")
	}
}
