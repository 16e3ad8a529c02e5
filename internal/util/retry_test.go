// ABOUTME: Tests for retry backoff calculation
// ABOUTME: Verifies exponential growth, jitter bounds, and the 30s cap
package util

import (
	"testing"
	"time"
)

func TestBackoff_ZeroAttempt(t *testing.T) {
	if d := Backoff(time.Second, 0); d != 0 {
		t.Errorf("Backoff(1s, 0) = %v, want 0", d)
	}
	if d := Backoff(time.Second, -1); d != 0 {
		t.Errorf("Backoff(1s, -1) = %v, want 0", d)
	}
}

func TestBackoff_ExponentialGrowthWithJitter(t *testing.T) {
	base := time.Second

	for attempt := 1; attempt <= 4; attempt++ {
		expected := base * time.Duration(1<<uint(attempt))
		low := expected - expected/4
		high := expected + expected/4

		d := Backoff(base, attempt)
		if d < low || d > high {
			t.Errorf("Backoff(1s, %d) = %v, want within [%v, %v]", attempt, d, low, high)
		}
	}
}

func TestBackoff_Cap(t *testing.T) {
	// Large attempt counts must not overflow or exceed the cap plus jitter.
	d := Backoff(time.Second, 100)
	max := 30*time.Second + 30*time.Second/4
	if d > max {
		t.Errorf("Backoff(1s, 100) = %v, want <= %v", d, max)
	}
	if d <= 0 {
		t.Errorf("Backoff(1s, 100) = %v, want positive", d)
	}
}
