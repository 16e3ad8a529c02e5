// ABOUTME: Retry backoff helper shared by the OpenAI client
// ABOUTME: Exponential growth with jitter, capped at 30 seconds
package util

import (
	"math/rand/v2"
	"time"
)

const maxBackoff = 30 * time.Second

// Backoff returns the delay before the given retry attempt: base * 2^attempt
// with -25% to +25% jitter, capped at 30s. Attempt 0 returns 0.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}

	delay := base * time.Duration(1<<uint(attempt))
	if delay > maxBackoff {
		delay = maxBackoff
	}

	jitter := time.Duration(rand.Int64N(int64(delay)/2)) - delay/4
	return delay + jitter
}
