package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	loginFailureLimit  = 8
	loginFailureWindow = 15 * time.Minute
	// Expired entries are swept once the table grows past this size.
	failureSweepSize = 1024
)

type failureEntry struct {
	count int
	since time.Time
}

// failureLimiter blocks a key once it collects limit failures within window
// of its first failure. Successful attempts clear the key.
type failureLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]failureEntry
}

func newFailureLimiter(limit int, window time.Duration) *failureLimiter {
	return &failureLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]failureEntry),
	}
}

// retryAfter reports whether key is blocked and for how much longer.
func (limiter *failureLimiter) retryAfter(key string, now time.Time) (time.Duration, bool) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	entry, ok := limiter.entries[key]
	if !ok {
		return 0, false
	}
	elapsed := now.Sub(entry.since)
	if elapsed >= limiter.window {
		delete(limiter.entries, key)
		return 0, false
	}
	if entry.count < limiter.limit {
		return 0, false
	}
	return limiter.window - elapsed, true
}

func (limiter *failureLimiter) fail(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	entry, ok := limiter.entries[key]
	if !ok || now.Sub(entry.since) >= limiter.window {
		entry = failureEntry{since: now}
	}
	entry.count++
	limiter.entries[key] = entry

	if len(limiter.entries) > failureSweepSize {
		for other, candidate := range limiter.entries {
			if now.Sub(candidate.since) >= limiter.window {
				delete(limiter.entries, other)
			}
		}
	}
}

func (limiter *failureLimiter) clear(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.entries, key)
}

func clientKey(c *fiber.Ctx) string {
	if ip := strings.TrimSpace(c.IP()); ip != "" {
		return ip
	}
	return "unknown"
}
