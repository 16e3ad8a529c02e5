// ABOUTME: TTL response cache keyed by persona and message prefix
// ABOUTME: Clock is injectable so expiry is testable without sleeping
package core

import (
	"crypto/md5"
	"encoding/hex"
	"sync"
	"time"
)

// cacheKeyPrefixLen caps how much of the message participates in the cache
// key. Messages agreeing on persona and first 100 characters share an entry.
const cacheKeyPrefixLen = 100

// Clock abstracts time for the cache. Production uses SystemClock; tests
// inject a fake.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

type cacheEntry struct {
	value    any
	storedAt time.Time
}

// ResponseCache caches assistant responses for identical persona/message
// pairs. Entries expire after the TTL; expired entries are treated as
// absent on read and reaped by EvictExpired. Safe for concurrent use.
type ResponseCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	clock   Clock
}

// NewResponseCache creates a cache with the given TTL. A nil clock uses
// the system clock.
func NewResponseCache(ttl time.Duration, clock Clock) *ResponseCache {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ResponseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// CacheKey derives the cache key from persona and message. Only the first
// 100 characters of the message are significant.
func CacheKey(persona, message string) string {
	if len(message) > cacheKeyPrefixLen {
		message = message[:cacheKeyPrefixLen]
	}
	sum := md5.Sum([]byte(persona + ":" + message))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached value for the key if present and not expired.
func (c *ResponseCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Put stores a value under the key, resetting its TTL.
func (c *ResponseCache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, storedAt: c.clock.Now()}
}

// Len returns the number of entries, including any not yet reaped.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// EvictExpired removes all expired entries and returns how many it removed.
func (c *ResponseCache) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	removed := 0
	for key, entry := range c.entries {
		if now.Sub(entry.storedAt) >= c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
