package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
)

// Defaults applied when Options leaves a field zero
const (
	DefaultMaxEntries      = 1000
	DefaultCleanupInterval = 10 * time.Minute
)

// cacheItem represents a single item in the cache with expiration
type cacheItem struct {
	Value      interface{}
	Expiration time.Time
}

// Options configures a MemoryCache
type Options struct {
	MaxEntries      int           // entries kept before eviction kicks in
	CleanupInterval time.Duration // how often expired entries are swept
}

// MemoryCache is a thread-safe in-memory cache with TTL support and a bounded size.
// When full, expired entries are dropped first, then the entry closest to expiry.
type MemoryCache struct {
	data       map[string]cacheItem
	mutex      sync.RWMutex
	maxEntries int
	now        func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup goroutine.
// Call Close to stop the goroutine.
func NewMemoryCache(opts Options) *MemoryCache {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = DefaultCleanupInterval
	}

	cache := &MemoryCache{
		data:       make(map[string]cacheItem),
		maxEntries: opts.MaxEntries,
		now:        time.Now,
		stop:       make(chan struct{}),
	}

	go cache.cleanupExpired(opts.CleanupInterval)

	return cache
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	// Check if expired
	if c.now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	return item.Value, nil
}

// Set stores a value in the cache with TTL. Values are stored as given;
// callers that need isolation must store copies.
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.maxEntries {
		c.evictLocked()
	}

	c.data[key] = cacheItem{
		Value:      value,
		Expiration: c.now().Add(ttl),
	}

	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return false, nil
	}

	// Check if expired
	if c.now().After(item.Expiration) {
		return false, nil
	}

	return true, nil
}

// evictLocked frees one slot. Must be called with the write lock held.
func (c *MemoryCache) evictLocked() {
	if c.removeExpiredLocked() > 0 {
		return
	}

	var victim string
	var soonest time.Time
	for key, item := range c.data {
		if victim == "" || item.Expiration.Before(soonest) {
			victim = key
			soonest = item.Expiration
		}
	}
	delete(c.data, victim)
}

func (c *MemoryCache) removeExpiredLocked() int {
	now := c.now()
	removed := 0
	for key, item := range c.data {
		if now.After(item.Expiration) {
			delete(c.data, key)
			removed++
		}
	}
	return removed
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mutex.Lock()
			c.removeExpiredLocked()
			c.mutex.Unlock()
		}
	}
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (c *MemoryCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
