package data

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"fdm-dividend/internal/dividend"
	"fdm-dividend/internal/mesh"
)

// CacheEntry is a built adjuster together with the layout it was built for.
type CacheEntry struct {
	Adjuster  *dividend.Adjuster
	Layout    *mesh.Layout
	ExpiresAt time.Time
}

// AdjusterCache keeps built adjusters for repeated API requests on the same
// scenario. Adjusters are immutable, so entries may be shared across requests.
// A nil *AdjusterCache is valid and never hits.
type AdjusterCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time

	stop chan struct{}
	once sync.Once
}

// NewAdjusterCache starts a cache whose entries live for ttl. Call Close to
// stop the cleanup goroutine.
func NewAdjusterCache(ttl time.Duration) *AdjusterCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := &AdjusterCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go c.cleanup(5 * time.Minute)
	return c
}

// Get retrieves a cached entry if available and not expired
func (c *AdjusterCache) Get(key string) (*CacheEntry, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}
	if c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry, true
}

// Set stores an adjuster in the cache
func (c *AdjusterCache) Set(key string, a *dividend.Adjuster, l *mesh.Layout) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Adjuster:  a,
		Layout:    l,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Len counts stored entries, expired or not.
func (c *AdjusterCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *AdjusterCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

func (c *AdjusterCache) Close() {
	if c == nil {
		return
	}
	c.once.Do(func() { close(c.stop) })
}

func (c *AdjusterCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
		}
	}
}

// cleanup periodically removes expired entries
func (c *AdjusterCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stop:
			return
		}
	}
}

// ScenarioKey is a stable hash of the inputs that determine an adjuster.
type ScenarioKey struct {
	Axes           [][]float64 `json:"axes"`
	PriceAxisIndex int         `json:"price_axis_index"`
	Times          []float64   `json:"times"`
	Amounts        []float64   `json:"amounts"`
}

func GenerateCacheKey(k ScenarioKey) (string, error) {
	raw, err := json.Marshal(k)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(raw)
	return hex.EncodeToString(hash[:]), nil
}
